package source

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/rshade/jable/internal/table"
)

// Format names an input encoding.
type Format string

// Supported formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatCSV  Format = "csv"
)

// NullValue is the cell text used for JSON, YAML and SQL nulls.
const NullValue = "NULL"

// Loader errors.
var (
	ErrUnknownFormat    = errors.New("unknown input format")
	ErrNotList          = errors.New("input must be a list of records")
	ErrNotObject        = errors.New("record must be an object")
	ErrUnsupportedValue = errors.New("unsupported cell value")
	ErrDuplicateColumn  = errors.New("duplicate column")
	ErrTrailingData     = errors.New("unexpected data after the record list")
)

// ParseFormat validates a user-supplied format name.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatJSON, FormatYAML, FormatCSV:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q (want json, yaml or csv)", ErrUnknownFormat, name)
	}
}

// DetectFormat picks a format from a file extension, defaulting to JSON.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".csv":
		return FormatCSV
	default:
		return FormatJSON
	}
}

// Load decodes records from r in the given format.
func Load(r io.Reader, f Format) ([]table.Record, error) {
	switch f {
	case FormatJSON:
		return FromJSON(r)
	case FormatYAML:
		return FromYAML(r)
	case FormatCSV:
		return FromCSV(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

// setUnique sets key on rec, rejecting a key already present.
func setUnique(rec *table.Record, key, value string) error {
	if _, ok := rec.Get(key); ok {
		return fmt.Errorf("%w %q", ErrDuplicateColumn, key)
	}
	return rec.Set(key, value)
}
