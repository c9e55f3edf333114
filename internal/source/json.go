package source

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/rshade/jable/internal/table"
)

// FromJSON decodes a JSON array of flat objects. Strings are used as-is,
// numbers keep their literal text, booleans become "true"/"false" and null
// becomes NullValue. Nested arrays and objects are rejected.
func FromJSON(r io.Reader) ([]table.Record, error) {
	dec := json.NewDecoder(r)

	if err := expectDelim(dec, '[', ErrNotList); err != nil {
		return nil, err
	}

	var records []table.Record
	for dec.More() {
		rec, err := decodeObject(dec, len(records))
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	// Closing bracket.
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("reading JSON: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, ErrTrailingData
	}
	return records, nil
}

func decodeObject(dec *json.Decoder, index int) (table.Record, error) {
	if err := expectDelim(dec, '{', ErrNotObject); err != nil {
		return table.Record{}, fmt.Errorf("record %d: %w", index, err)
	}

	rec := table.NewRecord()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return table.Record{}, fmt.Errorf("reading JSON: %w", err)
		}
		key, _ := tok.(string)

		var raw json.RawMessage
		if err = dec.Decode(&raw); err != nil {
			return table.Record{}, fmt.Errorf("record %d, column %q: %w", index, key, err)
		}
		value, err := jsonCell(raw)
		if err != nil {
			return table.Record{}, fmt.Errorf("record %d, column %q: %w", index, key, err)
		}
		if err = setUnique(&rec, key, value); err != nil {
			return table.Record{}, fmt.Errorf("record %d: %w", index, err)
		}
	}

	// Closing brace.
	if _, err := dec.Token(); err != nil {
		return table.Record{}, fmt.Errorf("reading JSON: %w", err)
	}
	return rec, nil
}

func jsonCell(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return "", fmt.Errorf("%w: empty value", ErrUnsupportedValue)
	}
	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", err
		}
		return s, nil
	case 'n':
		return NullValue, nil
	case '{', '[':
		return "", fmt.Errorf("%w: nested %s", ErrUnsupportedValue, raw[:1])
	default:
		// Numbers and booleans keep their literal text.
		return string(raw), nil
	}
}

func expectDelim(dec *json.Decoder, want json.Delim, mismatch error) error {
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("reading JSON: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return mismatch
	}
	return nil
}
