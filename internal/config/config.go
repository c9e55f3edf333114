package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rshade/jable/internal/logging"
)

// Configuration defaults.
const (
	DefaultPageSize  = 10
	MinPageSize      = 1
	DefaultLogLevel  = "warn"
	DefaultLogFormat = logging.FormatConsole
	menuLabelCount   = 5
)

// Environment variables that override the config file.
const (
	EnvHome      = "JABLE_HOME"
	EnvPageSize  = "JABLE_PAGE_SIZE"
	EnvLogLevel  = "JABLE_LOG_LEVEL"
	EnvLogFormat = "JABLE_LOG_FORMAT"
	EnvDSN       = "JABLE_DSN"
)

// Validation errors.
var (
	ErrInvalidPageSize   = errors.New("table.page_size must be >= 1")
	ErrInvalidMenuLabels = errors.New("table.menu_labels must list exactly 5 labels or none")
	ErrInvalidLogFormat  = errors.New("logging.format must be 'console' or 'json'")
)

// Config is the full jable configuration.
type Config struct {
	Table    TableConfig    `yaml:"table"`
	Database DatabaseConfig `yaml:"database"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// TableConfig controls presentation.
type TableConfig struct {
	PageSize   int      `yaml:"page_size"`
	MenuLabels []string `yaml:"menu_labels,omitempty"`
}

// DatabaseConfig holds the connection used by the query command.
type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		Table: TableConfig{PageSize: DefaultPageSize},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

// Load builds the configuration: defaults, then the YAML file at path (or the
// default location when path is empty), then environment overrides. A missing
// default file is not an error; a missing explicit file is.
func Load(path string, lookupEnv func(string) (string, bool)) (*Config, error) {
	cfg := New()

	explicit := path != ""
	if !explicit {
		p, err := DefaultConfigPath(lookupEnv)
		if err != nil {
			return nil, err
		}
		path = p
	}

	if _, err := os.Stat(path); err == nil || explicit {
		if mergeErr := ShallowMergeYAML(cfg, path); mergeErr != nil {
			return nil, mergeErr
		}
	}

	if err := cfg.ApplyEnv(lookupEnv); err != nil {
		return nil, err
	}
	return cfg, cfg.Validate()
}

// ApplyEnv overrides values from the environment.
func (c *Config) ApplyEnv(lookupEnv func(string) (string, bool)) error {
	if lookupEnv == nil {
		lookupEnv = os.LookupEnv
	}

	if v, ok := lookupEnv(EnvPageSize); ok && v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("parsing %s=%q: %w", EnvPageSize, v, err)
		}
		c.Table.PageSize = n
	}
	if v, ok := lookupEnv(EnvLogLevel); ok && v != "" {
		c.Logging.Level = v
	}
	if v, ok := lookupEnv(EnvLogFormat); ok && v != "" {
		c.Logging.Format = v
	}
	if v, ok := lookupEnv(EnvDSN); ok && v != "" {
		c.Database.DSN = v
	}
	return nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Table.PageSize < MinPageSize {
		return fmt.Errorf("%w: got %d", ErrInvalidPageSize, c.Table.PageSize)
	}
	if n := len(c.Table.MenuLabels); n != 0 && n != menuLabelCount {
		return fmt.Errorf("%w: got %d", ErrInvalidMenuLabels, n)
	}
	switch c.Logging.Format {
	case "", logging.FormatConsole, logging.FormatJSON:
	default:
		return fmt.Errorf("%w: got %q", ErrInvalidLogFormat, c.Logging.Format)
	}
	return nil
}
