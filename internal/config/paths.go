package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const configFileName = "config.yaml"

// GetConfigDir returns the jable configuration directory: $JABLE_HOME when set,
// otherwise ~/.jable.
func GetConfigDir(lookupEnv func(string) (string, bool)) (string, error) {
	if lookupEnv == nil {
		lookupEnv = os.LookupEnv
	}
	if home, ok := lookupEnv(EnvHome); ok && home != "" {
		return home, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".jable"), nil
}

// DefaultConfigPath returns the path of config.yaml in the configuration directory.
func DefaultConfigPath(lookupEnv func(string) (string, bool)) (string, error) {
	dir, err := GetConfigDir(lookupEnv)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// EnsureLogDir creates the parent directory of the configured log file.
// It does nothing when logging to stderr.
func (c *Config) EnsureLogDir() error {
	if c.Logging.File == "" {
		return nil
	}
	logDir := filepath.Dir(c.Logging.File)
	if err := os.MkdirAll(logDir, 0700); err != nil {
		return fmt.Errorf("failed to create log directory %q: %w", logDir, err)
	}
	return nil
}
