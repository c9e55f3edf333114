package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/jable/internal/config"
	"github.com/rshade/jable/internal/logging"
)

func envOf(vars map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func TestNew_Defaults(t *testing.T) {
	cfg := config.New()
	assert.Equal(t, config.DefaultPageSize, cfg.Table.PageSize)
	assert.Empty(t, cfg.Table.MenuLabels)
	assert.Equal(t, config.DefaultLogLevel, cfg.Logging.Level)
	assert.Equal(t, logging.FormatConsole, cfg.Logging.Format)
	require.NoError(t, cfg.Validate())
}

func TestLoad_NoFile(t *testing.T) {
	home := t.TempDir()
	cfg, err := config.Load("", envOf(map[string]string{config.EnvHome: home}))
	require.NoError(t, err)
	assert.Equal(t, config.New(), cfg)
}

func TestLoad_DefaultLocation(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"),
		[]byte("table:\n  page_size: 3\n"), 0600))

	cfg, err := config.Load("", envOf(map[string]string{config.EnvHome: home}))
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Table.PageSize)
}

func TestLoad_ExplicitMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"), envOf(nil))
	require.Error(t, err)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeOverlay(t, `
table:
  page_size: 3
database:
  dsn: postgres://file
logging:
  level: info
`)

	cfg, err := config.Load(path, envOf(map[string]string{
		config.EnvPageSize:  "7",
		config.EnvLogLevel:  "debug",
		config.EnvLogFormat: "json",
		config.EnvDSN:       "postgres://env",
	}))
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.Table.PageSize)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "postgres://env", cfg.Database.DSN)
}

func TestLoad_InvalidEnvPageSize(t *testing.T) {
	_, err := config.Load("", envOf(map[string]string{
		config.EnvHome:     t.TempDir(),
		config.EnvPageSize: "ten",
	}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), config.EnvPageSize)
}

func TestLoad_ValidationFailure(t *testing.T) {
	path := writeOverlay(t, "table:\n  page_size: 0\n")
	_, err := config.Load(path, envOf(nil))
	require.ErrorIs(t, err, config.ErrInvalidPageSize)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
		want   error
	}{
		{name: "defaults", mutate: func(*config.Config) {}},
		{name: "zero page size", mutate: func(c *config.Config) { c.Table.PageSize = 0 }, want: config.ErrInvalidPageSize},
		{name: "negative page size", mutate: func(c *config.Config) { c.Table.PageSize = -4 }, want: config.ErrInvalidPageSize},
		{
			name:   "five labels",
			mutate: func(c *config.Config) { c.Table.MenuLabels = []string{"a", "b", "c", "d", "e"} },
		},
		{
			name:   "three labels",
			mutate: func(c *config.Config) { c.Table.MenuLabels = []string{"a", "b", "c"} },
			want:   config.ErrInvalidMenuLabels,
		},
		{name: "bad log format", mutate: func(c *config.Config) { c.Logging.Format = "xml" }, want: config.ErrInvalidLogFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestGetConfigDir(t *testing.T) {
	dir, err := config.GetConfigDir(envOf(map[string]string{config.EnvHome: "/opt/jable"}))
	require.NoError(t, err)
	assert.Equal(t, "/opt/jable", dir)

	t.Setenv("HOME", "/home/tester")
	dir, err = config.GetConfigDir(envOf(nil))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/home/tester", ".jable"), dir)

	path, err := config.DefaultConfigPath(envOf(map[string]string{config.EnvHome: "/opt/jable"}))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/opt/jable", "config.yaml"), path)
}

func TestEnsureLogDir(t *testing.T) {
	cfg := config.New()
	require.NoError(t, cfg.EnsureLogDir())

	dir := filepath.Join(t.TempDir(), "logs", "nested")
	cfg.Logging.File = filepath.Join(dir, "jable.log")
	require.NoError(t, cfg.EnsureLogDir())

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestLoggingConfig_ToLoggingConfig(t *testing.T) {
	lc := config.LoggingConfig{Level: "debug", Format: "json"}
	got := lc.ToLoggingConfig()
	assert.Equal(t, logging.OutputStderr, got.Output)
	assert.Equal(t, "debug", got.Level)

	lc.File = "/var/log/jable.log"
	got = lc.ToLoggingConfig()
	assert.Equal(t, logging.OutputFile, got.Output)
	assert.Equal(t, "/var/log/jable.log", got.File)
	assert.False(t, got.Caller)

	lc.Caller = true
	assert.True(t, lc.ToLoggingConfig().Caller)
}
