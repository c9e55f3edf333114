package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rshade/jable/internal/config"
)

// newConfigCmd creates the config command group.
func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(newConfigInitCmd(a), newConfigValidateCmd(a))
	return cmd
}

// newConfigInitCmd creates "config init", which writes a default config file.
func newConfigInitCmd(a *app) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration file with default values",
		Example: `  # Create ~/.jable/config.yaml
  jable config init

  # Overwrite an existing file
  jable config init --force`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := a.configPath(cmd)
			if err != nil {
				return err
			}

			if !force {
				if _, statErr := os.Stat(path); statErr == nil {
					return errors.New("configuration file already exists, use --force to overwrite")
				} else if !os.IsNotExist(statErr) {
					return fmt.Errorf("cannot access config path %s: %w", path, statErr)
				}
			}

			if err = config.New().Save(path); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}
			cmd.Printf("Configuration file: %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration file")
	// init must work even when the existing file is broken.
	cmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		a.setupLogging(cmd)
		return nil
	}

	return cmd
}

// newConfigValidateCmd creates "config validate". The root pre-run already
// loads and validates the configuration, so reaching RunE means it is valid.
func newConfigValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.Println("Configuration is valid")
			cmd.Printf("  page size:   %d\n", a.cfg.Table.PageSize)
			cmd.Printf("  menu labels: %d custom\n", len(a.cfg.Table.MenuLabels))
			cmd.Printf("  log level:   %s\n", a.cfg.Logging.Level)
			return nil
		},
	}
}

// configPath returns --config or the default config file location.
func (a *app) configPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("config"); p != "" {
		return p, nil
	}
	return config.DefaultConfigPath(a.lookupEnv)
}
