package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/jable/internal/config"
	"github.com/rshade/jable/internal/logging"
)

// app carries the state shared by every subcommand of one invocation.
type app struct {
	lookupEnv func(string) (string, bool)
	cfg       *config.Config
	logger    zerolog.Logger
	logResult *logging.LogPathResult
}

// NewRootCmd creates the root Cobra command for the jable CLI.
func NewRootCmd(ver string) *cobra.Command {
	return NewRootCmdWithEnv(ver, os.LookupEnv)
}

// NewRootCmdWithEnv creates the root command with an explicit env lookup for testability.
func NewRootCmdWithEnv(ver string, lookupEnv func(string) (string, bool)) *cobra.Command {
	a := &app{
		lookupEnv: lookupEnv,
		cfg:       config.New(),
		logger:    zerolog.Nop(),
	}

	cmd := &cobra.Command{
		Use:     "jable",
		Short:   "Page through tabular data in the terminal",
		Long:    "jable renders records as a bordered text table and pages through them with a numbered menu.",
		Version: ver,
		Example: rootCmdExample,
		// Usage on every RunE error hides the actual message.
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			cfg, err := config.Load(configPath, a.lookupEnv)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.setupLogging(cmd)
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return a.cleanupLogging()
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().Bool("log-caller", false, "add caller file and line to log entries")
	cmd.PersistentFlags().String("config", "", "path to config file (default $JABLE_HOME/config.yaml)")
	cmd.AddCommand(newShowCmd(a), newQueryCmd(a), newConfigCmd(a))

	return cmd
}

const rootCmdExample = `  # Page through a JSON array of objects, 5 rows per page
  jable show people.json --page-size 5

  # Print the first page of a CSV file once, without the menu
  jable show export.csv --no-menu

  # Pipe YAML in on stdin
  cat people.yaml | jable show --format yaml

  # Page through a PostgreSQL query
  jable query --dsn postgres://localhost/app "SELECT id, name FROM users"

  # Page through a whole table
  jable query --table users`
