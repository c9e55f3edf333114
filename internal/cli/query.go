package cli

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/spf13/cobra"

	"github.com/rshade/jable/internal/config"
	"github.com/rshade/jable/internal/source"
)

// Query command errors.
var (
	ErrNoDSN        = errors.New("no database DSN: use --dsn, " + config.EnvDSN + " or database.dsn in the config file")
	ErrQueryOrTable = errors.New("give either a SQL query argument or --table, not both")
	ErrMissingQuery = errors.New("a SQL query argument or --table is required")
)

const postgresDriverID = "postgres"

// newQueryCmd creates the "query" command, which presents the result set of a
// PostgreSQL query.
func newQueryCmd(a *app) *cobra.Command {
	var (
		flags     tableFlags
		dsn       string
		tableName string
	)

	cmd := &cobra.Command{
		Use:   "query [SQL]",
		Short: "Page through the result of a PostgreSQL query",
		Long: `Run a SQL query against PostgreSQL and page through the rows.

NULL values are shown as NULL. Columns appear in result order.`,
		Example: `  # Run a query
  jable query --dsn "postgres://localhost/app?sslmode=disable" "SELECT id, email FROM users"

  # Page through a whole table using the DSN from JABLE_DSN
  JABLE_DSN=postgres://localhost/app jable query --table users --page-size 25`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query, err := buildQuery(args, tableName)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("dsn") {
				dsn = a.cfg.Database.DSN
			}
			if dsn == "" {
				return ErrNoDSN
			}

			db, err := sql.Open(postgresDriverID, dsn)
			if err != nil {
				return fmt.Errorf("opening database: %w", err)
			}
			defer db.Close()

			a.logger.Debug().Str("query", query).Msg("running query")
			records, err := source.FromQuery(cmd.Context(), db, query)
			if err != nil {
				return err
			}
			return a.present(cmd, records, flags)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&dsn, "dsn", "", "PostgreSQL connection string (default from "+config.EnvDSN+" or config)")
	cmd.Flags().StringVar(&tableName, "table", "", "select every row of this table instead of running a query")

	return cmd
}

// buildQuery returns the SQL to run: the single argument, or SELECT * over
// the quoted table name.
func buildQuery(args []string, tableName string) (string, error) {
	switch {
	case len(args) == 1 && tableName != "":
		return "", ErrQueryOrTable
	case len(args) == 1:
		return args[0], nil
	case tableName != "":
		return "SELECT * FROM " + pq.QuoteIdentifier(tableName), nil
	default:
		return "", ErrMissingQuery
	}
}
