package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/rshade/jable/internal/source"
	"github.com/rshade/jable/internal/table"
)

const stdinPath = "-"

// newShowCmd creates the "show" command, which presents records read from a
// JSON, YAML or CSV file or from stdin.
func newShowCmd(a *app) *cobra.Command {
	var (
		flags  tableFlags
		format string
	)

	cmd := &cobra.Command{
		Use:   "show [FILE]",
		Short: "Page through records from a file or stdin",
		Long: `Page through records read from FILE, or from stdin when FILE is "-" or omitted.

The input is a list of flat records: a JSON array of objects, a YAML sequence
of mappings, or a CSV file with a header row. Column order follows the first
record. When the records come from stdin the menu is not shown, since stdin
is no longer available for menu input.`,
		Example: `  # Page through a JSON file
  jable show people.json

  # Page through a CSV file, 20 rows per page, with custom menu labels
  jable show export.csv --page-size 20 --menu-labels Back,Forward,Start,End,Quit

  # Render YAML from stdin once
  cat people.yaml | jable show --format yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := stdinPath
			if len(args) == 1 {
				path = args[0]
			}

			records, err := a.loadRecords(cmd, path, format)
			if err != nil {
				return err
			}
			if path == stdinPath {
				flags.noMenu = true
			}
			return a.present(cmd, records, flags)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&format, "format", "", "input format: json, yaml or csv (default from file extension, else json)")

	return cmd
}

// loadRecords reads and decodes path, or cmd's stdin for "-".
func (a *app) loadRecords(cmd *cobra.Command, path, format string) ([]table.Record, error) {
	f := source.DetectFormat(path)
	if format != "" {
		parsed, err := source.ParseFormat(format)
		if err != nil {
			return nil, err
		}
		f = parsed
	}

	var r io.Reader
	if path == stdinPath {
		r = cmd.InOrStdin()
	} else {
		file, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening input: %w", err)
		}
		defer file.Close()
		r = file
	}

	records, err := source.Load(r, f)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}

	a.logger.Debug().
		Str("path", path).
		Str("format", string(f)).
		Int("records", len(records)).
		Msg("records loaded")

	return records, nil
}
