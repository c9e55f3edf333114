package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/rshade/jable/internal/logging"
	"github.com/rshade/jable/internal/pager"
	"github.com/rshade/jable/internal/table"
)

// present registers records and runs one interactive session on cmd's streams.
// An empty record set is reported on stderr and is not an error.
func (a *app) present(cmd *cobra.Command, records []table.Record, f tableFlags) error {
	pageSize, menu, err := a.resolveTable(cmd, f)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	sessionID := logging.GetOrGenerateSessionID(ctx)
	ctx = logging.ContextWithSessionID(ctx, sessionID)
	log := logging.WithSessionID(logging.ComponentLogger(a.logger, "pager"), sessionID)

	c, err := pager.New(records, pageSize,
		pager.WithInput(cmd.InOrStdin()),
		pager.WithOutput(cmd.OutOrStdout()),
		pager.WithMenu(menu),
		pager.WithLogger(log),
	)
	if errors.Is(err, pager.ErrNoRecords) {
		cmd.PrintErrln(pager.MsgNoRecords)
		log.Warn().Msg("nothing to present")
		return nil
	}
	if err != nil {
		return err
	}

	if f.noMenu {
		c.NoMenu()
	}
	if err = c.Print(ctx); err != nil {
		return err
	}

	log.Debug().Int("page", c.CurrentPage()).Msg("session ended")
	return nil
}
