package pager

import (
	"context"
	"fmt"
	"io"

	"github.com/rshade/jable/internal/table"
)

// Render writes the current page once: the bordered table followed by the
// page info line.
func (c *Controller) Render() error {
	if err := table.Render(c.out, c.columns, c.View()); err != nil {
		return fmt.Errorf("rendering page %d: %w", c.current, err)
	}
	_, err := fmt.Fprintf(c.out, "Page %d / %d\n", c.current, c.TotalPages())
	return err
}

// Print runs the interactive loop. Each pass renders the current page, shows
// the numbered menu, reads one choice and applies it, until the user exits.
//
// The loop also ends when the menu is suppressed with NoMenu (one pass only),
// when there is a single page, and when the input cannot be read as a number.
// A choice that is a number but not a menu entry re-renders the same page.
func (c *Controller) Print(ctx context.Context) error {
	defer func() { c.noMenu = false }()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := c.Render(); err != nil {
			return err
		}

		if c.noMenu {
			return nil
		}
		if !c.paged() {
			return writeLines(c.out, MsgNoMorePages, MsgExiting)
		}

		if _, err := io.WriteString(c.out, c.menu.Render()); err != nil {
			return err
		}

		choice, err := c.prompt.ReadChoice()
		if err != nil {
			c.log.Debug().Err(err).Msg("unreadable menu choice, exiting")
			return writeLines(c.out, MsgAutoExit)
		}

		cmd, ok := ParseCommand(choice)
		if !ok {
			c.log.Debug().Int("choice", choice).Msg("unknown menu choice")
			if err = writeLines(c.out, MsgTryAgain); err != nil {
				return err
			}
			continue
		}

		c.log.Debug().Stringer("command", cmd).Str("label", c.menu.Label(cmd)).Msg("menu selection")
		if cmd == CommandExit {
			return writeLines(c.out, MsgExiting)
		}
		c.Apply(cmd)
	}
}

func writeLines(w io.Writer, lines ...string) error {
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}
