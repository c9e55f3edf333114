package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/jable/internal/pager"
)

// ErrInvalidPageSizeFlag is returned for a --page-size below 1.
var ErrInvalidPageSizeFlag = errors.New("--page-size must be >= 1")

// tableFlags holds the presentation flags shared by show and query.
type tableFlags struct {
	pageSize   int
	noMenu     bool
	menuLabels []string
}

// register adds the presentation flags to cmd.
func (f *tableFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.pageSize, "page-size", 0, "records per page (default from config, 10)")
	cmd.Flags().BoolVar(&f.noMenu, "no-menu", false, "render the first page once without the navigation menu")
	cmd.Flags().StringSliceVar(&f.menuLabels, "menu-labels", nil,
		"five comma-separated menu labels: previous,next,first,last,exit")
}

// resolveTable merges the flags with the config defaults. Flags that were set on
// the command line win.
//
//nolint:nonamedreturns // Named returns document the two resolved values.
func (a *app) resolveTable(cmd *cobra.Command, f tableFlags) (pageSize int, menu pager.Menu, err error) {
	pageSize = a.cfg.Table.PageSize
	if cmd.Flags().Changed("page-size") {
		if f.pageSize < 1 {
			return 0, pager.Menu{}, fmt.Errorf("%w: got %d", ErrInvalidPageSizeFlag, f.pageSize)
		}
		pageSize = f.pageSize
	}

	labels := a.cfg.Table.MenuLabels
	if cmd.Flags().Changed("menu-labels") {
		labels = f.menuLabels
	}
	if len(labels) == 0 {
		return pageSize, pager.DefaultMenu(), nil
	}

	menu, err = pager.NewMenu(labels)
	if err != nil {
		return 0, pager.Menu{}, err
	}
	return pageSize, menu, nil
}
