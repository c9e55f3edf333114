package pager

import (
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/rs/zerolog"

	"github.com/rshade/jable/internal/table"
)

// Controller is the pagination state for one presentation session.
type Controller struct {
	records  []table.Record
	columns  []string
	pageSize int
	current  int

	// noMenu suppresses the menu for the next Print only.
	noMenu bool

	menu   Menu
	prompt *Prompt
	out    io.Writer
	log    zerolog.Logger
}

// Option configures a Controller.
type Option func(*Controller)

// WithInput sets where menu choices are read from. Defaults to os.Stdin.
func WithInput(r io.Reader) Option {
	return func(c *Controller) { c.prompt = NewPrompt(r) }
}

// WithOutput sets where the table and menu are written. Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(c *Controller) { c.out = w }
}

// WithMenu replaces the menu labels.
func WithMenu(m Menu) Option {
	return func(c *Controller) { c.menu = m }
}

// WithLogger sets the logger used for session events.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Controller) { c.log = l }
}

// New registers records for presentation. The column set is taken from the
// first record and every other record must carry exactly those columns.
//
// It returns ErrNoRecords for an empty set, ErrInvalidPageSize when pageSize
// is below 1, and ErrSchemaMismatch for a non-uniform record.
func New(records []table.Record, pageSize int, opts ...Option) (*Controller, error) {
	if len(records) == 0 {
		return nil, ErrNoRecords
	}
	if pageSize < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPageSize, pageSize)
	}

	columns := records[0].Keys()
	if len(columns) == 0 {
		return nil, table.ErrNoColumns
	}
	for i, r := range records[1:] {
		if !r.HasSchema(columns) {
			return nil, fmt.Errorf("%w: record %d has columns %v, want %v",
				ErrSchemaMismatch, i+1, r.Keys(), columns)
		}
	}

	c := &Controller{
		records:  slices.Clone(records),
		columns:  columns,
		pageSize: pageSize,
		current:  1,
		menu:     DefaultMenu(),
		out:      os.Stdout,
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.prompt == nil {
		c.prompt = NewPrompt(os.Stdin)
	}

	c.log.Debug().
		Strs("columns", c.columns).
		Object("pagination", c.Meta()).
		Msg("table registered")

	return c, nil
}

// Columns returns the table's column names in order.
func (c *Controller) Columns() []string {
	return slices.Clone(c.columns)
}

// PageSize returns the number of records per page.
func (c *Controller) PageSize() int {
	return c.pageSize
}

// TotalRecords returns the number of registered records.
func (c *Controller) TotalRecords() int {
	return len(c.records)
}

// CurrentPage returns the 1-based current page number.
func (c *Controller) CurrentPage() int {
	return c.current
}

// TotalPages returns the last page number.
func (c *Controller) TotalPages() int {
	return PageCount(len(c.records), c.pageSize)
}

// View returns the records on the current page.
func (c *Controller) View() []table.Record {
	return PageView(c.records, c.pageSize, c.current)
}

// paged reports whether there is more than one page to move between.
func (c *Controller) paged() bool {
	return len(c.records) > c.pageSize
}

// NoMenu suppresses the navigation menu for the next Print, which then renders
// the current page once and returns.
func (c *Controller) NoMenu() {
	c.noMenu = true
}

// FirstPage moves to page 1.
func (c *Controller) FirstPage() bool {
	if !c.paged() {
		return false
	}
	return c.moveTo(1)
}

// PreviousPage moves back one page unless already on page 1.
func (c *Controller) PreviousPage() bool {
	if !c.paged() || c.current <= 1 {
		return false
	}
	return c.moveTo(c.current - 1)
}

// NextPage moves forward one page unless already on the last page.
func (c *Controller) NextPage() bool {
	if !c.paged() || c.current >= c.TotalPages() {
		return false
	}
	return c.moveTo(c.current + 1)
}

// LastPage moves to the last page.
func (c *Controller) LastPage() bool {
	if !c.paged() {
		return false
	}
	return c.moveTo(c.TotalPages())
}

// Apply runs the navigation transition for cmd and reports whether the page
// changed. CommandExit is not a transition and always reports false.
func (c *Controller) Apply(cmd Command) bool {
	switch cmd {
	case CommandFirst:
		return c.FirstPage()
	case CommandPrevious:
		return c.PreviousPage()
	case CommandNext:
		return c.NextPage()
	case CommandLast:
		return c.LastPage()
	default:
		return false
	}
}

func (c *Controller) moveTo(page int) bool {
	if page == c.current {
		return false
	}
	c.log.Debug().Int("from", c.current).Int("to", page).Msg("page changed")
	c.current = page
	return true
}
