package pager

import "github.com/rs/zerolog"

// Meta describes the pagination state at one point in time.
type Meta struct {
	CurrentPage int
	PageSize    int
	TotalPages  int
	TotalItems  int
	HasPrevious bool
	HasNext     bool
}

// Meta returns the current pagination metadata.
func (c *Controller) Meta() Meta {
	total := c.TotalPages()
	return Meta{
		CurrentPage: c.current,
		PageSize:    c.pageSize,
		TotalPages:  total,
		TotalItems:  len(c.records),
		HasPrevious: c.current > 1,
		HasNext:     c.current < total,
	}
}

// MarshalZerologObject implements zerolog.LogObjectMarshaler.
func (m Meta) MarshalZerologObject(e *zerolog.Event) {
	e.Int("current_page", m.CurrentPage).
		Int("page_size", m.PageSize).
		Int("total_pages", m.TotalPages).
		Int("total_items", m.TotalItems).
		Bool("has_previous", m.HasPrevious).
		Bool("has_next", m.HasNext)
}
