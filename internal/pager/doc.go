// Package pager provides the pagination controller for bordered tables.
//
// A Controller owns the full record set, a fixed page size, and the current
// page number. It exposes the navigation transitions (first, previous, next,
// last) and drives an interactive loop that renders the current page through
// the table layout engine and reads one numbered menu choice per iteration.
//
// A Controller is confined to a single session and goroutine; it carries no
// locking.
package pager
