// Package table is the layout engine for bordered text tables.
//
// It provides:
//   - Record: an ordered column-to-value mapping with a pinned key order
//   - ColumnWidth: page-local column width measurement
//   - Layout: border and centered row rendering for a single page
//
// Widths are measured over the records handed to the layout, normally the
// current page only, so column widths may shift from one page to the next.
package table
