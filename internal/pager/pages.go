package pager

import "github.com/rshade/jable/internal/table"

// PageCount returns the number of pages needed for total records, never less
// than 1.
func PageCount(total, pageSize int) int {
	if pageSize < 1 || total <= 0 {
		return 1
	}
	pages := total / pageSize
	if total%pageSize > 0 {
		pages++
	}
	return pages
}

// PageBounds returns the half-open index range of page (1-based) clamped to
// [0, total].
//
//nolint:nonamedreturns // Named returns document the range ends.
func PageBounds(total, pageSize, page int) (start, end int) {
	start = min(max((page-1)*pageSize, 0), total)
	end = min(max(page*pageSize, 0), total)
	return start, end
}

// PageView returns the records on page. The result shares storage with
// records but its capacity is capped so appends cannot clobber later pages.
func PageView(records []table.Record, pageSize, page int) []table.Record {
	start, end := PageBounds(len(records), pageSize, page)
	return records[start:end:end]
}
