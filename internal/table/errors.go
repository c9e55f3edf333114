package table

import "errors"

// Layout and record errors.
var (
	ErrNoColumns     = errors.New("table has no columns")
	ErrMissingColumn = errors.New("record is missing column")
	ErrCellCount     = errors.New("cell count does not match column count")
	ErrOddPairs      = errors.New("key/value pairs must have even length")
	ErrEmptyColumn   = errors.New("column name cannot be empty")
)
