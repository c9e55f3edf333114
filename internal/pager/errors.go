package pager

import "errors"

// Registration and input errors.
var (
	ErrNoRecords       = errors.New("no records found")
	ErrInvalidPageSize = errors.New("page size must be >= 1")
	ErrSchemaMismatch  = errors.New("record columns do not match the table columns")
	ErrInvalidMenu     = errors.New("menu must have exactly 5 non-empty labels")
	ErrMalformedInput  = errors.New("malformed menu input")
)
