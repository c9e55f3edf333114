package table

import (
	"fmt"
	"slices"
)

// Record is one table row. Keys keep the order in which they were first set.
type Record struct {
	keys   []string
	values map[string]string
}

// NewRecord returns an empty record.
func NewRecord() Record {
	return Record{values: make(map[string]string)}
}

// FromPairs builds a record from alternating key and value arguments.
//
//	table.FromPairs("name", "Al", "age", "31")
func FromPairs(kv ...string) (Record, error) {
	if len(kv)%2 != 0 {
		return Record{}, fmt.Errorf("%w: got %d arguments", ErrOddPairs, len(kv))
	}
	r := NewRecord()
	for i := 0; i < len(kv); i += 2 {
		if err := r.Set(kv[i], kv[i+1]); err != nil {
			return Record{}, err
		}
	}
	return r, nil
}

// Set stores value under key. A new key is appended to the key order; an
// existing key keeps its position.
func (r *Record) Set(key, value string) error {
	if key == "" {
		return ErrEmptyColumn
	}
	if r.values == nil {
		r.values = make(map[string]string)
	}
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.values[key] = value
	return nil
}

// Get returns the value stored under key.
func (r Record) Get(key string) (string, bool) {
	v, ok := r.values[key]
	return v, ok
}

// Value returns the value stored under key or ErrMissingColumn.
func (r Record) Value(key string) (string, error) {
	v, ok := r.values[key]
	if !ok {
		return "", fmt.Errorf("%w %q", ErrMissingColumn, key)
	}
	return v, nil
}

// Keys returns a copy of the record's keys in order.
func (r Record) Keys() []string {
	return slices.Clone(r.keys)
}

// Len returns the number of columns in the record.
func (r Record) Len() int {
	return len(r.keys)
}

// HasSchema reports whether the record carries exactly the given columns,
// in any order.
func (r Record) HasSchema(columns []string) bool {
	if len(columns) != len(r.keys) {
		return false
	}
	for _, c := range columns {
		if _, ok := r.values[c]; !ok {
			return false
		}
	}
	return true
}
