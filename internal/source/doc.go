// Package source loads table records from JSON, YAML, CSV and SQL result sets.
//
// Every loader keeps the column order of its input: object key order for JSON,
// mapping order for YAML, the header row for CSV, and the result column order
// for SQL.
package source
