package source

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"github.com/rshade/jable/internal/table"
)

// Rows is the subset of *sql.Rows read by FromRows.
type Rows interface {
	Columns() ([]string, error)
	Next() bool
	Scan(dest ...any) error
	Err() error
}

// Querier runs a query. *sql.DB, *sql.Conn and *sql.Tx satisfy it.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// FromQuery runs query and converts the result set to records.
func FromQuery(ctx context.Context, db Querier, query string, args ...any) ([]table.Record, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running query: %w", err)
	}
	defer rows.Close()

	return FromRows(rows)
}

// FromRows converts every remaining row to a record keyed by result column.
func FromRows(rows Rows) ([]table.Record, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("reading result columns: %w", err)
	}

	values := make([]any, len(columns))
	scanArgs := make([]any, len(values))
	for i := range values {
		scanArgs[i] = &values[i]
	}

	var records []table.Record
	for rows.Next() {
		if err = rows.Scan(scanArgs...); err != nil {
			return nil, fmt.Errorf("scanning row %d: %w", len(records), err)
		}

		rec := table.NewRecord()
		for i, col := range columns {
			if err = setUnique(&rec, col, sqlCell(values[i])); err != nil {
				return nil, fmt.Errorf("result columns: %w", err)
			}
		}
		records = append(records, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("reading rows: %w", err)
	}
	return records, nil
}

func sqlCell(v any) string {
	switch x := v.(type) {
	case nil:
		return NullValue
	case []byte:
		return string(x)
	case string:
		return x
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	case time.Time:
		return x.Format(time.RFC3339)
	default:
		return fmt.Sprintf("%v", x)
	}
}
