package pager_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rshade/jable/internal/table"
)

func names(t *testing.T, values ...string) []table.Record {
	t.Helper()
	out := make([]table.Record, 0, len(values))
	for _, v := range values {
		r, err := table.FromPairs("name", v)
		require.NoError(t, err)
		out = append(out, r)
	}
	return out
}

func numbered(t *testing.T, n int) []table.Record {
	t.Helper()
	values := make([]string, n)
	for i := range values {
		values[i] = strconv.Itoa(i + 1)
	}
	return names(t, values...)
}

func column(t *testing.T, records []table.Record, col string) []string {
	t.Helper()
	out := make([]string, 0, len(records))
	for _, r := range records {
		v, err := r.Value(col)
		require.NoError(t, err)
		out = append(out, v)
	}
	return out
}
