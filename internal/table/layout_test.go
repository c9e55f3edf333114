package table_test

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/jable/internal/table"
)

func mustRecords(t *testing.T, rows ...[]string) []table.Record {
	t.Helper()
	out := make([]table.Record, 0, len(rows))
	for _, kv := range rows {
		r, err := table.FromPairs(kv...)
		require.NoError(t, err)
		out = append(out, r)
	}
	return out
}

func TestColumnWidth(t *testing.T) {
	page := mustRecords(t,
		[]string{"name", "Al"},
		[]string{"name", "Bob"},
	)

	w, err := table.ColumnWidth("name", page)
	require.NoError(t, err)
	assert.Equal(t, 4, w, "header is the widest entry")

	page = mustRecords(t, []string{"name", "Carl Sagan"})
	w, err = table.ColumnWidth("name", page)
	require.NoError(t, err)
	assert.Equal(t, 10, w)
}

func TestColumnWidth_EmptyPage(t *testing.T) {
	w, err := table.ColumnWidth("status", nil)
	require.NoError(t, err)
	assert.Equal(t, 6, w)
}

func TestColumnWidth_MissingColumn(t *testing.T) {
	page := mustRecords(t, []string{"name", "Al"})
	_, err := table.ColumnWidth("age", page)
	require.ErrorIs(t, err, table.ErrMissingColumn)
}

func TestCenter(t *testing.T) {
	tests := []struct {
		cell  string
		field int
		want  string
	}{
		{cell: "name", field: 6, want: " name "},
		{cell: "Al", field: 6, want: "  Al  "},
		{cell: "Bob", field: 6, want: " Bob  "},
		{cell: "", field: 3, want: "   "},
		{cell: "toolong", field: 3, want: "toolong"},
	}

	for _, tt := range tests {
		t.Run(tt.cell, func(t *testing.T) {
			assert.Equal(t, tt.want, table.Center(tt.cell, tt.field))
		})
	}
}

func TestCenter_PaddingLaw(t *testing.T) {
	for l := 0; l <= 8; l++ {
		for w := l; w <= 12; w++ {
			cell := string(bytes.Repeat([]byte("x"), l))
			got := table.Center(cell, w)

			left := len(got) - len(trimLeft(got))
			right := len(got) - len(trimRight(got))
			if l == 0 {
				left, right = w/2, w-w/2
			}

			assert.Equal(t, w-l, left+right, "L=%d W=%d", l, w)
			assert.Equal(t, (w-l)/2, left, "L=%d W=%d", l, w)
		}
	}
}

func trimLeft(s string) string  { return string(bytes.TrimLeft([]byte(s), " ")) }
func trimRight(s string) string { return string(bytes.TrimRight([]byte(s), " ")) }

func TestLayout_BorderAndHeader(t *testing.T) {
	page := mustRecords(t,
		[]string{"name", "Al"},
		[]string{"name", "Bob"},
	)
	l, err := table.NewLayout([]string{"name"}, page)
	require.NoError(t, err)

	assert.Equal(t, "+------+\n", l.Border())
	assert.Equal(t, "| name |\n", l.Header())

	row, err := l.RecordRow(page[0])
	require.NoError(t, err)
	assert.Equal(t, "|  Al  |\n", row)

	row, err = l.RecordRow(page[1])
	require.NoError(t, err)
	assert.Equal(t, "| Bob  |\n", row)
}

func TestLayout_Errors(t *testing.T) {
	_, err := table.NewLayout(nil, nil)
	require.ErrorIs(t, err, table.ErrNoColumns)

	page := mustRecords(t, []string{"name", "Al"})
	_, err = table.NewLayout([]string{"name", "age"}, page)
	require.ErrorIs(t, err, table.ErrMissingColumn)

	l, err := table.NewLayout([]string{"name"}, page)
	require.NoError(t, err)

	_, err = l.Row([]string{"a", "b"})
	require.ErrorIs(t, err, table.ErrCellCount)

	other := mustRecords(t, []string{"city", "Oslo"})
	_, err = l.RecordRow(other[0])
	require.ErrorIs(t, err, table.ErrMissingColumn)
}

func TestLayout_WidthsArePageLocal(t *testing.T) {
	page1 := mustRecords(t, []string{"id", "1"}, []string{"id", "2"})
	page2 := mustRecords(t, []string{"id", "12345"})

	l1, err := table.NewLayout([]string{"id"}, page1)
	require.NoError(t, err)
	l2, err := table.NewLayout([]string{"id"}, page2)
	require.NoError(t, err)

	assert.Equal(t, "+----+\n", l1.Border())
	assert.Equal(t, "+-------+\n", l2.Border())
}

func TestRender(t *testing.T) {
	page := mustRecords(t,
		[]string{"name", "Al", "age", "31"},
		[]string{"name", "Bob", "age", "7"},
		[]string{"name", "Carl", "age", "100"},
	)

	var buf bytes.Buffer
	require.NoError(t, table.Render(&buf, []string{"name", "age"}, page))

	g := goldie.New(t)
	g.Assert(t, "render_basic", buf.Bytes())
}

func TestRender_WideRunes(t *testing.T) {
	page := mustRecords(t,
		[]string{"city", "東京", "code", "JP"},
		[]string{"city", "Berlin", "code", "DE"},
	)

	var buf bytes.Buffer
	require.NoError(t, table.Render(&buf, []string{"city", "code"}, page))

	g := goldie.New(t)
	g.Assert(t, "render_wide", buf.Bytes())
}

func TestRender_HeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, table.Render(&buf, []string{"id"}, nil))
	assert.Equal(t, "+----+\n| id |\n+----+\n", buf.String())
}
