package table_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/jable/internal/table"
)

func TestFromPairs(t *testing.T) {
	r, err := table.FromPairs("name", "Al", "age", "31")
	require.NoError(t, err)

	assert.Equal(t, []string{"name", "age"}, r.Keys())
	assert.Equal(t, 2, r.Len())

	v, ok := r.Get("age")
	assert.True(t, ok)
	assert.Equal(t, "31", v)
}

func TestFromPairs_OddArguments(t *testing.T) {
	_, err := table.FromPairs("name", "Al", "age")
	require.ErrorIs(t, err, table.ErrOddPairs)
}

func TestRecord_SetKeepsFirstPosition(t *testing.T) {
	r := table.NewRecord()
	require.NoError(t, r.Set("b", "1"))
	require.NoError(t, r.Set("a", "2"))
	require.NoError(t, r.Set("b", "3"))

	assert.Equal(t, []string{"b", "a"}, r.Keys())
	v, _ := r.Get("b")
	assert.Equal(t, "3", v)
}

func TestRecord_SetEmptyKey(t *testing.T) {
	var r table.Record
	require.ErrorIs(t, r.Set("", "x"), table.ErrEmptyColumn)
}

func TestRecord_ZeroValueSet(t *testing.T) {
	var r table.Record
	require.NoError(t, r.Set("k", "v"))
	assert.Equal(t, []string{"k"}, r.Keys())
}

func TestRecord_KeysIsCopy(t *testing.T) {
	r, err := table.FromPairs("a", "1", "b", "2")
	require.NoError(t, err)

	keys := r.Keys()
	keys[0] = "mutated"
	assert.Equal(t, []string{"a", "b"}, r.Keys())
}

func TestRecord_Value(t *testing.T) {
	r, err := table.FromPairs("name", "Al")
	require.NoError(t, err)

	_, err = r.Value("missing")
	require.ErrorIs(t, err, table.ErrMissingColumn)
	assert.Contains(t, err.Error(), `"missing"`)
}

func TestRecord_HasSchema(t *testing.T) {
	r, err := table.FromPairs("name", "Al", "age", "31")
	require.NoError(t, err)

	tests := []struct {
		name    string
		columns []string
		want    bool
	}{
		{name: "same order", columns: []string{"name", "age"}, want: true},
		{name: "other order", columns: []string{"age", "name"}, want: true},
		{name: "subset", columns: []string{"name"}, want: false},
		{name: "different key", columns: []string{"name", "city"}, want: false},
		{name: "superset", columns: []string{"name", "age", "city"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.HasSchema(tt.columns))
		})
	}
}
