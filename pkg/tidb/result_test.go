package tidb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResult_ToMaps(t *testing.T) {
	r := &Result{
		Columns: []Column{{Name: "id", Type: "BIGINT"}, {Name: "name", Type: "VARCHAR"}},
		Rows:    [][]string{{"1", "Alice"}, {"2", "Bob"}},
	}

	records := r.ToMaps()
	require.Len(t, records, 2)
	assert.Equal(t, map[string]string{"id": "1", "name": "Alice"}, records[0])
	assert.Equal(t, map[string]string{"id": "2", "name": "Bob"}, records[1])
}

func TestResult_ToMaps_Empty(t *testing.T) {
	assert.Nil(t, (&Result{}).ToMaps())
	assert.Nil(t, (&Result{Columns: []Column{{Name: "id"}}}).ToMaps())
	assert.Nil(t, (&Result{Rows: [][]string{{"1"}}}).ToMaps())
}

func TestResult_ColumnNames(t *testing.T) {
	r := &Result{Columns: []Column{{Name: "a"}, {Name: "b"}}}
	assert.Equal(t, []string{"a", "b"}, r.ColumnNames())
}
