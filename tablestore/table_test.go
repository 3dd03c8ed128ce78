package tablestore

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTable_NumRows(t *testing.T) {
	tests := []struct {
		name  string
		table *Table
		want  int
	}{
		{"vertex", NewVertexTable([][3]float64{{0, 0, 0}, {1, 1, 1}}), 2},
		{"triangle", NewTriangleTable([][3]uint64{{0, 1, 2}}), 1},
		{"chunk", NewChunkTable(nil), 0},
		{"index", NewIndexTable([]uint64{1, 2, 3}), 3},
		{"float values", NewFloatValuesTable([]float64{1.5}), 1},
		{"int values", NewIntValuesTable([]int64{1, 2}), 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.table.NumRows())
		})
	}
}

func TestRef_KindPrefix(t *testing.T) {
	for _, kind := range []Kind{KindVertex, KindTriangle, KindChunk, KindIndex, KindFloatValues, KindIntValues} {
		ref := newRef(kind)

		got, err := ref.kind()
		require.NoError(t, err)
		require.Equal(t, kind, got)
	}
}

func TestRef_Malformed(t *testing.T) {
	_, err := Ref("nope").kind()
	require.Error(t, err)

	_, err = Ref("unknown-kind/x.parquet").kind()
	require.Error(t, err)
}
