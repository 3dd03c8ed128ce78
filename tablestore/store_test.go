package tablestore

import (
	"context"
	"errors"
	"testing"

	"github.com/geodataio/meshconv/blobstore"
	"github.com/stretchr/testify/require"
)

func TestParquetStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	tests := []struct {
		name  string
		table *Table
	}{
		{
			name: "vertex",
			table: NewVertexTable([][3]float64{
				{0.5, 1.25, -2.75},
				{3, 4, 5},
			}),
		},
		{
			name: "triangle",
			table: NewTriangleTable([][3]uint64{
				{0, 1, 2},
				{2, 1, 0},
			}),
		},
		{
			name: "chunk",
			table: NewChunkTable([]Chunk{
				{StartSegmentIndex: 25, NumberOfSegments: 10},
				{StartSegmentIndex: 0, NumberOfSegments: 3},
			}),
		},
		{
			name:  "index",
			table: NewIndexTable([]uint64{0, 5, 10, 15}),
		},
		{
			name:  "float values",
			table: NewFloatValuesTable([]float64{0.25, -1, 3.5}),
		},
		{
			name:  "int values",
			table: NewIntValuesTable([]int64{7, -3, 0}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref, err := store.Save(ctx, tt.table)
			require.NoError(t, err)
			require.NotEmpty(t, ref)

			got, err := store.Load(ctx, ref)
			require.NoError(t, err)
			require.Equal(t, tt.table, got)
		})
	}
}

func TestParquetStore_FreshRefPerSave(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	table := NewIndexTable([]uint64{1, 2, 3})

	ref1, err := store.Save(ctx, table)
	require.NoError(t, err)
	ref2, err := store.Save(ctx, table)
	require.NoError(t, err)

	require.NotEqual(t, ref1, ref2)

	// Both refs stay loadable; saves never invalidate earlier tables.
	for _, ref := range []Ref{ref1, ref2} {
		got, err := store.Load(ctx, ref)
		require.NoError(t, err)
		require.Equal(t, table, got)
	}
}

func TestParquetStore_EmptyTable(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	ref, err := store.Save(ctx, NewTriangleTable(nil))
	require.NoError(t, err)

	got, err := store.Load(ctx, ref)
	require.NoError(t, err)
	require.Equal(t, KindTriangle, got.Kind)
	require.Equal(t, 0, got.NumRows())
}

func TestParquetStore_LoadMissing(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Load(context.Background(), "vertex/does-not-exist.parquet")
	require.True(t, errors.Is(err, ErrNotFound))
}

func TestParquetStore_MalformedRef(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Load(context.Background(), "no-kind-prefix")
	require.Error(t, err)

	_, err = store.Load(context.Background(), "bogus/abc.parquet")
	require.Error(t, err)
}

func TestParquetStore_OnLocalBlobStore(t *testing.T) {
	ctx := context.Background()
	store := NewParquetStore(blobstore.NewLocalStore(t.TempDir()))

	table := NewVertexTable([][3]float64{{1, 2, 3}})
	ref, err := store.Save(ctx, table)
	require.NoError(t, err)

	got, err := store.Load(ctx, ref)
	require.NoError(t, err)
	require.Equal(t, table, got)
}
