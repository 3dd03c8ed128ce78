package geometry

import (
	"context"
	"fmt"

	"github.com/geodataio/meshconv/tablestore"
)

func loadTable(ctx context.Context, store tablestore.Store, ref tablestore.Ref, want tablestore.Kind) (*tablestore.Table, error) {
	t, err := store.Load(ctx, ref)
	if err != nil {
		return nil, err
	}
	if t.Kind != want {
		return nil, fmt.Errorf("geometry: %s references a %s table, want %s", ref, t.Kind, want)
	}
	return t, nil
}

// LoadTriangles loads the full base triangle stream.
func LoadTriangles(ctx context.Context, store tablestore.Store, ref tablestore.Ref) ([][3]uint64, error) {
	t, err := loadTable(ctx, store, ref, tablestore.KindTriangle)
	if err != nil {
		return nil, err
	}
	return t.Triangles, nil
}

// Materialize produces the flat interchange geometry: the full vertex set,
// unchanged, and the base triangles projected by resolved.
//
// resolved must already be validated against len(base); the parts resolver
// guarantees this. Order and duplicates in resolved are preserved, and the
// projected triangles keep their indices into the full vertex set — no
// compaction is performed.
func Materialize(ctx context.Context, store tablestore.Store, vertices tablestore.Ref, base [][3]uint64, resolved []uint64) ([][3]float32, [][3]uint64, error) {
	vt, err := loadTable(ctx, store, vertices, tablestore.KindVertex)
	if err != nil {
		return nil, nil, err
	}

	verts := make([][3]float32, len(vt.Vertices))
	for i, v := range vt.Vertices {
		verts[i] = [3]float32{float32(v[0]), float32(v[1]), float32(v[2])}
	}

	tris := make([][3]uint64, len(resolved))
	for i, row := range resolved {
		tris[i] = base[row]
	}

	return verts, tris, nil
}
