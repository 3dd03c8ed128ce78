package geometry

import (
	"context"
	"fmt"

	"github.com/geodataio/meshconv/omf"
	"github.com/geodataio/meshconv/schema"
	"github.com/geodataio/meshconv/tablestore"
)

// ErrAttributeLengthMismatch reports an attribute whose value count does not
// match the geometry rows it claims to describe.
type ErrAttributeLengthMismatch struct {
	Name     string
	Location omf.Location
	Got      int
	Want     int
}

func (e *ErrAttributeLengthMismatch) Error() string {
	return fmt.Sprintf("attribute %q: %d values for %d %s", e.Name, e.Got, e.Want, e.Location)
}

// BindAttributes maps canonical attributes onto the materialized geometry.
//
// Vertex attributes pass through unprojected: their length must equal
// vertexCount. Face attributes must match the base triangle count and are
// projected with the same resolved index list the materializer used, keeping
// attribute-to-face correspondence across any chunk or index selection.
// Sentinel values are carried as literal data.
//
// Vertex-located entries come first in the result, in source order.
func BindAttributes(ctx context.Context, store tablestore.Store, vertexAttrs, faceAttrs []schema.NormalizedAttribute, vertexCount, baseFaceCount int, resolved []uint64) ([]omf.ScalarData, error) {
	out := make([]omf.ScalarData, 0, len(vertexAttrs)+len(faceAttrs))

	for _, attr := range vertexAttrs {
		values, err := loadValues(ctx, store, attr.Values)
		if err != nil {
			return nil, err
		}
		if len(values) != vertexCount {
			return nil, &ErrAttributeLengthMismatch{
				Name:     attr.Name,
				Location: omf.LocationVertices,
				Got:      len(values),
				Want:     vertexCount,
			}
		}
		out = append(out, omf.ScalarData{
			Name:     attr.Name,
			Location: omf.LocationVertices,
			Array:    values,
		})
	}

	for _, attr := range faceAttrs {
		values, err := loadValues(ctx, store, attr.Values)
		if err != nil {
			return nil, err
		}
		if len(values) != baseFaceCount {
			return nil, &ErrAttributeLengthMismatch{
				Name:     attr.Name,
				Location: omf.LocationFaces,
				Got:      len(values),
				Want:     baseFaceCount,
			}
		}

		projected := make([]float64, len(resolved))
		for i, row := range resolved {
			projected[i] = values[row]
		}
		out = append(out, omf.ScalarData{
			Name:     attr.Name,
			Location: omf.LocationFaces,
			Array:    projected,
		})
	}

	return out, nil
}

// loadValues loads an attribute value table. Integer category codes are
// widened to float64 so all interchange arrays share one representation.
func loadValues(ctx context.Context, store tablestore.Store, ref tablestore.Ref) ([]float64, error) {
	t, err := store.Load(ctx, ref)
	if err != nil {
		return nil, err
	}
	switch t.Kind {
	case tablestore.KindFloatValues:
		return t.Floats, nil
	case tablestore.KindIntValues:
		values := make([]float64, len(t.Ints))
		for i, v := range t.Ints {
			values[i] = float64(v)
		}
		return values, nil
	default:
		return nil, fmt.Errorf("geometry: %s references a %s table, want attribute values", ref, t.Kind)
	}
}
