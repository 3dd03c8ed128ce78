package schema

import (
	"fmt"

	"github.com/geodataio/meshconv/tablestore"
	"github.com/go-playground/validator/v10"
)

// ErrUnsupportedSchemaVersion is returned when an object or attribute falls
// outside the supported version set.
type ErrUnsupportedSchemaVersion struct {
	Version string
}

func (e *ErrUnsupportedSchemaVersion) Error() string {
	return fmt.Sprintf("unsupported schema version: %s", e.Version)
}

// NormalizedAttribute is the version-erased attribute record.
type NormalizedAttribute struct {
	Name           string
	Values         tablestore.Ref
	NaNDescription []float64
}

// Normalized is the version-erased shape every supported mesh object reduces
// to. Attribute order follows the source object; nothing is renamed or
// deduplicated.
type Normalized struct {
	Name        string
	Description string
	BoundingBox BoundingBox
	CRS         CRS

	Vertices  tablestore.Ref
	Triangles tablestore.Ref

	VertexAttributes []NormalizedAttribute
	FaceAttributes   []NormalizedAttribute

	Parts *Parts
}

var validate = validator.New()

// Normalize adapts any supported schema version into the internal shape.
//
// It returns ErrUnsupportedSchemaVersion for objects or attributes outside
// the closed version set, and a validation error for structurally invalid
// objects (missing name or table references).
func Normalize(obj Object) (*Normalized, error) {
	if obj == nil {
		return nil, &ErrUnsupportedSchemaVersion{Version: "<nil>"}
	}

	var n *Normalized

	switch m := obj.(type) {
	case *TriangleMeshV1_0:
		vertexAttrs, err := normalizeAttributes(m.Attributes)
		if err != nil {
			return nil, err
		}
		n = &Normalized{
			Name:             m.Name,
			Description:      m.Description,
			BoundingBox:      m.BoundingBox,
			CRS:              m.CRS,
			Vertices:         m.Vertices,
			Triangles:        m.Indices,
			VertexAttributes: vertexAttrs,
		}
	case *TriangleMeshV2_0:
		vertexAttrs, faceAttrs, err := normalizeTriangles(m.Triangles)
		if err != nil {
			return nil, err
		}
		n = &Normalized{
			Name:             m.Name,
			Description:      m.Description,
			BoundingBox:      m.BoundingBox,
			CRS:              m.CRS,
			Vertices:         m.Triangles.Vertices.Table,
			Triangles:        m.Triangles.Indices.Table,
			VertexAttributes: vertexAttrs,
			FaceAttributes:   faceAttrs,
		}
	case *TriangleMeshV2_1:
		vertexAttrs, faceAttrs, err := normalizeTriangles(m.Triangles)
		if err != nil {
			return nil, err
		}
		n = &Normalized{
			Name:             m.Name,
			Description:      m.Description,
			BoundingBox:      m.BoundingBox,
			CRS:              m.CRS,
			Vertices:         m.Triangles.Vertices.Table,
			Triangles:        m.Triangles.Indices.Table,
			VertexAttributes: vertexAttrs,
			FaceAttributes:   faceAttrs,
			Parts:            m.Parts,
		}
	default:
		return nil, &ErrUnsupportedSchemaVersion{Version: obj.SchemaVersion()}
	}

	if err := validate.Struct(obj); err != nil {
		return nil, fmt.Errorf("schema: invalid %s object: %w", obj.SchemaVersion(), err)
	}

	return n, nil
}

func normalizeTriangles(t Triangles) (vertexAttrs, faceAttrs []NormalizedAttribute, err error) {
	vertexAttrs, err = normalizeAttributes(t.Vertices.Attributes)
	if err != nil {
		return nil, nil, err
	}
	faceAttrs, err = normalizeAttributes(t.Indices.Attributes)
	if err != nil {
		return nil, nil, err
	}
	return vertexAttrs, faceAttrs, nil
}

func normalizeAttributes(attrs []Attribute) ([]NormalizedAttribute, error) {
	if len(attrs) == 0 {
		return nil, nil
	}

	out := make([]NormalizedAttribute, 0, len(attrs))
	for _, attr := range attrs {
		switch a := attr.(type) {
		case *ContinuousAttributeV1_0:
			out = append(out, NormalizedAttribute{
				Name:           a.Name,
				Values:         a.Values,
				NaNDescription: a.NaNDescription,
			})
		case *ContinuousAttributeV1_1:
			out = append(out, NormalizedAttribute{
				Name:           a.Name,
				Values:         a.Values,
				NaNDescription: a.NaNDescription,
			})
		case *CategoryAttributeV1_0:
			out = append(out, NormalizedAttribute{
				Name:   a.Name,
				Values: a.Values,
			})
		default:
			if attr == nil {
				return nil, &ErrUnsupportedSchemaVersion{Version: "<nil attribute>"}
			}
			return nil, &ErrUnsupportedSchemaVersion{Version: attr.SchemaVersion()}
		}
	}
	return out, nil
}
