package schema

import (
	"github.com/geodataio/meshconv/tablestore"
	"github.com/google/uuid"
)

// CRS identifies the coordinate reference system of an object.
type CRS struct {
	EPSGCode int `json:"epsg_code"`
}

// BoundingBox is the axis-aligned extent of an object's vertices.
type BoundingBox struct {
	MinX, MinY, MinZ float64
	MaxX, MaxY, MaxZ float64
}

// Object is a canonical mesh object in one of the supported schema versions.
//
// The implementation set is closed; Normalize rejects anything it does not
// recognize.
type Object interface {
	// SchemaVersion returns the stable version tag, e.g. "triangle-mesh/2.1".
	SchemaVersion() string
	// ObjectName returns the object's display name.
	ObjectName() string
}

// TriangleMeshV1_0 is the oldest supported shape. Attributes nest directly on
// the object, are always vertex-located, and there is no parts descriptor.
type TriangleMeshV1_0 struct {
	Name        string `validate:"required"`
	Description string
	UUID        *uuid.UUID
	BoundingBox BoundingBox
	CRS         CRS

	Vertices   tablestore.Ref `validate:"required"`
	Indices    tablestore.Ref `validate:"required"`
	Attributes []Attribute
}

// SchemaVersion implements Object.
func (*TriangleMeshV1_0) SchemaVersion() string { return "triangle-mesh/1.0" }

// ObjectName implements Object.
func (m *TriangleMeshV1_0) ObjectName() string { return m.Name }

// VertexComponent is the vertex table of a Triangles component together with
// its vertex-located attributes.
type VertexComponent struct {
	Table      tablestore.Ref `validate:"required"`
	Attributes []Attribute
}

// IndexComponent is the triangle-index table of a Triangles component
// together with its face-located attributes.
type IndexComponent struct {
	Table      tablestore.Ref `validate:"required"`
	Attributes []Attribute
}

// Triangles groups the geometry tables of the v2 shapes.
type Triangles struct {
	Vertices VertexComponent
	Indices  IndexComponent
}

// Parts selects a subset of the base triangle stream.
//
// Chunks references a chunk-descriptor table of contiguous runs.
// TriangleIndices, when present, references a single-column index table whose
// entries address positions within the chunk-concatenated sequence, not the
// base stream.
type Parts struct {
	Chunks          tablestore.Ref `validate:"required"`
	TriangleIndices *tablestore.Ref
}

// TriangleMeshV2_0 carries per-vertex and per-face attributes but no parts
// descriptor.
type TriangleMeshV2_0 struct {
	Name        string `validate:"required"`
	Description string
	UUID        *uuid.UUID
	BoundingBox BoundingBox
	CRS         CRS

	Triangles Triangles
}

// SchemaVersion implements Object.
func (*TriangleMeshV2_0) SchemaVersion() string { return "triangle-mesh/2.0" }

// ObjectName implements Object.
func (m *TriangleMeshV2_0) ObjectName() string { return m.Name }

// TriangleMeshV2_1 is the current schema version: the v2.0 shape plus an
// optional parts descriptor.
type TriangleMeshV2_1 struct {
	Name        string `validate:"required"`
	Description string
	UUID        *uuid.UUID
	BoundingBox BoundingBox
	CRS         CRS

	Triangles Triangles
	Parts     *Parts
}

// SchemaVersion implements Object.
func (*TriangleMeshV2_1) SchemaVersion() string { return "triangle-mesh/2.1" }

// ObjectName implements Object.
func (m *TriangleMeshV2_1) ObjectName() string { return m.Name }
