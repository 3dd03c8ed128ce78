package omf

import "fmt"

// Location states which geometry rows a data array is bound to.
type Location string

const (
	// LocationVertices binds one value per vertex.
	LocationVertices Location = "vertices"
	// LocationFaces binds one value per triangle.
	LocationFaces Location = "faces"
)

// GeometryKind names a geometry variant.
type GeometryKind string

const (
	// KindSurface is a triangulated surface.
	KindSurface GeometryKind = "surface"
	// KindPointSet is a bare point cloud.
	KindPointSet GeometryKind = "pointset"
)

// Geometry is the closed set of element geometries.
type Geometry interface {
	Kind() GeometryKind
}

// SurfaceGeometry is a triangulated surface: vertex positions plus
// vertex-index triples. Triangle indices reference rows of Vertices.
type SurfaceGeometry struct {
	Vertices  [][3]float32 `json:"vertices"`
	Triangles [][3]uint64  `json:"triangles"`
}

// Kind implements Geometry.
func (*SurfaceGeometry) Kind() GeometryKind { return KindSurface }

// PointSetGeometry is a bare point cloud with no connectivity.
type PointSetGeometry struct {
	Vertices [][3]float32 `json:"vertices"`
}

// Kind implements Geometry.
func (*PointSetGeometry) Kind() GeometryKind { return KindPointSet }

// ScalarData is a scalar array bound to an element's vertices or faces.
// Sentinel values inside Array are carried as literal data.
type ScalarData struct {
	Name     string    `json:"name"`
	Location Location  `json:"location"`
	Array    []float64 `json:"array"`
}

// Element is one named, attribute-decorated geometry.
type Element struct {
	Name        string
	Description string
	Geometry    Geometry
	Data        []ScalarData
}

// Project is the multi-element interchange container.
type Project struct {
	Name        string
	Description string
	Elements    []Element
}

// ErrUnsupportedGeometryType reports an element geometry outside the set a
// converter handles.
type ErrUnsupportedGeometryType struct {
	Kind GeometryKind
}

func (e *ErrUnsupportedGeometryType) Error() string {
	return fmt.Sprintf("unsupported geometry type: %s", e.Kind)
}
