package tablestore

import "fmt"

// Kind identifies the schema of a columnar table.
type Kind uint8

const (
	// KindVertex is a table of 3-D coordinates: float64 columns x, y, z.
	KindVertex Kind = iota + 1
	// KindTriangle is a table of vertex-index triples: uint64 columns n0, n1, n2.
	KindTriangle
	// KindChunk is a table of contiguous triangle runs: uint64 columns
	// start_segment_index, number_of_segments.
	KindChunk
	// KindIndex is a single-column uint64 table: column index.
	KindIndex
	// KindFloatValues is a single-column float64 attribute table: column values.
	KindFloatValues
	// KindIntValues is a single-column int64 attribute table: column values.
	KindIntValues
)

// String returns the stable name of the kind. It is used as the Ref prefix.
func (k Kind) String() string {
	switch k {
	case KindVertex:
		return "vertex"
	case KindTriangle:
		return "triangle"
	case KindChunk:
		return "chunk"
	case KindIndex:
		return "index"
	case KindFloatValues:
		return "float-values"
	case KindIntValues:
		return "int-values"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

func kindByName(name string) (Kind, bool) {
	switch name {
	case "vertex":
		return KindVertex, true
	case "triangle":
		return KindTriangle, true
	case "chunk":
		return KindChunk, true
	case "index":
		return KindIndex, true
	case "float-values":
		return KindFloatValues, true
	case "int-values":
		return KindIntValues, true
	default:
		return 0, false
	}
}

// Chunk describes a contiguous run of rows in a base triangle stream.
type Chunk struct {
	StartSegmentIndex uint64
	NumberOfSegments  uint64
}

// Table is a columnar table in one of the supported schemas. Exactly the
// column slice matching Kind is populated.
type Table struct {
	Kind Kind

	Vertices  [][3]float64 // KindVertex
	Triangles [][3]uint64  // KindTriangle
	Chunks    []Chunk      // KindChunk
	Indices   []uint64     // KindIndex
	Floats    []float64    // KindFloatValues
	Ints      []int64      // KindIntValues
}

// NumRows returns the number of rows in the table.
func (t *Table) NumRows() int {
	switch t.Kind {
	case KindVertex:
		return len(t.Vertices)
	case KindTriangle:
		return len(t.Triangles)
	case KindChunk:
		return len(t.Chunks)
	case KindIndex:
		return len(t.Indices)
	case KindFloatValues:
		return len(t.Floats)
	case KindIntValues:
		return len(t.Ints)
	default:
		return 0
	}
}

// NewVertexTable builds a vertex coordinate table.
func NewVertexTable(vertices [][3]float64) *Table {
	return &Table{Kind: KindVertex, Vertices: vertices}
}

// NewTriangleTable builds a triangle index table.
func NewTriangleTable(triangles [][3]uint64) *Table {
	return &Table{Kind: KindTriangle, Triangles: triangles}
}

// NewChunkTable builds a chunk descriptor table.
func NewChunkTable(chunks []Chunk) *Table {
	return &Table{Kind: KindChunk, Chunks: chunks}
}

// NewIndexTable builds a single-column index table.
func NewIndexTable(indices []uint64) *Table {
	return &Table{Kind: KindIndex, Indices: indices}
}

// NewFloatValuesTable builds a float64 attribute value table.
func NewFloatValuesTable(values []float64) *Table {
	return &Table{Kind: KindFloatValues, Floats: values}
}

// NewIntValuesTable builds an int64 attribute value table.
func NewIntValuesTable(values []int64) *Table {
	return &Table{Kind: KindIntValues, Ints: values}
}
