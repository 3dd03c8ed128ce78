package meshconv

import (
	"context"
	"testing"

	"github.com/geodataio/meshconv/omf"
	"github.com/geodataio/meshconv/schema"
	"github.com/geodataio/meshconv/tablestore"
	"github.com/geodataio/meshconv/util"
	"github.com/stretchr/testify/require"
)

const (
	vertexCount   = 100
	triangleCount = 50
)

type fixture struct {
	store *tablestore.ParquetStore
	conv  *Converter

	vertices     [][3]float64
	triangles    [][3]uint64
	vertexValues []float64
	faceValues   []float64
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	rng := util.NewRNG(7)
	store := tablestore.NewMemoryStore()
	return &fixture{
		store:        store,
		conv:         New(store),
		vertices:     rng.GenerateVertices(vertexCount),
		triangles:    rng.GenerateTriangles(triangleCount, vertexCount),
		vertexValues: rng.GenerateValues(vertexCount),
		faceValues:   rng.GenerateValues(triangleCount),
	}
}

func (f *fixture) save(t *testing.T, table *tablestore.Table) tablestore.Ref {
	t.Helper()
	ref, err := f.store.Save(context.Background(), table)
	require.NoError(t, err)
	return ref
}

// buildMesh assembles a current-version mesh with one vertex attribute and
// one face attribute, mirroring a typical survey surface.
func (f *fixture) buildMesh(t *testing.T) *schema.TriangleMeshV2_1 {
	t.Helper()
	return &schema.TriangleMeshV2_1{
		Name:        "ore zone surface",
		Description: "any description",
		CRS:         schema.CRS{EPSGCode: 32650},
		Triangles: schema.Triangles{
			Vertices: schema.VertexComponent{
				Table: f.save(t, tablestore.NewVertexTable(f.vertices)),
				Attributes: []schema.Attribute{
					&schema.ContinuousAttributeV1_1{
						Name:   "data assigned to vertices",
						Values: f.save(t, tablestore.NewFloatValuesTable(f.vertexValues)),
					},
				},
			},
			Indices: schema.IndexComponent{
				Table: f.save(t, tablestore.NewTriangleTable(f.triangles)),
				Attributes: []schema.Attribute{
					&schema.ContinuousAttributeV1_1{
						Name:   "data assigned to faces",
						Values: f.save(t, tablestore.NewFloatValuesTable(f.faceValues)),
					},
				},
			},
		},
	}
}

func (f *fixture) withParts(t *testing.T, mesh *schema.TriangleMeshV2_1, chunks []tablestore.Chunk, indices []uint64) {
	t.Helper()
	mesh.Parts = &schema.Parts{Chunks: f.save(t, tablestore.NewChunkTable(chunks))}
	if indices != nil {
		ref := f.save(t, tablestore.NewIndexTable(indices))
		mesh.Parts.TriangleIndices = &ref
	}
}

func asFloat32(vertices [][3]float64) [][3]float32 {
	out := make([][3]float32, len(vertices))
	for i, v := range vertices {
		out[i] = [3]float32{float32(v[0]), float32(v[1]), float32(v[2])}
	}
	return out
}

func surfaceOf(t *testing.T, el *omf.Element) *omf.SurfaceGeometry {
	t.Helper()
	sg, ok := el.Geometry.(*omf.SurfaceGeometry)
	require.True(t, ok)
	return sg
}

func TestExportSurface_PassThroughIdentity(t *testing.T) {
	f := newFixture(t)
	mesh := f.buildMesh(t)

	el, err := f.conv.ExportSurface(context.Background(), mesh)
	require.NoError(t, err)

	require.Equal(t, "ore zone surface", el.Name)
	require.Equal(t, "any description", el.Description)

	sg := surfaceOf(t, el)
	require.Equal(t, asFloat32(f.vertices), sg.Vertices)
	require.Equal(t, f.triangles, sg.Triangles)
}

func TestExportSurface_ChunkSelection(t *testing.T) {
	f := newFixture(t)
	mesh := f.buildMesh(t)
	f.withParts(t, mesh, []tablestore.Chunk{{StartSegmentIndex: 25, NumberOfSegments: 10}}, nil)

	el, err := f.conv.ExportSurface(context.Background(), mesh)
	require.NoError(t, err)

	sg := surfaceOf(t, el)
	require.Len(t, sg.Vertices, vertexCount)
	require.Len(t, sg.Triangles, 10)
	require.Equal(t, f.triangles[25:35], sg.Triangles)
}

func TestExportSurface_TwoLevelIndirection(t *testing.T) {
	f := newFixture(t)

	t.Run("indices covering the whole chunk", func(t *testing.T) {
		mesh := f.buildMesh(t)
		f.withParts(t, mesh, []tablestore.Chunk{{StartSegmentIndex: 5, NumberOfSegments: 5}}, []uint64{0, 1, 2, 3, 4})

		el, err := f.conv.ExportSurface(context.Background(), mesh)
		require.NoError(t, err)

		sg := surfaceOf(t, el)
		require.Len(t, sg.Triangles, 5)
		require.Equal(t, f.triangles[5:10], sg.Triangles)
	})

	t.Run("strict subset addresses the chunk selection", func(t *testing.T) {
		mesh := f.buildMesh(t)
		f.withParts(t, mesh, []tablestore.Chunk{{StartSegmentIndex: 5, NumberOfSegments: 5}}, []uint64{1, 3})

		el, err := f.conv.ExportSurface(context.Background(), mesh)
		require.NoError(t, err)

		sg := surfaceOf(t, el)
		require.Equal(t, [][3]uint64{f.triangles[6], f.triangles[8]}, sg.Triangles)
	})
}

func TestExportSurface_FaceAttributeCorrespondence(t *testing.T) {
	f := newFixture(t)
	mesh := f.buildMesh(t)
	f.withParts(t, mesh,
		[]tablestore.Chunk{
			{StartSegmentIndex: 40, NumberOfSegments: 5},
			{StartSegmentIndex: 10, NumberOfSegments: 5},
		},
		[]uint64{9, 0, 9, 2},
	)
	// Chunk selection covers base rows 40..44 then 10..14; the index list
	// then picks positions within that selection.
	selectedBaseRows := []uint64{14, 40, 14, 42}

	el, err := f.conv.ExportSurface(context.Background(), mesh)
	require.NoError(t, err)

	var faceData *omf.ScalarData
	for i := range el.Data {
		if el.Data[i].Location == omf.LocationFaces {
			faceData = &el.Data[i]
		}
	}
	require.NotNil(t, faceData)
	require.Equal(t, "data assigned to faces", faceData.Name)

	sg := surfaceOf(t, el)
	require.Len(t, faceData.Array, len(sg.Triangles))
	for i, row := range selectedBaseRows {
		require.Equal(t, f.triangles[row], sg.Triangles[i])
		require.Equal(t, f.faceValues[row], faceData.Array[i])
	}
}

func TestExportSurface_VertexAttributesUnaffectedByChunking(t *testing.T) {
	f := newFixture(t)
	mesh := f.buildMesh(t)
	f.withParts(t, mesh, []tablestore.Chunk{{StartSegmentIndex: 0, NumberOfSegments: 2}}, nil)

	el, err := f.conv.ExportSurface(context.Background(), mesh)
	require.NoError(t, err)

	var vertexData *omf.ScalarData
	for i := range el.Data {
		if el.Data[i].Location == omf.LocationVertices {
			vertexData = &el.Data[i]
		}
	}
	require.NotNil(t, vertexData)
	require.Equal(t, f.vertexValues, vertexData.Array)
}

func TestExportSurface_VertexEntriesFirst(t *testing.T) {
	f := newFixture(t)
	mesh := f.buildMesh(t)

	el, err := f.conv.ExportSurface(context.Background(), mesh)
	require.NoError(t, err)

	require.Len(t, el.Data, 2)
	require.Equal(t, omf.LocationVertices, el.Data[0].Location)
	require.Equal(t, omf.LocationFaces, el.Data[1].Location)
}

func TestRoundTrip(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	mesh := f.buildMesh(t)

	exported, err := f.conv.ExportSurface(ctx, mesh)
	require.NoError(t, err)

	imported, err := f.conv.ImportSurface(ctx, exported, schema.CRS{EPSGCode: 32650})
	require.NoError(t, err)

	require.Equal(t, mesh.Name, imported.Name)
	require.Equal(t, mesh.Description, imported.Description)
	require.Equal(t, schema.CRS{EPSGCode: 32650}, imported.CRS)
	require.NotNil(t, imported.UUID)
	require.Nil(t, imported.Parts)
	require.NotEqual(t, schema.BoundingBox{}, imported.BoundingBox)

	// Chunking is not required to round-trip, but geometry and attributes are.
	reExported, err := f.conv.ExportSurface(ctx, imported)
	require.NoError(t, err)
	require.Equal(t, exported, reExported)
}

func TestRoundTrip_ChunkedMeshFlattens(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	mesh := f.buildMesh(t)
	f.withParts(t, mesh, []tablestore.Chunk{{StartSegmentIndex: 5, NumberOfSegments: 5}}, []uint64{1, 3})

	exported, err := f.conv.ExportSurface(ctx, mesh)
	require.NoError(t, err)

	imported, err := f.conv.ImportSurface(ctx, exported, schema.CRS{})
	require.NoError(t, err)
	require.Nil(t, imported.Parts)

	// The imported object holds the flattened two-triangle surface.
	reExported, err := f.conv.ExportSurface(ctx, imported)
	require.NoError(t, err)
	require.Equal(t, exported, reExported)
}

func TestExportSurface_OldSchemaVersion(t *testing.T) {
	f := newFixture(t)
	mesh := &schema.TriangleMeshV1_0{
		Name:     "legacy surface",
		Vertices: f.save(t, tablestore.NewVertexTable(f.vertices)),
		Indices:  f.save(t, tablestore.NewTriangleTable(f.triangles)),
		Attributes: []schema.Attribute{
			&schema.ContinuousAttributeV1_0{
				Name:   "data assigned to vertices",
				Values: f.save(t, tablestore.NewFloatValuesTable(f.vertexValues)),
			},
		},
	}

	el, err := f.conv.ExportSurface(context.Background(), mesh)
	require.NoError(t, err)

	sg := surfaceOf(t, el)
	require.Len(t, sg.Vertices, vertexCount)

	require.Len(t, el.Data, 1)
	require.Equal(t, omf.LocationVertices, el.Data[0].Location)
	require.Equal(t, "data assigned to vertices", el.Data[0].Name)
	require.Equal(t, f.vertexValues, el.Data[0].Array)
}

func TestExportSurface_EmptySelection(t *testing.T) {
	f := newFixture(t)
	mesh := f.buildMesh(t)
	f.withParts(t, mesh, []tablestore.Chunk{{StartSegmentIndex: 0, NumberOfSegments: 10}}, []uint64{})

	el, err := f.conv.ExportSurface(context.Background(), mesh)
	require.NoError(t, err)

	sg := surfaceOf(t, el)
	require.Len(t, sg.Vertices, vertexCount)
	require.Empty(t, sg.Triangles)
}

func TestExportSurface_ChunkRangeViolation(t *testing.T) {
	f := newFixture(t)
	mesh := f.buildMesh(t)
	f.withParts(t, mesh, []tablestore.Chunk{{StartSegmentIndex: 45, NumberOfSegments: 10}}, nil)

	_, err := f.conv.ExportSurface(context.Background(), mesh)
	require.Error(t, err)
	require.True(t, IsIndexOutOfRange(err))
}

type futureMesh struct{}

func (*futureMesh) SchemaVersion() string { return "triangle-mesh/9.9" }
func (*futureMesh) ObjectName() string    { return "future" }

func TestExportSurface_UnsupportedSchemaVersion(t *testing.T) {
	f := newFixture(t)

	_, err := f.conv.ExportSurface(context.Background(), &futureMesh{})
	require.Error(t, err)
	require.True(t, IsUnsupportedSchemaVersion(err))
}

func TestImportSurface_UnsupportedGeometry(t *testing.T) {
	f := newFixture(t)

	el := &omf.Element{
		Name:     "collars",
		Geometry: &omf.PointSetGeometry{Vertices: [][3]float32{{1, 2, 3}}},
	}

	_, err := f.conv.ImportSurface(context.Background(), el, schema.CRS{})
	require.Error(t, err)
	require.True(t, IsUnsupportedGeometryType(err))
}

func TestImportProject_SkipsUnsupportedElements(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	exported, err := f.conv.ExportSurface(ctx, f.buildMesh(t))
	require.NoError(t, err)

	project := &omf.Project{
		Name: "mixed project",
		Elements: []omf.Element{
			{Name: "collars", Geometry: &omf.PointSetGeometry{}},
			*exported,
			{Name: "broken"},
		},
	}

	metrics := &BasicMetricsCollector{}
	conv := New(f.store, WithMetricsCollector(metrics))

	objects, err := conv.ImportProject(ctx, project, schema.CRS{EPSGCode: 32650})
	require.NoError(t, err)

	require.Len(t, objects, 1)
	require.Equal(t, exported.Name, objects[0].Name)

	require.Equal(t, int64(1), metrics.ImportedElements.Load())
	require.Equal(t, int64(2), metrics.SkippedElements.Load())
}

func TestImportSurface_AttributeLengthMismatch(t *testing.T) {
	f := newFixture(t)

	el := &omf.Element{
		Name: "surface",
		Geometry: &omf.SurfaceGeometry{
			Vertices:  [][3]float32{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
			Triangles: [][3]uint64{{0, 1, 2}},
		},
		Data: []omf.ScalarData{
			{Name: "grade", Location: omf.LocationVertices, Array: []float64{1}},
		},
	}

	_, err := f.conv.ImportSurface(context.Background(), el, schema.CRS{})
	require.Error(t, err)
	require.True(t, IsAttributeLengthMismatch(err))
}

func TestImportSurface_BoundingBox(t *testing.T) {
	f := newFixture(t)

	el := &omf.Element{
		Name: "surface",
		Geometry: &omf.SurfaceGeometry{
			Vertices:  [][3]float32{{-1, 2, 0}, {3, -4, 5}, {0, 0, 1}},
			Triangles: [][3]uint64{{0, 1, 2}},
		},
	}

	obj, err := f.conv.ImportSurface(context.Background(), el, schema.CRS{})
	require.NoError(t, err)

	require.Equal(t, schema.BoundingBox{
		MinX: -1, MaxX: 3,
		MinY: -4, MaxY: 2,
		MinZ: 0, MaxZ: 5,
	}, obj.BoundingBox)
}

func TestExportSurface_RecordsMetrics(t *testing.T) {
	f := newFixture(t)
	metrics := &BasicMetricsCollector{}
	conv := New(f.store, WithMetricsCollector(metrics))

	_, err := conv.ExportSurface(context.Background(), f.buildMesh(t))
	require.NoError(t, err)

	_, err = conv.ExportSurface(context.Background(), &futureMesh{})
	require.Error(t, err)

	require.Equal(t, int64(2), metrics.ExportCount.Load())
	require.Equal(t, int64(1), metrics.ExportErrors.Load())
}
