package meshconv

import (
	"context"
	"fmt"
	"time"

	"github.com/geodataio/meshconv/geometry"
	"github.com/geodataio/meshconv/omf"
	"github.com/geodataio/meshconv/parts"
	"github.com/geodataio/meshconv/schema"
	"github.com/geodataio/meshconv/tablestore"
	"github.com/google/uuid"
)

// Converter translates canonical mesh objects to and from interchange
// surface elements.
//
// A Converter is stateless apart from its table store: every call loads the
// tables it needs fresh, and every import writes fresh tables. It is safe for
// concurrent use as long as the table store is.
type Converter struct {
	store   tablestore.Store
	logger  *Logger
	metrics MetricsCollector
}

// New creates a Converter over the given table store.
func New(store tablestore.Store, optFns ...Option) *Converter {
	o := applyOptions(optFns)
	return &Converter{
		store:   store,
		logger:  o.logger,
		metrics: o.metrics,
	}
}

// ExportSurface converts a canonical mesh object, in any supported schema
// version, into a single flat surface element.
//
// Name and description are copied verbatim. The element is either complete
// or the call errors; no partial element is returned.
func (c *Converter) ExportSurface(ctx context.Context, obj schema.Object) (*omf.Element, error) {
	start := time.Now()
	element, err := c.exportSurface(ctx, obj)
	c.metrics.RecordExport(time.Since(start), err)

	name := ""
	if obj != nil {
		name = obj.ObjectName()
	}
	if err != nil {
		c.logger.LogExport(ctx, name, 0, 0, err)
		return nil, err
	}
	sg := element.Geometry.(*omf.SurfaceGeometry)
	c.logger.LogExport(ctx, name, len(sg.Vertices), len(sg.Triangles), nil)
	return element, nil
}

func (c *Converter) exportSurface(ctx context.Context, obj schema.Object) (*omf.Element, error) {
	norm, err := schema.Normalize(obj)
	if err != nil {
		return nil, err
	}

	base, err := geometry.LoadTriangles(ctx, c.store, norm.Triangles)
	if err != nil {
		return nil, err
	}

	desc, err := c.loadParts(ctx, norm.Parts)
	if err != nil {
		return nil, err
	}

	resolved, err := parts.Resolve(desc, uint64(len(base)))
	if err != nil {
		return nil, err
	}

	verts, tris, err := geometry.Materialize(ctx, c.store, norm.Vertices, base, resolved)
	if err != nil {
		return nil, err
	}

	data, err := geometry.BindAttributes(ctx, c.store,
		norm.VertexAttributes, norm.FaceAttributes,
		len(verts), len(base), resolved)
	if err != nil {
		return nil, err
	}

	return &omf.Element{
		Name:        norm.Name,
		Description: norm.Description,
		Geometry:    &omf.SurfaceGeometry{Vertices: verts, Triangles: tris},
		Data:        data,
	}, nil
}

// loadParts loads the chunk and triangle-index tables behind a parts
// descriptor. A nil descriptor stays nil, which resolves to the identity
// selection.
func (c *Converter) loadParts(ctx context.Context, p *schema.Parts) (*parts.Descriptor, error) {
	if p == nil {
		return nil, nil
	}

	chunkTable, err := c.store.Load(ctx, p.Chunks)
	if err != nil {
		return nil, err
	}
	if chunkTable.Kind != tablestore.KindChunk {
		return nil, fmt.Errorf("meshconv: parts chunks %s references a %s table", p.Chunks, chunkTable.Kind)
	}

	d := &parts.Descriptor{Chunks: chunkTable.Chunks}

	if p.TriangleIndices != nil {
		indexTable, err := c.store.Load(ctx, *p.TriangleIndices)
		if err != nil {
			return nil, err
		}
		if indexTable.Kind != tablestore.KindIndex {
			return nil, fmt.Errorf("meshconv: parts triangle indices %s references a %s table", *p.TriangleIndices, indexTable.Kind)
		}
		d.TriangleIndices = indexTable.Indices
		d.HasTriangleIndices = true
	}

	return d, nil
}

// ImportSurface converts one interchange element into a canonical mesh
// object in the current schema version, writing its geometry and attributes
// into fresh tables.
//
// Chunking is an export-time storage optimization, so imported objects never
// carry a parts descriptor.
func (c *Converter) ImportSurface(ctx context.Context, el *omf.Element, crs schema.CRS) (*schema.TriangleMeshV2_1, error) {
	sg, ok := el.Geometry.(*omf.SurfaceGeometry)
	if !ok {
		kind := omf.GeometryKind("none")
		if el.Geometry != nil {
			kind = el.Geometry.Kind()
		}
		return nil, &omf.ErrUnsupportedGeometryType{Kind: kind}
	}

	vertices := make([][3]float64, len(sg.Vertices))
	for i, v := range sg.Vertices {
		vertices[i] = [3]float64{float64(v[0]), float64(v[1]), float64(v[2])}
	}

	vertexRef, err := c.store.Save(ctx, tablestore.NewVertexTable(vertices))
	if err != nil {
		return nil, err
	}
	triangleRef, err := c.store.Save(ctx, tablestore.NewTriangleTable(sg.Triangles))
	if err != nil {
		return nil, err
	}

	var vertexAttrs, faceAttrs []schema.Attribute
	for _, sd := range el.Data {
		var want int
		switch sd.Location {
		case omf.LocationVertices:
			want = len(sg.Vertices)
		case omf.LocationFaces:
			want = len(sg.Triangles)
		default:
			return nil, fmt.Errorf("meshconv: element %q: unknown data location %q", el.Name, sd.Location)
		}
		if len(sd.Array) != want {
			return nil, &geometry.ErrAttributeLengthMismatch{
				Name:     sd.Name,
				Location: sd.Location,
				Got:      len(sd.Array),
				Want:     want,
			}
		}

		ref, err := c.store.Save(ctx, tablestore.NewFloatValuesTable(sd.Array))
		if err != nil {
			return nil, err
		}
		attr := &schema.ContinuousAttributeV1_1{Name: sd.Name, Values: ref}
		if sd.Location == omf.LocationVertices {
			vertexAttrs = append(vertexAttrs, attr)
		} else {
			faceAttrs = append(faceAttrs, attr)
		}
	}

	id := uuid.New()
	return &schema.TriangleMeshV2_1{
		Name:        el.Name,
		Description: el.Description,
		UUID:        &id,
		BoundingBox: boundsOf(vertices),
		CRS:         crs,
		Triangles: schema.Triangles{
			Vertices: schema.VertexComponent{Table: vertexRef, Attributes: vertexAttrs},
			Indices:  schema.IndexComponent{Table: triangleRef, Attributes: faceAttrs},
		},
	}, nil
}

// ImportProject converts every element of an interchange container.
//
// Elements that fail to convert — most commonly because their geometry kind
// is unsupported — are skipped and logged; the remaining elements are still
// converted. The returned slice holds the successes in container order.
func (c *Converter) ImportProject(ctx context.Context, p *omf.Project, crs schema.CRS) ([]*schema.TriangleMeshV2_1, error) {
	start := time.Now()

	objects := make([]*schema.TriangleMeshV2_1, 0, len(p.Elements))
	skipped := 0
	for i := range p.Elements {
		el := &p.Elements[i]
		obj, err := c.ImportSurface(ctx, el, crs)
		if err != nil {
			skipped++
			c.logger.LogSkippedElement(ctx, el.Name, err)
			continue
		}
		objects = append(objects, obj)
	}

	c.metrics.RecordImport(len(objects), skipped, time.Since(start))
	c.logger.LogImport(ctx, p.Name, len(objects), skipped)
	return objects, nil
}

func boundsOf(vertices [][3]float64) schema.BoundingBox {
	if len(vertices) == 0 {
		return schema.BoundingBox{}
	}
	b := schema.BoundingBox{
		MinX: vertices[0][0], MaxX: vertices[0][0],
		MinY: vertices[0][1], MaxY: vertices[0][1],
		MinZ: vertices[0][2], MaxZ: vertices[0][2],
	}
	for _, v := range vertices[1:] {
		b.MinX = min(b.MinX, v[0])
		b.MaxX = max(b.MaxX, v[0])
		b.MinY = min(b.MinY, v[1])
		b.MaxY = max(b.MaxY, v[1])
		b.MinZ = min(b.MinZ, v[2])
		b.MaxZ = max(b.MaxZ, v[2])
	}
	return b
}
