package omf

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/geodataio/meshconv/codec"
	"github.com/klauspost/compress/zstd"
)

// Project file layout: magic, codec name (uint8 length + bytes), then a
// zstd-compressed codec payload running to EOF.
var fileMagic = [8]byte{'M', 'C', 'P', 'R', 'O', 'J', '0', '1'}

// ErrBadMagic is returned when a reader does not contain a project file.
var ErrBadMagic = errors.New("omf: not a project file")

type projectEnvelope struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Elements    []elementEnvelope `json:"elements"`
}

type elementEnvelope struct {
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Kind        GeometryKind `json:"kind"`
	Vertices    [][3]float32 `json:"vertices"`
	Triangles   [][3]uint64  `json:"triangles,omitempty"`
	Data        []ScalarData `json:"data,omitempty"`
}

// WriteProject writes p as a self-describing project file. A nil codec
// selects codec.Default.
func WriteProject(w io.Writer, p *Project, c codec.Codec) error {
	if c == nil {
		c = codec.Default
	}

	env := projectEnvelope{
		Name:        p.Name,
		Description: p.Description,
		Elements:    make([]elementEnvelope, 0, len(p.Elements)),
	}
	for _, el := range p.Elements {
		ee := elementEnvelope{
			Name:        el.Name,
			Description: el.Description,
			Data:        el.Data,
		}
		switch g := el.Geometry.(type) {
		case *SurfaceGeometry:
			ee.Kind = KindSurface
			ee.Vertices = g.Vertices
			ee.Triangles = g.Triangles
		case *PointSetGeometry:
			ee.Kind = KindPointSet
			ee.Vertices = g.Vertices
		default:
			kind := GeometryKind("none")
			if el.Geometry != nil {
				kind = el.Geometry.Kind()
			}
			return fmt.Errorf("omf: element %q: %w", el.Name, &ErrUnsupportedGeometryType{Kind: kind})
		}
		env.Elements = append(env.Elements, ee)
	}

	payload, err := c.Marshal(env)
	if err != nil {
		return fmt.Errorf("omf: encode project: %w", err)
	}

	if _, err := w.Write(fileMagic[:]); err != nil {
		return err
	}
	name := c.Name()
	if len(name) > 255 {
		return fmt.Errorf("omf: codec name too long: %q", name)
	}
	if err := binary.Write(w, binary.LittleEndian, uint8(len(name))); err != nil {
		return err
	}
	if _, err := io.WriteString(w, name); err != nil {
		return err
	}

	zw, err := zstd.NewWriter(w)
	if err != nil {
		return err
	}
	if _, err := zw.Write(payload); err != nil {
		zw.Close()
		return err
	}
	return zw.Close()
}

// ReadProject reads a project file written by WriteProject, selecting the
// codec recorded in its header.
func ReadProject(r io.Reader) (*Project, error) {
	var magic [8]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return nil, ErrBadMagic
	}
	if magic != fileMagic {
		return nil, ErrBadMagic
	}

	var nameLen uint8
	if err := binary.Read(r, binary.LittleEndian, &nameLen); err != nil {
		return nil, fmt.Errorf("omf: read codec name: %w", err)
	}
	nameBuf := make([]byte, nameLen)
	if _, err := io.ReadFull(r, nameBuf); err != nil {
		return nil, fmt.Errorf("omf: read codec name: %w", err)
	}
	c, ok := codec.ByName(string(nameBuf))
	if !ok {
		return nil, fmt.Errorf("omf: unknown codec %q", string(nameBuf))
	}

	zr, err := zstd.NewReader(r)
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	payload, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("omf: decompress project: %w", err)
	}

	var env projectEnvelope
	if err := c.Unmarshal(payload, &env); err != nil {
		return nil, fmt.Errorf("omf: decode project: %w", err)
	}

	p := &Project{
		Name:        env.Name,
		Description: env.Description,
		Elements:    make([]Element, 0, len(env.Elements)),
	}
	for _, ee := range env.Elements {
		el := Element{
			Name:        ee.Name,
			Description: ee.Description,
			Data:        ee.Data,
		}
		switch ee.Kind {
		case KindSurface:
			el.Geometry = &SurfaceGeometry{Vertices: ee.Vertices, Triangles: ee.Triangles}
		case KindPointSet:
			el.Geometry = &PointSetGeometry{Vertices: ee.Vertices}
		default:
			return nil, fmt.Errorf("omf: element %q: %w", ee.Name, &ErrUnsupportedGeometryType{Kind: ee.Kind})
		}
		p.Elements = append(p.Elements, el)
	}
	return p, nil
}
