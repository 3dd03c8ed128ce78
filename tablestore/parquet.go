package tablestore

import (
	"bytes"
	"fmt"

	"github.com/xitongsys/parquet-go-source/buffer"
	"github.com/xitongsys/parquet-go/reader"
	"github.com/xitongsys/parquet-go/writer"
)

// One row struct per table kind. The parquet tags define the wire schema;
// renaming a column is a breaking change for stored tables.

type vertexRow struct {
	X float64 `parquet:"name=x, type=DOUBLE"`
	Y float64 `parquet:"name=y, type=DOUBLE"`
	Z float64 `parquet:"name=z, type=DOUBLE"`
}

type triangleRow struct {
	N0 uint64 `parquet:"name=n0, type=INT64, convertedtype=UINT_64"`
	N1 uint64 `parquet:"name=n1, type=INT64, convertedtype=UINT_64"`
	N2 uint64 `parquet:"name=n2, type=INT64, convertedtype=UINT_64"`
}

type chunkRow struct {
	StartSegmentIndex uint64 `parquet:"name=start_segment_index, type=INT64, convertedtype=UINT_64"`
	NumberOfSegments  uint64 `parquet:"name=number_of_segments, type=INT64, convertedtype=UINT_64"`
}

type indexRow struct {
	Index uint64 `parquet:"name=index, type=INT64, convertedtype=UINT_64"`
}

type floatValueRow struct {
	Values float64 `parquet:"name=values, type=DOUBLE"`
}

type intValueRow struct {
	Values int64 `parquet:"name=values, type=INT64"`
}

func rowPrototype(kind Kind) (any, error) {
	switch kind {
	case KindVertex:
		return new(vertexRow), nil
	case KindTriangle:
		return new(triangleRow), nil
	case KindChunk:
		return new(chunkRow), nil
	case KindIndex:
		return new(indexRow), nil
	case KindFloatValues:
		return new(floatValueRow), nil
	case KindIntValues:
		return new(intValueRow), nil
	default:
		return nil, fmt.Errorf("tablestore: unknown table kind %s", kind)
	}
}

func encodeParquet(t *Table) ([]byte, error) {
	proto, err := rowPrototype(t.Kind)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	pw, err := writer.NewParquetWriterFromWriter(&buf, proto, 1)
	if err != nil {
		return nil, fmt.Errorf("tablestore: open parquet writer: %w", err)
	}

	writeRow := func(row any) error {
		if err := pw.Write(row); err != nil {
			return fmt.Errorf("tablestore: write %s row: %w", t.Kind, err)
		}
		return nil
	}

	switch t.Kind {
	case KindVertex:
		for _, v := range t.Vertices {
			if err := writeRow(vertexRow{X: v[0], Y: v[1], Z: v[2]}); err != nil {
				return nil, err
			}
		}
	case KindTriangle:
		for _, tri := range t.Triangles {
			if err := writeRow(triangleRow{N0: tri[0], N1: tri[1], N2: tri[2]}); err != nil {
				return nil, err
			}
		}
	case KindChunk:
		for _, c := range t.Chunks {
			if err := writeRow(chunkRow{StartSegmentIndex: c.StartSegmentIndex, NumberOfSegments: c.NumberOfSegments}); err != nil {
				return nil, err
			}
		}
	case KindIndex:
		for _, idx := range t.Indices {
			if err := writeRow(indexRow{Index: idx}); err != nil {
				return nil, err
			}
		}
	case KindFloatValues:
		for _, v := range t.Floats {
			if err := writeRow(floatValueRow{Values: v}); err != nil {
				return nil, err
			}
		}
	case KindIntValues:
		for _, v := range t.Ints {
			if err := writeRow(intValueRow{Values: v}); err != nil {
				return nil, err
			}
		}
	}

	if err := pw.WriteStop(); err != nil {
		return nil, fmt.Errorf("tablestore: finish parquet file: %w", err)
	}
	return buf.Bytes(), nil
}

func decodeParquet(kind Kind, data []byte) (*Table, error) {
	proto, err := rowPrototype(kind)
	if err != nil {
		return nil, err
	}

	fr := buffer.NewBufferFileFromBytes(data)
	defer fr.Close()

	pr, err := reader.NewParquetReader(fr, proto, 1)
	if err != nil {
		return nil, fmt.Errorf("tablestore: open parquet reader: %w", err)
	}
	defer pr.ReadStop()

	num := int(pr.GetNumRows())
	t := &Table{Kind: kind}

	switch kind {
	case KindVertex:
		rows := make([]vertexRow, num)
		if err := pr.Read(&rows); err != nil {
			return nil, fmt.Errorf("tablestore: read %s rows: %w", kind, err)
		}
		t.Vertices = make([][3]float64, num)
		for i, r := range rows {
			t.Vertices[i] = [3]float64{r.X, r.Y, r.Z}
		}
	case KindTriangle:
		rows := make([]triangleRow, num)
		if err := pr.Read(&rows); err != nil {
			return nil, fmt.Errorf("tablestore: read %s rows: %w", kind, err)
		}
		t.Triangles = make([][3]uint64, num)
		for i, r := range rows {
			t.Triangles[i] = [3]uint64{r.N0, r.N1, r.N2}
		}
	case KindChunk:
		rows := make([]chunkRow, num)
		if err := pr.Read(&rows); err != nil {
			return nil, fmt.Errorf("tablestore: read %s rows: %w", kind, err)
		}
		t.Chunks = make([]Chunk, num)
		for i, r := range rows {
			t.Chunks[i] = Chunk{StartSegmentIndex: r.StartSegmentIndex, NumberOfSegments: r.NumberOfSegments}
		}
	case KindIndex:
		rows := make([]indexRow, num)
		if err := pr.Read(&rows); err != nil {
			return nil, fmt.Errorf("tablestore: read %s rows: %w", kind, err)
		}
		t.Indices = make([]uint64, num)
		for i, r := range rows {
			t.Indices[i] = r.Index
		}
	case KindFloatValues:
		rows := make([]floatValueRow, num)
		if err := pr.Read(&rows); err != nil {
			return nil, fmt.Errorf("tablestore: read %s rows: %w", kind, err)
		}
		t.Floats = make([]float64, num)
		for i, r := range rows {
			t.Floats[i] = r.Values
		}
	case KindIntValues:
		rows := make([]intValueRow, num)
		if err := pr.Read(&rows); err != nil {
			return nil, fmt.Errorf("tablestore: read %s rows: %w", kind, err)
		}
		t.Ints = make([]int64, num)
		for i, r := range rows {
			t.Ints[i] = r.Values
		}
	}

	return t, nil
}
