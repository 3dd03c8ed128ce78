package parts

import (
	"fmt"

	"github.com/geodataio/meshconv/tablestore"
)

// ErrIndexOutOfRange reports a chunk range or triangle index that exceeds the
// sequence it addresses.
type ErrIndexOutOfRange struct {
	What  string
	Index uint64
	Limit uint64
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("%s out of range: %d (limit %d)", e.What, e.Index, e.Limit)
}

// Descriptor is a loaded parts descriptor.
//
// TriangleIndices is only consulted when HasTriangleIndices is true; an empty
// list with HasTriangleIndices set selects zero triangles, which is valid.
type Descriptor struct {
	Chunks             []tablestore.Chunk
	TriangleIndices    []uint64
	HasTriangleIndices bool
}

// Resolve computes the final ordered triangle row indices into the base
// stream. A nil descriptor selects the whole base stream.
func Resolve(d *Descriptor, baseCount uint64) ([]uint64, error) {
	if d == nil {
		return Identity(baseCount), nil
	}

	selected, err := ExpandChunks(d.Chunks, baseCount)
	if err != nil {
		return nil, err
	}
	if !d.HasTriangleIndices {
		return selected, nil
	}
	return Project(selected, d.TriangleIndices)
}

// Identity returns [0, 1, ..., n-1].
func Identity(n uint64) []uint64 {
	out := make([]uint64, n)
	for i := range out {
		out[i] = uint64(i)
	}
	return out
}

// ExpandChunks concatenates the base-stream index ranges [start, start+count)
// of each chunk, in chunk order. Chunks are not deduplicated or sorted: the
// selection order is the output order, and overlapping chunks repeat rows.
func ExpandChunks(chunks []tablestore.Chunk, baseCount uint64) ([]uint64, error) {
	var total uint64
	for _, c := range chunks {
		if c.NumberOfSegments > baseCount || c.StartSegmentIndex > baseCount-c.NumberOfSegments {
			return nil, &ErrIndexOutOfRange{
				What:  "chunk range end",
				Index: c.StartSegmentIndex + c.NumberOfSegments,
				Limit: baseCount,
			}
		}
		total += c.NumberOfSegments
	}

	out := make([]uint64, 0, total)
	for _, c := range chunks {
		for i := uint64(0); i < c.NumberOfSegments; i++ {
			out = append(out, c.StartSegmentIndex+i)
		}
	}
	return out, nil
}

// Project returns [seq[i] for i in indices], preserving order and duplicates.
func Project(seq []uint64, indices []uint64) ([]uint64, error) {
	out := make([]uint64, 0, len(indices))
	for _, idx := range indices {
		if idx >= uint64(len(seq)) {
			return nil, &ErrIndexOutOfRange{
				What:  "triangle index",
				Index: idx,
				Limit: uint64(len(seq)),
			}
		}
		out = append(out, seq[idx])
	}
	return out, nil
}
