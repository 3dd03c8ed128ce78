// Package parts resolves a parts descriptor into the final ordered list of
// triangle row indices.
//
// Resolution is two explicit projections. First the chunk ranges are expanded
// and concatenated, in chunk order, into a sequence of base-stream row
// indices. Then, if an explicit triangle-index list is present, that list is
// applied as a projection over the chunk-concatenated sequence — not over the
// base stream. Keeping the projections separate keeps the second level's
// semantics auditable: an entry i in the index list selects the i-th triangle
// of the chunk selection, wherever that triangle lives in the base stream.
package parts
