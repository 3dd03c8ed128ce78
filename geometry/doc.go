// Package geometry materializes flat interchange geometry from stored tables
// and binds scalar attributes to it.
//
// Materialization never filters or reindexes vertices: only triangles are
// selected, by the resolved index list, and the projected triangles keep
// their indices into the full vertex set. Face attributes are projected with
// the same resolved list, so attribute row i always describes output
// triangle i.
package geometry
