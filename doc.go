// Package meshconv converts triangulated-surface geological objects between
// their canonical columnar representation and flat interchange surface
// elements.
//
// Canonical mesh objects hold references to columnar tables (vertices,
// triangle indices, attribute values, optional parts selections) in a
// tablestore.Store. The Converter's export pipeline normalizes any supported
// schema version, resolves the parts selection, materializes flat geometry
// and binds attributes into an omf.Element. Import runs the inverse: it
// fragments an interchange element back into fresh columnar tables and emits
// an object in the current schema version.
//
// # Quick Start
//
//	ctx := context.Background()
//	store := tablestore.NewMemoryStore()
//	conv := meshconv.New(store)
//
//	element, err := conv.ExportSurface(ctx, mesh)
//	if err != nil {
//	    // handle
//	}
//
//	objects, err := conv.ImportProject(ctx, project, schema.CRS{EPSGCode: 32650})
//
// For persistent conversions, back the table store with a local directory or
// object storage:
//
//	store := tablestore.NewParquetStore(blobstore.NewLocalStore("./tables"))
package meshconv
