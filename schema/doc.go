// Package schema defines the canonical triangle-mesh object versions and the
// normalizer that erases their differences.
//
// The version set is closed: TriangleMeshV1_0, TriangleMeshV2_0 and
// TriangleMeshV2_1, plus the attribute shapes ContinuousAttributeV1_0,
// ContinuousAttributeV1_1 and CategoryAttributeV1_0. Normalize dispatches on
// the concrete type and fails closed with ErrUnsupportedSchemaVersion for
// anything else, so downstream code only ever sees one internal shape.
//
// Objects hold table references, not table data; the tablestore owns the
// underlying columns.
package schema
