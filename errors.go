package meshconv

import (
	"errors"

	"github.com/geodataio/meshconv/geometry"
	"github.com/geodataio/meshconv/omf"
	"github.com/geodataio/meshconv/parts"
	"github.com/geodataio/meshconv/schema"
)

// Converter errors fall into four terminal classes, each carried by a typed
// error from the package that detects it:
//
//   - schema.ErrUnsupportedSchemaVersion: object outside the supported set
//   - parts.ErrIndexOutOfRange: malformed chunk or triangle-index data
//   - geometry.ErrAttributeLengthMismatch: attribute table does not match
//     its geometry
//   - omf.ErrUnsupportedGeometryType: interchange element the importer
//     cannot convert
//
// None are retried internally; all inputs are already-materialized local
// data. The helpers below classify a Converter error without importing the
// subpackages.

// IsUnsupportedSchemaVersion reports whether err is a schema-version failure.
func IsUnsupportedSchemaVersion(err error) bool {
	var e *schema.ErrUnsupportedSchemaVersion
	return errors.As(err, &e)
}

// IsIndexOutOfRange reports whether err is a parts-resolution failure.
func IsIndexOutOfRange(err error) bool {
	var e *parts.ErrIndexOutOfRange
	return errors.As(err, &e)
}

// IsAttributeLengthMismatch reports whether err is an attribute-binding
// failure.
func IsAttributeLengthMismatch(err error) bool {
	var e *geometry.ErrAttributeLengthMismatch
	return errors.As(err, &e)
}

// IsUnsupportedGeometryType reports whether err is an import failure caused
// by a geometry kind the converter does not handle.
func IsUnsupportedGeometryType(err error) bool {
	var e *omf.ErrUnsupportedGeometryType
	return errors.As(err, &e)
}
