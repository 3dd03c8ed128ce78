package schema

import "github.com/geodataio/meshconv/tablestore"

// Attribute is a scalar attribute in one of the supported shapes. Like
// Object, the implementation set is closed.
type Attribute interface {
	// SchemaVersion returns the stable version tag of the attribute shape.
	SchemaVersion() string
	// AttributeName returns the attribute's name. Names are not required to
	// be unique; collisions are preserved as-is.
	AttributeName() string
}

// ContinuousAttributeV1_0 is the oldest continuous attribute shape.
//
// NaNDescription lists sentinel values that stand in for missing data. The
// sentinels are metadata only; the stored values are never rewritten.
type ContinuousAttributeV1_0 struct {
	Name           string         `validate:"required"`
	Values         tablestore.Ref `validate:"required"`
	NaNDescription []float64
}

// SchemaVersion implements Attribute.
func (*ContinuousAttributeV1_0) SchemaVersion() string { return "continuous-attribute/1.0" }

// AttributeName implements Attribute.
func (a *ContinuousAttributeV1_0) AttributeName() string { return a.Name }

// ContinuousAttributeV1_1 adds a free-form description to the v1.0 shape.
type ContinuousAttributeV1_1 struct {
	Name           string `validate:"required"`
	Description    string
	Values         tablestore.Ref `validate:"required"`
	NaNDescription []float64
}

// SchemaVersion implements Attribute.
func (*ContinuousAttributeV1_1) SchemaVersion() string { return "continuous-attribute/1.1" }

// AttributeName implements Attribute.
func (a *ContinuousAttributeV1_1) AttributeName() string { return a.Name }

// CategoryAttributeV1_0 stores categorical data as integer codes.
type CategoryAttributeV1_0 struct {
	Name   string         `validate:"required"`
	Values tablestore.Ref `validate:"required"`
}

// SchemaVersion implements Attribute.
func (*CategoryAttributeV1_0) SchemaVersion() string { return "category-attribute/1.0" }

// AttributeName implements Attribute.
func (a *CategoryAttributeV1_0) AttributeName() string { return a.Name }
