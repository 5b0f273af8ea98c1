package query

import (
	"fmt"

	"github.com/nlstn/go-acumatica/internal/edm"
)

// Expression is anything that renders to OData expression text and carries a
// kind tag. *Field is the implementation returned by every factory and
// builder in this package.
type Expression interface {
	fmt.Stringer
	Kind() edm.Kind
}

// Field is a symbolic reference to a remote field, a sub-field path, or an
// expression derived from one by a builder.
type Field struct {
	path string
	kind edm.Kind
}

// NewField creates a reference of kind any
func NewField(name string) *Field {
	return &Field{path: name, kind: edm.KindAny}
}

// NewTypedField creates a reference with an explicit kind
func NewTypedField(name string, kind edm.Kind) *Field {
	return &Field{path: name, kind: kind}
}

// NewBooleanField creates a boolean reference
func NewBooleanField(name string) *Field {
	return NewTypedField(name, edm.KindBoolean)
}

// NewNumberField creates a number reference
func NewNumberField(name string) *Field {
	return NewTypedField(name, edm.KindNumber)
}

// NewStringField creates a string reference
func NewStringField(name string) *Field {
	return NewTypedField(name, edm.KindString)
}

// NewDateTimeField creates a datetime reference
func NewDateTimeField(name string) *Field {
	return NewTypedField(name, edm.KindDateTime)
}

// NewFieldOfType creates a reference whose kind is derived from an EDM type
// name as published in the service's $metadata (e.g. "Edm.Decimal").
func NewFieldOfType(name, edmType string) *Field {
	return NewTypedField(name, edm.KindFromEdmType(edmType))
}

// SubField appends "/name" to the path in place and returns the same
// reference, so calls chain: NewField("Order").SubField("Customer").SubField("Id").
func (f *Field) SubField(name string) *Field {
	f.path += "/" + name
	return f
}

// String returns the path or expression text
func (f *Field) String() string {
	if f == nil {
		return ""
	}
	return f.path
}

// Kind returns the reference's kind tag
func (f *Field) Kind() edm.Kind {
	if f == nil {
		return edm.KindAny
	}
	return f.kind
}
