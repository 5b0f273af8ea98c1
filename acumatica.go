// Package acumatica builds OData v3 query strings for the Acumatica ERP
// contract-based REST API.
//
// Filters can be written in standard notation and translated:
//
//	f := acumatica.NewFilter("$f1 == $v1 && $f2 > $v2",
//		[]interface{}{"A", 0},
//		[]interface{}{"Field1", "Field2"})
//	// Field1 eq 'A' and Field2 gt 0
//
// or composed from typed builders:
//
//	f := acumatica.Eq("Status", acumatica.Lit("Open")).
//		And(acumatica.StartsWith(acumatica.NewStringField("Description"), "Rush"))
//
// QueryOptions then assembles $filter, $top, $skip, $expand, $select and
// $orderby onto an endpoint URL.
package acumatica

import (
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/trace"

	"github.com/nlstn/go-acumatica/internal/edm"
	"github.com/nlstn/go-acumatica/internal/query"
)

// SetLogger sets the logger used by NewFilter to report template tokens it
// could not translate. If logger is nil, slog.Default() is used.
func SetLogger(logger *slog.Logger) {
	query.SetLogger(logger)
}

// NewTranslator creates a Translator with its own logger and template cache
func NewTranslator(opts ...TranslatorOption) *Translator {
	return query.NewTranslator(opts...)
}

// WithLogger sets the logger of a Translator
func WithLogger(logger *slog.Logger) TranslatorOption {
	return query.WithLogger(logger)
}

// WithCacheSize bounds the template cache of a Translator.
// A size of zero or less disables caching.
func WithCacheSize(size int) TranslatorOption {
	return query.WithCacheSize(size)
}

// WithTracerProvider traces Translator.TranslateContext with tp instead of
// the globally registered provider.
func WithTracerProvider(tp trace.TracerProvider) TranslatorOption {
	return query.WithTracerProvider(tp)
}

// Field references

// NewField references a field of unknown type
func NewField(name string) *Field { return query.NewField(name) }

// NewBooleanField references a boolean field
func NewBooleanField(name string) *Field { return query.NewBooleanField(name) }

// NewNumberField references a numeric field
func NewNumberField(name string) *Field { return query.NewNumberField(name) }

// NewStringField references a string field
func NewStringField(name string) *Field { return query.NewStringField(name) }

// NewDateTimeField references a date/time field
func NewDateTimeField(name string) *Field { return query.NewDateTimeField(name) }

// NewTypedField references a field of the given kind
func NewTypedField(name string, kind Kind) *Field { return query.NewTypedField(name, kind) }

// NewFieldOfType references a field whose kind is derived from an EDM type
// name such as "Edm.Int32", as found in the endpoint's $metadata.
func NewFieldOfType(name, edmType string) *Field { return query.NewFieldOfType(name, edmType) }

// FieldsOf returns typed field references for the exported fields of an
// entity struct, keyed by Go field name. See the acumatica struct tag.
func FieldsOf(entity interface{}) (map[string]*Field, error) { return query.FieldsOf(entity) }

// KindOf infers the kind of a Go value
func KindOf(value interface{}) Kind { return edm.KindOf(value) }

// KindFromEdmType maps an EDM primitive type name to a Kind
func KindFromEdmType(typeName string) Kind { return edm.KindFromEdmType(typeName) }

// Day builds day(<field>). field is a string or an expression of kind any
// or datetime; other kinds fail with a *TypeMismatchError.
func Day(field interface{}) (*Field, error) { return query.Day(field) }

// Month builds month(<field>), accepting what Day accepts
func Month(field interface{}) (*Field, error) { return query.Month(field) }

// Year builds year(<field>), accepting what Day accepts
func Year(field interface{}) (*Field, error) { return query.Year(field) }

// Hour builds hour(<field>), accepting what Day accepts
func Hour(field interface{}) (*Field, error) { return query.Hour(field) }

// Minute builds minute(<field>), accepting what Day accepts
func Minute(field interface{}) (*Field, error) { return query.Minute(field) }

// Second builds second(<field>), accepting what Day accepts
func Second(field interface{}) (*Field, error) { return query.Second(field) }

// Round builds round(<expr>). expr is a string or a number expression.
func Round(expr interface{}) (*Field, error) { return query.Round(expr) }

// Floor builds floor(<expr>). expr is a string or a number expression.
func Floor(expr interface{}) (*Field, error) { return query.Floor(expr) }

// Ceiling builds ceiling(<expr>). Unlike Round and Floor it also takes
// expressions of kind any.
func Ceiling(expr interface{}) (*Field, error) { return query.Ceiling(expr) }

// SubstringOf builds substringof(<needle>, <field>) with needle quoted
func SubstringOf(field interface{}, needle interface{}) *Field {
	return query.SubstringOf(field, needle)
}

// StartsWith builds startswith(<field>, <prefix>) with prefix quoted
func StartsWith(field interface{}, prefix interface{}) *Field {
	return query.StartsWith(field, prefix)
}

// EndsWith builds endswith(<field>, <suffix>) with suffix quoted
func EndsWith(field interface{}, suffix interface{}) *Field {
	return query.EndsWith(field, suffix)
}

// Filters

// NewFilter translates a template in standard notation into a Filter.
// Symbolic operators are translated only when surrounded by whitespace
// ('!' only when glued to its operand); anything else is kept as written.
// $v<n> is replaced by the quoted values[n-1], $f<n> by the raw text of
// fields[n-1], and $<n> by whichever slice is non-empty.
func NewFilter(template string, values []interface{}, fields []interface{}) *Filter {
	return query.NewFilter(template, values, fields)
}

// RawFilter wraps text already in OData syntax
func RawFilter(text string) *Filter { return query.RawFilter(text) }

// Eq builds "<lhs> eq <rhs>". lhs is raw text. A string, Filter or
// Expression on the right is raw text too; any other value is formatted as
// an OData literal.
func Eq(lhs, rhs interface{}) *Filter { return query.Eq(lhs, rhs) }

// Ne builds "<lhs> ne <rhs>", formatting rhs like Eq
func Ne(lhs, rhs interface{}) *Filter { return query.Ne(lhs, rhs) }

// Gt builds "<lhs> gt <rhs>", formatting rhs like Eq
func Gt(lhs, rhs interface{}) *Filter { return query.Gt(lhs, rhs) }

// Ge builds "<lhs> ge <rhs>", formatting rhs like Eq
func Ge(lhs, rhs interface{}) *Filter { return query.Ge(lhs, rhs) }

// Lt builds "<lhs> lt <rhs>", formatting rhs like Eq
func Lt(lhs, rhs interface{}) *Filter { return query.Lt(lhs, rhs) }

// Le builds "<lhs> le <rhs>", formatting rhs like Eq
func Le(lhs, rhs interface{}) *Filter { return query.Le(lhs, rhs) }

// Not builds "not (<expr>)". A nil expr renders as empty text.
func Not(expr fmt.Stringer) *Filter { return query.Not(expr) }

// Lit marks value for literal quoting. A bare string on the right of a
// comparison is taken as expression text; Lit("Open") renders 'Open'.
func Lit(value interface{}) Literal { return edm.NewLiteral(value) }

// FormatLiteral renders value as an OData literal
func FormatLiteral(value interface{}) string { return edm.FormatLiteral(value) }

// Query options

// Asc orders by field ascending
func Asc(field interface{}) OrderByItem { return query.Asc(field) }

// Desc orders by field descending
func Desc(field interface{}) OrderByItem { return query.Desc(field) }

// ParseDirection parses "asc" or "desc", case-insensitively
func ParseDirection(s string) (Direction, error) { return query.ParseDirection(s) }

// NewQueryOptions validates cfg and returns the resulting QueryOptions
func NewQueryOptions(cfg Config) (*QueryOptions, error) { return query.NewQueryOptions(cfg) }

// QueryOptionsFromMap builds QueryOptions from a decoded configuration map
// with keys filter, top, skip, expand, select and orderby (optionally
// prefixed with '$').
func QueryOptionsFromMap(m map[string]interface{}) (*QueryOptions, error) {
	return query.QueryOptionsFromMap(m)
}
