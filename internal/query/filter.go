package query

import (
	"fmt"

	"github.com/nlstn/go-acumatica/internal/edm"
)

// Filter is an accumulated $filter predicate. Only its text is kept; once
// built, the operands it was made from are gone.
type Filter struct {
	text string
}

// NewFilter builds a predicate from a template written in standard notation,
// using the default translator. See Translator.Translate.
//
//	NewFilter("$f1 == $v1 && $f2 > $v2",
//		[]interface{}{"A", 0},
//		[]interface{}{"Field1", "Field2"})
//	// Field1 eq 'A' and Field2 gt 0
func NewFilter(template string, values []interface{}, fields []interface{}) *Filter {
	return defaultTranslator.Filter(template, values, fields)
}

// RawFilter wraps text that is already in OData syntax
func RawFilter(text string) *Filter {
	return &Filter{text: text}
}

// Eq builds "<lhs> eq <rhs>"
func Eq(lhs, rhs interface{}) *Filter { return compare(lhs, "eq", rhs) }

// Ne builds "<lhs> ne <rhs>"
func Ne(lhs, rhs interface{}) *Filter { return compare(lhs, "ne", rhs) }

// Gt builds "<lhs> gt <rhs>"
func Gt(lhs, rhs interface{}) *Filter { return compare(lhs, "gt", rhs) }

// Ge builds "<lhs> ge <rhs>"
func Ge(lhs, rhs interface{}) *Filter { return compare(lhs, "ge", rhs) }

// Lt builds "<lhs> lt <rhs>"
func Lt(lhs, rhs interface{}) *Filter { return compare(lhs, "lt", rhs) }

// Le builds "<lhs> le <rhs>"
func Le(lhs, rhs interface{}) *Filter { return compare(lhs, "le", rhs) }

// compare renders a binary comparison. lhs is always raw text. A string,
// filter or expression on the right is taken as expression text too; any
// other value (numbers, times, UUIDs, decimals, Literal) is formatted as an
// OData literal.
func compare(lhs interface{}, op string, rhs interface{}) *Filter {
	return &Filter{text: ExpressionText(lhs) + " " + op + " " + operandText(rhs)}
}

func operandText(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case *Filter:
		return v.String()
	case Expression:
		return v.String()
	default:
		return edm.FormatLiteral(value)
	}
}

// And builds "(<f> and <other>)". A nil other renders as empty text.
func (f *Filter) And(other fmt.Stringer) *Filter {
	return &Filter{text: "(" + f.String() + " and " + ExpressionText(other) + ")"}
}

// Or builds "(<f> or <other>)". A nil other renders as empty text.
func (f *Filter) Or(other fmt.Stringer) *Filter {
	return &Filter{text: "(" + f.String() + " or " + ExpressionText(other) + ")"}
}

// Not builds "not (<expr>)". A nil expr renders as empty text.
func Not(expr fmt.Stringer) *Filter {
	return &Filter{text: "not (" + ExpressionText(expr) + ")"}
}

// String returns the predicate text
func (f *Filter) String() string {
	if f == nil {
		return ""
	}
	return f.text
}
