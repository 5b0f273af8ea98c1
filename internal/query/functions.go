package query

import (
	"fmt"

	"github.com/nlstn/go-acumatica/internal/edm"
)

// Accepted argument kinds per function family
var (
	dateArgKinds    = []edm.Kind{edm.KindAny, edm.KindDateTime}
	numberArgKinds  = []edm.Kind{edm.KindNumber}
	ceilingArgKinds = []edm.Kind{edm.KindAny, edm.KindNumber}
)

// Day builds day(<field>). field is raw text or an any/datetime expression.
func Day(field interface{}) (*Field, error) {
	return callFunction("day", field, edm.KindNumber, dateArgKinds)
}

// Month builds month(<field>)
func Month(field interface{}) (*Field, error) {
	return callFunction("month", field, edm.KindNumber, dateArgKinds)
}

// Year builds year(<field>)
func Year(field interface{}) (*Field, error) {
	return callFunction("year", field, edm.KindNumber, dateArgKinds)
}

// Hour builds hour(<field>)
func Hour(field interface{}) (*Field, error) {
	return callFunction("hour", field, edm.KindNumber, dateArgKinds)
}

// Minute builds minute(<field>)
func Minute(field interface{}) (*Field, error) {
	return callFunction("minute", field, edm.KindNumber, dateArgKinds)
}

// Second builds second(<field>)
func Second(field interface{}) (*Field, error) {
	return callFunction("second", field, edm.KindNumber, dateArgKinds)
}

// Round builds round(<expr>). expr is raw text or a number expression.
func Round(expr interface{}) (*Field, error) {
	return callFunction("round", expr, edm.KindNumber, numberArgKinds)
}

// Floor builds floor(<expr>). expr is raw text or a number expression.
func Floor(expr interface{}) (*Field, error) {
	return callFunction("floor", expr, edm.KindNumber, numberArgKinds)
}

// Ceiling builds ceiling(<expr>). Unlike Round and Floor it also takes
// expressions of kind any.
func Ceiling(expr interface{}) (*Field, error) {
	return callFunction("ceiling", expr, edm.KindNumber, ceilingArgKinds)
}

// callFunction checks arg against accepted and wraps it as fn(arg).
// Raw strings are not checked: they carry no kind.
func callFunction(fn string, arg interface{}, result edm.Kind, accepted []edm.Kind) (*Field, error) {
	var text string

	switch v := arg.(type) {
	case string:
		text = v
	case *Field:
		if v == nil {
			return nil, &TypeMismatchError{Function: fn, GoType: "nil *Field", Accepted: accepted}
		}
		if !v.Kind().In(accepted...) {
			return nil, &TypeMismatchError{Function: fn, Kind: v.Kind(), Accepted: accepted}
		}
		text = v.String()
	case Expression:
		if !v.Kind().In(accepted...) {
			return nil, &TypeMismatchError{Function: fn, Kind: v.Kind(), Accepted: accepted}
		}
		text = v.String()
	default:
		return nil, &TypeMismatchError{Function: fn, GoType: fmt.Sprintf("%T", arg), Accepted: accepted}
	}

	return &Field{path: fn + "(" + text + ")", kind: result}, nil
}

// SubstringOf builds substringof(<needle>, <field>). OData v3 takes the
// searched-for value first. field is inserted as raw text, needle is quoted.
func SubstringOf(field interface{}, needle interface{}) *Field {
	return &Field{
		path: "substringof(" + edm.FormatLiteral(needle) + ", " + ExpressionText(field) + ")",
		kind: edm.KindBoolean,
	}
}

// StartsWith builds startswith(<field>, <prefix>)
func StartsWith(field interface{}, prefix interface{}) *Field {
	return stringPredicate("startswith", field, prefix)
}

// EndsWith builds endswith(<field>, <suffix>)
func EndsWith(field interface{}, suffix interface{}) *Field {
	return stringPredicate("endswith", field, suffix)
}

func stringPredicate(fn string, field interface{}, operand interface{}) *Field {
	return &Field{
		path: fn + "(" + ExpressionText(field) + ", " + edm.FormatLiteral(operand) + ")",
		kind: edm.KindBoolean,
	}
}
