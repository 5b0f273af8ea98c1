package query

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nlstn/go-acumatica/internal/edm"
)

// Sentinel errors. Use errors.Is to test for them; the concrete error types
// below carry the details.
var (
	// ErrTypeMismatch indicates a builder received an argument of the wrong kind.
	ErrTypeMismatch = errors.New("acumatica: type mismatch")

	// ErrConfiguration indicates invalid query option values.
	ErrConfiguration = errors.New("acumatica: invalid query options")
)

// TypeMismatchError is returned by the date and math builders when an
// argument's kind is not one they accept, or when the argument is neither a
// string nor an expression.
type TypeMismatchError struct {
	// Function is the OData function being built (e.g. "day").
	Function string

	// Kind is the kind of the rejected argument.
	Kind edm.Kind

	// GoType is set instead of Kind when the argument was not an expression.
	GoType string

	// Accepted lists the kinds the function takes.
	Accepted []edm.Kind
}

func (e *TypeMismatchError) Error() string {
	if e.GoType != "" {
		return fmt.Sprintf("acumatica: %s: unsupported argument type %s, expected string or field", e.Function, e.GoType)
	}
	names := make([]string, len(e.Accepted))
	for i, k := range e.Accepted {
		names[i] = k.String()
	}
	return fmt.Sprintf("acumatica: %s: argument of kind %s, expected %s", e.Function, e.Kind, strings.Join(names, " or "))
}

// Is makes errors.Is(err, ErrTypeMismatch) succeed
func (e *TypeMismatchError) Is(target error) bool {
	return target == ErrTypeMismatch
}

// ConfigurationError is returned when query options are constructed or
// updated with invalid values.
type ConfigurationError struct {
	// Option is the query option concerned (e.g. "$top").
	Option string

	// Value is the rejected value.
	Value interface{}

	// Reason describes what is wrong with Value.
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("acumatica: invalid %s %v: %s", e.Option, e.Value, e.Reason)
}

// Is makes errors.Is(err, ErrConfiguration) succeed
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}
