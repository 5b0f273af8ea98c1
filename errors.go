package acumatica

import "github.com/nlstn/go-acumatica/internal/query"

// Sentinel errors. These can be used with errors.Is().
var (
	// ErrTypeMismatch indicates a date or math builder received an argument
	// of a kind it does not accept.
	ErrTypeMismatch = query.ErrTypeMismatch

	// ErrConfiguration indicates invalid query option values.
	ErrConfiguration = query.ErrConfiguration
)

// TypeMismatchError carries the details of an ErrTypeMismatch
type TypeMismatchError = query.TypeMismatchError

// ConfigurationError carries the details of an ErrConfiguration
type ConfigurationError = query.ConfigurationError
