package edm

import (
	"reflect"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	timeType    = reflect.TypeOf(time.Time{})
	decimalType = reflect.TypeOf(decimal.Decimal{})
	uuidType    = reflect.TypeOf(uuid.UUID{})
)

// KindOfType infers the kind of values of goType. Pointer types are
// dereferenced. Types with no matching kind, including uuid.UUID, map to
// KindAny.
func KindOfType(goType reflect.Type) Kind {
	if goType == nil {
		return KindAny
	}
	for goType.Kind() == reflect.Ptr {
		goType = goType.Elem()
	}

	switch goType {
	case timeType:
		return KindDateTime
	case decimalType:
		return KindNumber
	case uuidType:
		return KindAny
	}

	switch goType.Kind() {
	case reflect.String:
		return KindString
	case reflect.Bool:
		return KindBoolean
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return KindNumber
	default:
		return KindAny
	}
}

// KindOf infers the kind of a Go value
func KindOf(value interface{}) Kind {
	if value == nil {
		return KindAny
	}
	return KindOfType(reflect.TypeOf(value))
}
