package query

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nlstn/go-acumatica/internal/edm"
)

// FieldsOf returns typed field references for the exported fields of the
// struct (or pointer to struct) entity, keyed by Go field name.
//
// The OData name comes from the acumatica tag, then the json tag, then the Go
// field name. The kind is taken from a type=<Edm type> tag option or inferred
// from the Go type. Fields tagged acumatica:"-" are skipped. Nested structs
// are walked and keyed "Parent.Child", with paths "Parent/Child".
//
//	type SalesOrder struct {
//		OrderNbr string    `json:"OrderNbr"`
//		Date     time.Time `json:"Date"`
//		Total    string    `acumatica:"OrderTotal,type=Edm.Decimal"`
//	}
//
// A struct type already being walked is not entered again; such a field is
// returned as a single reference of kind any.
func FieldsOf(entity interface{}) (map[string]*Field, error) {
	entityType := reflect.TypeOf(entity)
	if entityType == nil {
		return nil, fmt.Errorf("acumatica: entity must be a struct, got nil")
	}
	if entityType.Kind() == reflect.Ptr {
		entityType = entityType.Elem()
	}
	if entityType.Kind() != reflect.Struct {
		return nil, fmt.Errorf("acumatica: entity must be a struct, got %s", entityType.Kind())
	}

	fields := make(map[string]*Field)
	collectFields(entityType, "", "", fields, map[reflect.Type]bool{entityType: true})
	return fields, nil
}

func collectFields(t reflect.Type, keyPrefix, pathPrefix string, out map[string]*Field, seen map[reflect.Type]bool) {
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		name, edmType, skip := fieldTag(field)
		if skip {
			continue
		}

		key := keyPrefix + field.Name
		path := pathPrefix + name

		if nested, ok := nestedStruct(field.Type); ok && edmType == "" && !seen[nested] {
			seen[nested] = true
			collectFields(nested, key+".", path+"/", out, seen)
			delete(seen, nested)
			continue
		}

		kind := edm.KindOfType(field.Type)
		if edmType != "" {
			kind = edm.KindFromEdmType(edmType)
		}
		out[key] = NewTypedField(path, kind)
	}
}

// fieldTag reads the OData name and optional EDM type of a struct field
func fieldTag(field reflect.StructField) (name string, edmType string, skip bool) {
	name = getJsonName(field)

	tag, ok := field.Tag.Lookup("acumatica")
	if !ok {
		return name, "", name == "-"
	}
	if tag == "-" {
		return "", "", true
	}

	parts := strings.Split(tag, ",")
	if parts[0] != "" {
		name = parts[0]
	}
	for _, part := range parts[1:] {
		if strings.HasPrefix(part, "type=") {
			edmType = strings.TrimPrefix(part, "type=")
		}
	}
	return name, edmType, false
}

// getJsonName extracts the JSON field name from struct tags
func getJsonName(field reflect.StructField) string {
	jsonTag := field.Tag.Get("json")
	if jsonTag == "" {
		return field.Name
	}

	parts := strings.Split(jsonTag, ",")
	if len(parts) > 0 && parts[0] != "" {
		return parts[0]
	}

	return field.Name
}

var (
	timeType    = reflect.TypeOf(time.Time{})
	decimalType = reflect.TypeOf(decimal.Decimal{})
)

// nestedStruct reports whether t (or what it points to) is a struct to walk.
// Structs rendered as single values are excluded.
func nestedStruct(t reflect.Type) (reflect.Type, bool) {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct || t == timeType || t == decimalType {
		return nil, false
	}
	return t, true
}
