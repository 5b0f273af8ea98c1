package edm

import "strings"

// Kind is the semantic tag carried by a field reference or derived expression.
// It is set by whichever factory created the reference and is never inferred
// from the expression text.
type Kind int

const (
	KindAny Kind = iota
	KindBoolean
	KindNumber
	KindString
	KindDateTime
)

var kindNames = [...]string{
	KindAny:      "any",
	KindBoolean:  "boolean",
	KindNumber:   "number",
	KindString:   "string",
	KindDateTime: "datetime",
}

// String returns the lower-case kind name
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// EdmType returns the EDM primitive type the kind stands for.
// KindAny has no EDM type and returns an empty string.
func (k Kind) EdmType() string {
	switch k {
	case KindBoolean:
		return "Edm.Boolean"
	case KindNumber:
		return "Edm.Decimal"
	case KindString:
		return "Edm.String"
	case KindDateTime:
		return "Edm.DateTimeOffset"
	default:
		return ""
	}
}

// In reports whether k is one of the accepted kinds
func (k Kind) In(accepted ...Kind) bool {
	for _, a := range accepted {
		if k == a {
			return true
		}
	}
	return false
}

// KindFromEdmType maps an EDM primitive type name, as found in $metadata,
// to a kind. Unknown and non-primitive types map to KindAny.
func KindFromEdmType(typeName string) Kind {
	switch strings.TrimPrefix(typeName, "Edm.") {
	case "Boolean":
		return KindBoolean
	case "Byte", "SByte", "Int16", "Int32", "Int64", "Single", "Double", "Decimal":
		return KindNumber
	case "String":
		return KindString
	case "DateTime", "DateTimeOffset", "Date":
		return KindDateTime
	default:
		return KindAny
	}
}
