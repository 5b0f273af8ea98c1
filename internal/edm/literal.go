package edm

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// unquotedPrefixes lists string prefixes that already denote a typed OData
// literal or a custom field reference and are therefore emitted as-is.
var unquotedPrefixes = []string{"datetimeoffset", "guid", "cf."}

// dateTimeLayout matches the ISO form Acumatica accepts inside datetimeoffset'...'
const dateTimeLayout = "2006-01-02T15:04:05.000Z"

// Literal marks a value that must be rendered with the literal-quoting rule
// even where a bare string would otherwise be taken as expression text.
type Literal struct {
	value interface{}
}

// NewLiteral wraps value as a Literal
func NewLiteral(value interface{}) Literal {
	return Literal{value: value}
}

// Value returns the wrapped Go value
func (l Literal) Value() interface{} {
	return l.value
}

// String returns the OData literal form of the wrapped value
func (l Literal) String() string {
	return FormatLiteral(l.value)
}

// FormatLiteral renders a Go value as an OData literal.
//
// Strings are single-quoted unless they start with one of the reserved
// prefixes (datetimeoffset, guid, cf.). Inside quotes every ' becomes \' and
// only the first " becomes \", matching what the Acumatica endpoint has always
// been sent. Every other value is written verbatim in its natural text form.
func FormatLiteral(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return "null"
	case Literal:
		return v.String()
	case string:
		return QuoteString(v)
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.FormatInt(int64(v), 10)
	case int8:
		return strconv.FormatInt(int64(v), 10)
	case int16:
		return strconv.FormatInt(int64(v), 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint:
		return strconv.FormatUint(uint64(v), 10)
	case uint8:
		return strconv.FormatUint(uint64(v), 10)
	case uint16:
		return strconv.FormatUint(uint64(v), 10)
	case uint32:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float32:
		return formatFloat(float64(v), 32)
	case float64:
		return formatFloat(v, 64)
	case decimal.Decimal:
		return v.String()
	case *decimal.Decimal:
		if v == nil {
			return "null"
		}
		return v.String()
	case uuid.UUID:
		return "guid'" + v.String() + "'"
	case time.Time:
		return "datetimeoffset'" + v.UTC().Format(dateTimeLayout) + "'"
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// QuoteString applies the string half of the literal-quoting rule
func QuoteString(s string) string {
	if HasUnquotedPrefix(s) {
		return s
	}
	escaped := strings.ReplaceAll(s, "'", `\'`)
	escaped = strings.Replace(escaped, `"`, `\"`, 1)
	return "'" + escaped + "'"
}

// HasUnquotedPrefix reports whether s starts with a prefix that is never quoted
func HasUnquotedPrefix(s string) bool {
	for _, prefix := range unquotedPrefixes {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}

func formatFloat(f float64, bitSize int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "INF"
	case math.IsInf(f, -1):
		return "-INF"
	}
	if bitSize == 32 {
		return decimal.NewFromFloat32(float32(f)).String()
	}
	return decimal.NewFromFloat(f).String()
}
