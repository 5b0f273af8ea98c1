package query

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync/atomic"

	"go.opentelemetry.io/otel/trace"

	"github.com/nlstn/go-acumatica/internal/edm"
	"github.com/nlstn/go-acumatica/internal/observability"
)

// operatorKeywords maps standard notation to OData keywords.
//
//	<=  le    <   lt    >=  ge    >   gt    ==  eq    !=  ne
//	&&  and   ||  or    !   not
//	+   add   -   sub   *   mul   /   div   %   mod
var operatorKeywords = map[string]string{
	"<=": "le",
	"<":  "lt",
	">=": "ge",
	">":  "gt",
	"==": "eq",
	"!=": "ne",
	"&&": "and",
	"||": "or",
	"!":  "not",
	"+":  "add",
	"-":  "sub",
	"*":  "mul",
	"/":  "div",
	"%":  "mod",
}

// Keyword returns the OData keyword for a symbolic operator
func Keyword(symbol string) (string, bool) {
	kw, ok := operatorKeywords[symbol]
	return kw, ok
}

// Translator turns filter templates written in standard notation into OData
// filter text. A Translator is safe for concurrent use.
type Translator struct {
	logger atomic.Pointer[slog.Logger]
	cache  *templateCache
	tracer *observability.Tracer
}

// TranslatorOption configures a Translator
type TranslatorOption func(*Translator)

// WithLogger sets the logger used to report tokens passed through untranslated
func WithLogger(logger *slog.Logger) TranslatorOption {
	return func(t *Translator) {
		t.SetLogger(logger)
	}
}

// WithCacheSize bounds the number of tokenized templates kept in memory.
// A size of zero or less disables caching.
func WithCacheSize(size int) TranslatorOption {
	return func(t *Translator) {
		t.cache = newTemplateCache(size)
	}
}

// WithTracerProvider traces TranslateContext calls with tp. Without it the
// globally registered provider is used.
func WithTracerProvider(tp trace.TracerProvider) TranslatorOption {
	return func(t *Translator) {
		t.tracer = observability.NewTracer(tp)
	}
}

// NewTranslator creates a Translator
func NewTranslator(opts ...TranslatorOption) *Translator {
	t := &Translator{
		cache: newTemplateCache(defaultTemplateCacheSize),
	}
	t.logger.Store(slog.Default())
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// SetLogger replaces the translator's logger.
// If logger is nil, slog.Default() is used.
func (t *Translator) SetLogger(logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}
	t.logger.Store(logger)
}

// Logger returns the translator's logger
func (t *Translator) Logger() *slog.Logger {
	return t.logger.Load()
}

// Filter translates template and wraps the result in a Filter
func (t *Translator) Filter(template string, values []interface{}, fields []interface{}) *Filter {
	return &Filter{text: t.Translate(template, values, fields)}
}

// Translate converts template into OData filter text.
//
// Symbolic operators become keywords when they stand between whitespace;
// '!' becomes "not " when it follows whitespace and is glued to its operand.
// Operators written any other way are left as they are, so OData text such
// as "Qty eq -5" or "Date gt 2024-01-01" survives. $v<n> placeholders are replaced by the
// quoted values[n-1], $f<n> placeholders by the raw text of fields[n-1], and
// $<n> by whichever of the two slices is non-empty. Substituted text is not
// scanned again. Anything not understood is copied unchanged.
func (t *Translator) Translate(template string, values []interface{}, fields []interface{}) string {
	return t.translate(t.Logger(), template, values, fields)
}

// TranslateContext is Translate inside a span. Tokens passed through
// unchanged are logged with the span's trace and span IDs.
func (t *Translator) TranslateContext(ctx context.Context, template string, values []interface{}, fields []interface{}) string {
	tracer := t.tracer
	if tracer == nil {
		tracer = observability.GlobalTracer()
	}
	ctx, span := tracer.StartTranslate(ctx, template)
	defer span.End()

	return t.translate(observability.LoggerWithTrace(ctx, t.Logger()), template, values, fields)
}

func (t *Translator) translate(logger *slog.Logger, template string, values []interface{}, fields []interface{}) string {
	tokens := t.tokens(template)

	var out strings.Builder
	out.Grow(len(template) + 16)

	for i, tok := range tokens {
		switch tok.Type {
		case TokenEOF:
			// nothing to write
		case TokenOperator, TokenLogical, TokenArithmetic:
			kw, ok := operatorKeywords[tok.Value]
			if !ok || !spaceBefore(tokens, i) || !spaceAfter(tokens, i) {
				passThrough(logger, template, tok)
				out.WriteString(tok.Value)
				continue
			}
			out.WriteString(kw)
		case TokenNot:
			if !spaceBefore(tokens, i) || spaceAfter(tokens, i) || tokens[i+1].Type == TokenEOF {
				passThrough(logger, template, tok)
				out.WriteString(tok.Value)
				continue
			}
			out.WriteString("not ")
		case TokenPlaceholder:
			text, ok := substitute(tok.Value, values, fields)
			if !ok {
				passThrough(logger, template, tok)
				out.WriteString(tok.Value)
				continue
			}
			out.WriteString(text)
		case TokenUnknown:
			passThrough(logger, template, tok)
			out.WriteString(tok.Value)
		default:
			out.WriteString(tok.Value)
		}
	}

	return out.String()
}

func (t *Translator) tokens(template string) []Token {
	if tokens, ok := t.cache.get(template); ok {
		return tokens
	}
	tokens := NewTokenizer(template).TokenizeAll()
	t.cache.put(template, tokens)
	return tokens
}

func passThrough(logger *slog.Logger, template string, tok Token) {
	logger.Debug("filter template token passed through unchanged",
		slog.String("template", template),
		slog.String("token", tok.Value),
		slog.Int("position", tok.Pos),
	)
}

// spaceBefore reports whether the token at i starts the template or follows
// whitespace.
func spaceBefore(tokens []Token, i int) bool {
	return i == 0 || tokens[i-1].Type == TokenWhitespace
}

// spaceAfter reports whether the token at i is followed by whitespace
func spaceAfter(tokens []Token, i int) bool {
	return i+1 < len(tokens) && tokens[i+1].Type == TokenWhitespace
}

// substitute resolves a placeholder token to its replacement text
func substitute(placeholder string, values []interface{}, fields []interface{}) (string, bool) {
	if len(placeholder) < 2 || placeholder[0] != '$' {
		return "", false
	}

	source := placeholder[1]
	digits := placeholder[1:]
	if source == 'v' || source == 'f' {
		digits = placeholder[2:]
	} else {
		switch {
		case len(values) > 0 && len(fields) == 0:
			source = 'v'
		case len(fields) > 0 && len(values) == 0:
			source = 'f'
		default:
			return "", false
		}
	}

	n, err := strconv.Atoi(digits)
	if err != nil || n < 1 {
		return "", false
	}

	switch source {
	case 'v':
		if n > len(values) {
			return "", false
		}
		return edm.FormatLiteral(values[n-1]), true
	default:
		if n > len(fields) {
			return "", false
		}
		return ExpressionText(fields[n-1]), true
	}
}

// ExpressionText returns the raw text of a field, expression or string
// without any quoting.
func ExpressionText(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
