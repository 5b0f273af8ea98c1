package query

import (
	"errors"
	"strings"
	"testing"

	"github.com/nlstn/go-acumatica/internal/edm"
)

type kindedText struct {
	text string
	kind edm.Kind
}

func (k kindedText) String() string { return k.text }
func (k kindedText) Kind() edm.Kind  { return k.kind }

func TestDateFunctions(t *testing.T) {
	builders := map[string]func(interface{}) (*Field, error){
		"day":    Day,
		"month":  Month,
		"year":   Year,
		"hour":   Hour,
		"minute": Minute,
		"second": Second,
	}

	for name, build := range builders {
		t.Run(name, func(t *testing.T) {
			for _, input := range []interface{}{"Date", NewField("Date"), NewDateTimeField("Date"), kindedText{"Date", edm.KindDateTime}} {
				got, err := build(input)
				if err != nil {
					t.Fatalf("%s(%v) unexpected error: %v", name, input, err)
				}
				if got.String() != name+"(Date)" {
					t.Errorf("%s(%v) = %q", name, input, got.String())
				}
				if got.Kind() != edm.KindNumber {
					t.Errorf("%s result kind = %v, want number", name, got.Kind())
				}
			}

			for _, input := range []interface{}{NewStringField("S"), NewNumberField("N"), NewBooleanField("B")} {
				_, err := build(input)
				if !errors.Is(err, ErrTypeMismatch) {
					t.Errorf("%s(%v) error = %v, want ErrTypeMismatch", name, input, err)
				}
			}
		})
	}
}

func TestMathFunctions(t *testing.T) {
	tests := []struct {
		name     string
		build    func(interface{}) (*Field, error)
		input    interface{}
		expected string
		wantErr  bool
	}{
		{"round raw", Round, "Price", "round(Price)", false},
		{"round number", Round, NewNumberField("Price"), "round(Price)", false},
		{"round rejects any", Round, NewField("Price"), "", true},
		{"floor number", Floor, NewNumberField("Price"), "floor(Price)", false},
		{"floor rejects datetime", Floor, NewDateTimeField("Date"), "", true},
		{"ceiling emits ceiling", Ceiling, NewNumberField("Price"), "ceiling(Price)", false},
		{"ceiling accepts any", Ceiling, NewField("Price"), "ceiling(Price)", false},
		{"ceiling rejects string", Ceiling, NewStringField("Name"), "", true},
		{"nested date result", Round, mustField(Day("Date")), "round(day(Date))", false},
		{"unsupported go type", Floor, 42, "", true},
		{"nil field", Floor, (*Field)(nil), "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.build(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrTypeMismatch) {
					t.Fatalf("expected ErrTypeMismatch, got %v", err)
				}
				if got != nil {
					t.Errorf("expected nil result on error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.String() != tt.expected {
				t.Errorf("got %q, want %q", got.String(), tt.expected)
			}
			if got.Kind() != edm.KindNumber {
				t.Errorf("result kind = %v, want number", got.Kind())
			}
		})
	}
}

func TestTypeMismatchErrorDetails(t *testing.T) {
	_, err := Day(NewStringField("Name"))

	var mismatch *TypeMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("expected *TypeMismatchError, got %T", err)
	}
	if mismatch.Function != "day" || mismatch.Kind != edm.KindString {
		t.Errorf("unexpected details: %+v", mismatch)
	}
	if !strings.Contains(err.Error(), "expected any or datetime") {
		t.Errorf("unexpected message %q", err.Error())
	}

	_, err = Day(3.5)
	if !strings.Contains(err.Error(), "unsupported argument type float64") {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestStringFunctions(t *testing.T) {
	tests := []struct {
		name     string
		got      *Field
		expected string
	}{
		{"startswith", StartsWith("Name", "abc"), "startswith(Name, 'abc')"},
		{"endswith", EndsWith("Name", "abc"), "endswith(Name, 'abc')"},
		{"substringof puts needle first", SubstringOf("Name", "abc"), "substringof('abc', Name)"},
		{"field reference", StartsWith(NewStringField("Main").SubField("Name"), "x"), "startswith(Main/Name, 'x')"},
		{"quote escaped", EndsWith("Name", "O'Brien"), `endswith(Name, 'O\'Brien')`},
		{"reserved prefix verbatim", StartsWith("Id", "guid'1'"), "startswith(Id, guid'1')"},
		{"non-string operand verbatim", SubstringOf("Code", 42), "substringof(42, Code)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got.String() != tt.expected {
				t.Errorf("got %q, want %q", tt.got.String(), tt.expected)
			}
			if tt.got.Kind() != edm.KindBoolean {
				t.Errorf("kind = %v, want boolean", tt.got.Kind())
			}
		})
	}
}

func mustField(f *Field, err error) *Field {
	if err != nil {
		panic(err)
	}
	return f
}
