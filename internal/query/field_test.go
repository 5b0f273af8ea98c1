package query

import (
	"testing"

	"github.com/nlstn/go-acumatica/internal/edm"
)

func TestFieldConstructors(t *testing.T) {
	tests := []struct {
		name  string
		field *Field
		kind  edm.Kind
	}{
		{"any", NewField("A"), edm.KindAny},
		{"boolean", NewBooleanField("A"), edm.KindBoolean},
		{"number", NewNumberField("A"), edm.KindNumber},
		{"string", NewStringField("A"), edm.KindString},
		{"datetime", NewDateTimeField("A"), edm.KindDateTime},
		{"from edm type", NewFieldOfType("A", "Edm.Int32"), edm.KindNumber},
		{"from unknown edm type", NewFieldOfType("A", "Edm.Guid"), edm.KindAny},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.field.Kind() != tt.kind {
				t.Errorf("Kind() = %v, want %v", tt.field.Kind(), tt.kind)
			}
			if tt.field.String() != "A" {
				t.Errorf("String() = %q, want %q", tt.field.String(), "A")
			}
		})
	}
}

func TestFieldSubField(t *testing.T) {
	f := NewDateTimeField("Order")
	same := f.SubField("Customer").SubField("Id")

	if same != f {
		t.Error("SubField must return the same reference")
	}
	if f.String() != "Order/Customer/Id" {
		t.Errorf("String() = %q, want %q", f.String(), "Order/Customer/Id")
	}
	if f.Kind() != edm.KindDateTime {
		t.Errorf("SubField changed kind to %v", f.Kind())
	}
}

func TestNilField(t *testing.T) {
	var f *Field
	if f.String() != "" {
		t.Error("expected empty text for nil field")
	}
	if f.Kind() != edm.KindAny {
		t.Error("expected any kind for nil field")
	}
}
