package query

import "testing"

func TestParseDirection(t *testing.T) {
	tests := []struct {
		input    string
		expected Direction
		wantErr  bool
	}{
		{"asc", Ascending, false},
		{"ASC", Ascending, false},
		{"Desc", Descending, false},
		{"desc", Descending, false},
		{"down", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDirection(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDirection(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.expected {
				t.Errorf("ParseDirection(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestOrderByItemString(t *testing.T) {
	tests := []struct {
		item     OrderByItem
		expected string
	}{
		{Asc("Name"), "Name asc"},
		{Desc("Date"), "Date desc"},
		{OrderByItem{Field: "Id"}, "Id"},
	}

	for _, tt := range tests {
		if got := tt.item.String(); got != tt.expected {
			t.Errorf("String() = %q, want %q", got, tt.expected)
		}
	}

	if got := formatOrderBy([]OrderByItem{Asc("Name"), Desc("Date")}); got != "Name asc,Date desc" {
		t.Errorf("formatOrderBy = %q", got)
	}
}
