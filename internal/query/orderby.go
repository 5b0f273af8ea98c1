package query

import (
	"fmt"
	"strings"
)

// Direction is a $orderby sort direction
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// OrderByItem represents a single orderby clause
type OrderByItem struct {
	Field     string
	Direction Direction
}

// Asc orders by field ascending
func Asc(field interface{}) OrderByItem {
	return OrderByItem{Field: ExpressionText(field), Direction: Ascending}
}

// Desc orders by field descending
func Desc(field interface{}) OrderByItem {
	return OrderByItem{Field: ExpressionText(field), Direction: Descending}
}

// String renders "field direction", or just the field when no direction is set
func (o OrderByItem) String() string {
	if o.Direction == "" {
		return o.Field
	}
	return o.Field + " " + string(o.Direction)
}

// ParseDirection parses "asc" or "desc", case-insensitively
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "asc":
		return Ascending, nil
	case "desc":
		return Descending, nil
	default:
		return "", fmt.Errorf("invalid direction '%s', expected 'asc' or 'desc'", s)
	}
}

// formatOrderBy joins items as "field dir,field dir"
func formatOrderBy(items []OrderByItem) string {
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = item.String()
	}
	return strings.Join(parts, ",")
}
