// Package observability provides OpenTelemetry attributes and span helpers
// for filter translation and query option rendering.
//
// The builder performs no I/O itself; the attributes let the HTTP layer that
// sends the request annotate its spans with what was asked for.
package observability

import (
	"strconv"

	"go.opentelemetry.io/otel/attribute"
)

// InstrumentationName identifies this library in telemetry
const InstrumentationName = "github.com/nlstn/go-acumatica"

// Query option attribute keys
const (
	AttrQueryFilter  = "acumatica.query.filter"
	AttrQueryTop     = "acumatica.query.top"
	AttrQuerySkip    = "acumatica.query.skip"
	AttrQueryExpand  = "acumatica.query.expand"
	AttrQuerySelect  = "acumatica.query.select"
	AttrQueryOrderBy = "acumatica.query.orderby"
)

// QueryFilterAttr creates an attribute for the $filter expression.
func QueryFilterAttr(filter string) attribute.KeyValue {
	return attribute.String(AttrQueryFilter, filter)
}

// QueryTopAttr creates an attribute for the $top value.
func QueryTopAttr(top int) attribute.KeyValue {
	return attribute.Int(AttrQueryTop, top)
}

// QuerySkipAttr creates an attribute for the $skip value.
func QuerySkipAttr(skip int) attribute.KeyValue {
	return attribute.Int(AttrQuerySkip, skip)
}

// QueryExpandAttr creates an attribute for the $expand expression.
func QueryExpandAttr(expand string) attribute.KeyValue {
	return attribute.String(AttrQueryExpand, expand)
}

// QuerySelectAttr creates an attribute for the $select expression.
func QuerySelectAttr(selectExpr string) attribute.KeyValue {
	return attribute.String(AttrQuerySelect, selectExpr)
}

// QueryOrderByAttr creates an attribute for the $orderby expression.
func QueryOrderByAttr(orderby string) attribute.KeyValue {
	return attribute.String(AttrQueryOrderBy, orderby)
}

// QueryOptionAttribute maps a rendered query option ("$top", "10") to its
// attribute. It returns false for keys it does not know and for $top/$skip
// values that are not integers.
func QueryOptionAttribute(key, value string) (attribute.KeyValue, bool) {
	switch key {
	case "$filter":
		return QueryFilterAttr(value), true
	case "$top", "$skip":
		n, err := strconv.Atoi(value)
		if err != nil {
			return attribute.KeyValue{}, false
		}
		if key == "$top" {
			return QueryTopAttr(n), true
		}
		return QuerySkipAttr(n), true
	case "$expand":
		return QueryExpandAttr(value), true
	case "$select":
		return QuerySelectAttr(value), true
	case "$orderby":
		return QueryOrderByAttr(value), true
	}
	return attribute.KeyValue{}, false
}
