package acumatica

import (
	"github.com/nlstn/go-acumatica/internal/edm"
	"github.com/nlstn/go-acumatica/internal/query"
)

// Kind is the semantic tag of a field reference or expression
type Kind = edm.Kind

const (
	KindAny      = edm.KindAny
	KindBoolean  = edm.KindBoolean
	KindNumber   = edm.KindNumber
	KindString   = edm.KindString
	KindDateTime = edm.KindDateTime
)

// Field is a field reference or a derived expression. Its String method
// returns the OData text; SubField extends the path in place.
type Field = query.Field

// Expression is anything that renders to OData text and carries a Kind
type Expression = query.Expression

// Literal forces a value through the literal-quoting rule
type Literal = edm.Literal

// Filter is an accumulated $filter predicate
type Filter = query.Filter

// Translator converts filter templates in standard notation to OData
type Translator = query.Translator

// TranslatorOption configures a Translator
type TranslatorOption = query.TranslatorOption

// QueryOptions holds the query options of a request and renders them.
//
//	opts, err := acumatica.NewQueryOptions(acumatica.Config{
//		Filter: acumatica.Eq("Status", acumatica.Lit("Open")).String(),
//		Top:    &top,
//		Select: []string{"OrderNbr", "Status"},
//	})
//	url := opts.Build("https://erp.example.com/entity/Default/20.200.001/SalesOrder")
type QueryOptions = query.QueryOptions

// Config is the construction record for QueryOptions
type Config = query.Config

// Param is one rendered query option
type Param = query.Param

// OrderByItem is one $orderby clause
type OrderByItem = query.OrderByItem

// Direction is a $orderby sort direction
type Direction = query.Direction

const (
	Ascending  = query.Ascending
	Descending = query.Descending
)

// Query option keys
const (
	OptionFilter  = query.OptionFilter
	OptionTop     = query.OptionTop
	OptionSkip    = query.OptionSkip
	OptionExpand  = query.OptionExpand
	OptionSelect  = query.OptionSelect
	OptionOrderBy = query.OptionOrderBy
)
