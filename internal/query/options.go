package query

import (
	"context"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/nlstn/go-acumatica/internal/observability"
)

// Query option keys, in the order Build emits them
const (
	OptionFilter  = "$filter"
	OptionTop     = "$top"
	OptionSkip    = "$skip"
	OptionExpand  = "$expand"
	OptionSelect  = "$select"
	OptionOrderBy = "$orderby"
)

// Config is the construction record for QueryOptions. Zero values mean the
// option is absent.
type Config struct {
	// Filter is the $filter text, typically Filter.String(). Empty means absent.
	Filter string

	// Top limits the number of returned records.
	Top *int

	// Skip skips the given number of records.
	Skip *int

	// Expand lists navigation properties to expand. Entries are joined with
	// commas, so a single pre-joined "A,B" entry is passed through.
	Expand []string

	// Select lists fields to return, joined like Expand.
	Select []string

	// OrderBy lists sort clauses.
	OrderBy []OrderByItem

	// OrderByText is a pre-rendered $orderby used when OrderBy is empty.
	OrderByText string
}

// Param is a single rendered query option
type Param struct {
	Key   string
	Value string
}

// QueryOptions holds the OData query options of a request and renders them
// into a query string.
//
// QueryOptions is not safe for concurrent mutation; callers sharing one
// instance between goroutines must synchronize.
type QueryOptions struct {
	filter  *string
	top     *int
	skip    *int
	expand  *string
	sel     *string
	orderBy *string
}

// NewQueryOptions validates cfg and normalizes its list options
func NewQueryOptions(cfg Config) (*QueryOptions, error) {
	o := &QueryOptions{}

	o.SetFilter(cfg.Filter)
	if cfg.Top != nil {
		if err := o.SetTop(*cfg.Top); err != nil {
			return nil, err
		}
	}
	if cfg.Skip != nil {
		if err := o.SetSkip(*cfg.Skip); err != nil {
			return nil, err
		}
	}
	o.SetExpand(cfg.Expand...)
	o.SetSelect(cfg.Select...)
	if len(cfg.OrderBy) > 0 {
		o.SetOrderBy(cfg.OrderBy...)
	} else {
		o.SetOrderByText(cfg.OrderByText)
	}

	return o, nil
}

// Filter returns $filter and whether it is set
func (o *QueryOptions) Filter() (string, bool) {
	return optionalString(o.filter)
}

// SetFilter sets $filter. An empty filter removes $filter, as in Config.
func (o *QueryOptions) SetFilter(filter string) {
	if filter == "" {
		o.filter = nil
		return
	}
	o.filter = &filter
}

// DeleteFilter removes $filter
func (o *QueryOptions) DeleteFilter() {
	o.filter = nil
}

// Top returns $top and whether it is set
func (o *QueryOptions) Top() (int, bool) {
	return optionalInt(o.top)
}

// SetTop sets $top. n must not be negative.
func (o *QueryOptions) SetTop(n int) error {
	if err := validateCount(OptionTop, n); err != nil {
		return err
	}
	o.top = &n
	return nil
}

// DeleteTop removes $top
func (o *QueryOptions) DeleteTop() {
	o.top = nil
}

// Skip returns $skip and whether it is set
func (o *QueryOptions) Skip() (int, bool) {
	return optionalInt(o.skip)
}

// SetSkip sets $skip. n must not be negative.
func (o *QueryOptions) SetSkip(n int) error {
	if err := validateCount(OptionSkip, n); err != nil {
		return err
	}
	o.skip = &n
	return nil
}

// DeleteSkip removes $skip
func (o *QueryOptions) DeleteSkip() {
	o.skip = nil
}

// Expand returns $expand and whether it is set
func (o *QueryOptions) Expand() (string, bool) {
	return optionalString(o.expand)
}

// SetExpand sets $expand to the comma-joined properties.
// Calling it with no properties removes $expand.
func (o *QueryOptions) SetExpand(properties ...string) {
	o.expand = joinList(properties)
}

// DeleteExpand removes $expand
func (o *QueryOptions) DeleteExpand() {
	o.expand = nil
}

// Select returns $select and whether it is set
func (o *QueryOptions) Select() (string, bool) {
	return optionalString(o.sel)
}

// SetSelect sets $select to the comma-joined fields.
// Calling it with no fields removes $select.
func (o *QueryOptions) SetSelect(fields ...string) {
	o.sel = joinList(fields)
}

// DeleteSelect removes $select
func (o *QueryOptions) DeleteSelect() {
	o.sel = nil
}

// OrderBy returns $orderby and whether it is set
func (o *QueryOptions) OrderBy() (string, bool) {
	return optionalString(o.orderBy)
}

// SetOrderBy sets $orderby from sort clauses.
// Calling it with no clauses removes $orderby.
func (o *QueryOptions) SetOrderBy(items ...OrderByItem) {
	if len(items) == 0 {
		o.orderBy = nil
		return
	}
	s := formatOrderBy(items)
	o.orderBy = &s
}

// SetOrderByText sets a pre-rendered $orderby.
// An empty orderBy removes $orderby.
func (o *QueryOptions) SetOrderByText(orderBy string) {
	if orderBy == "" {
		o.orderBy = nil
		return
	}
	o.orderBy = &orderBy
}

// DeleteOrderBy removes $orderby
func (o *QueryOptions) DeleteOrderBy() {
	o.orderBy = nil
}

// Params returns the present options in the fixed order
// $filter, $top, $skip, $expand, $select, $orderby.
func (o *QueryOptions) Params() []Param {
	params := make([]Param, 0, 6)
	add := func(key string, value *string) {
		if value != nil {
			params = append(params, Param{Key: key, Value: *value})
		}
	}
	addInt := func(key string, value *int) {
		if value != nil {
			params = append(params, Param{Key: key, Value: strconv.Itoa(*value)})
		}
	}

	add(OptionFilter, o.filter)
	addInt(OptionTop, o.top)
	addInt(OptionSkip, o.skip)
	add(OptionExpand, o.expand)
	add(OptionSelect, o.sel)
	add(OptionOrderBy, o.orderBy)

	return params
}

// Build appends the present options to baseURL as "?key=value&key=value".
// Values are not URL-encoded. With no options present the result is
// baseURL followed by a bare "?".
func (o *QueryOptions) Build(baseURL string) string {
	params := o.Params()
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = p.Key + "=" + p.Value
	}
	return baseURL + "?" + strings.Join(parts, "&")
}

// BuildContext is Build inside a span of the globally registered tracer
// provider, carrying the rendered options as attributes.
func (o *QueryOptions) BuildContext(ctx context.Context, baseURL string) string {
	_, span := observability.GlobalTracer().StartBuild(ctx, baseURL, o.Attributes()...)
	defer span.End()
	return o.Build(baseURL)
}

// String returns Build("")
func (o *QueryOptions) String() string {
	return o.Build("")
}

// Attributes describes the present options as OpenTelemetry attributes
func (o *QueryOptions) Attributes() []attribute.KeyValue {
	params := o.Params()
	attrs := make([]attribute.KeyValue, 0, len(params))
	for _, p := range params {
		if attr, ok := observability.QueryOptionAttribute(p.Key, p.Value); ok {
			attrs = append(attrs, attr)
		}
	}
	return attrs
}

// AnnotateSpan records the present options on the span carried by ctx
func (o *QueryOptions) AnnotateSpan(ctx context.Context) {
	observability.AnnotateSpan(ctx, o.Attributes()...)
}

func validateCount(option string, n int) error {
	if n < 0 {
		return &ConfigurationError{Option: option, Value: n, Reason: "must be a non-negative integer"}
	}
	return nil
}

func joinList(items []string) *string {
	if len(items) == 0 {
		return nil
	}
	s := strings.Join(items, ",")
	return &s
}

func optionalString(v *string) (string, bool) {
	if v == nil {
		return "", false
	}
	return *v, true
}

func optionalInt(v *int) (int, bool) {
	if v == nil {
		return 0, false
	}
	return *v, true
}
