package query

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"

	"github.com/nlstn/go-acumatica/internal/observability"
)

func intPtr(n int) *int { return &n }

func TestQueryOptionsBuild(t *testing.T) {
	tests := []struct {
		name     string
		cfg      Config
		baseURL  string
		expected string
	}{
		{
			name:     "all options in fixed order",
			cfg:      Config{OrderByText: "Name", Select: []string{"Name"}, Expand: []string{"Details"}, Skip: intPtr(20), Top: intPtr(10), Filter: "A eq 1"},
			baseURL:  "http://h/SalesOrder",
			expected: "http://h/SalesOrder?$filter=A eq 1&$top=10&$skip=20&$expand=Details&$select=Name&$orderby=Name",
		},
		{
			name:     "only filter",
			cfg:      Config{Filter: "X"},
			baseURL:  "http://h",
			expected: "http://h?$filter=X",
		},
		{
			name:     "no options keeps separator",
			cfg:      Config{},
			baseURL:  "http://h",
			expected: "http://h?",
		},
		{
			name:     "zero top is present",
			cfg:      Config{Top: intPtr(0)},
			baseURL:  "",
			expected: "?$top=0",
		},
		{
			name:     "lists joined with commas",
			cfg:      Config{Expand: []string{"A", "B"}, Select: []string{"X", "Y", "Z"}},
			baseURL:  "u",
			expected: "u?$expand=A,B&$select=X,Y,Z",
		},
		{
			name:     "pre-joined list passed through",
			cfg:      Config{Select: []string{"X,Y"}},
			baseURL:  "u",
			expected: "u?$select=X,Y",
		},
		{
			name:     "order by pairs",
			cfg:      Config{OrderBy: []OrderByItem{Asc("Name"), Desc("Date")}},
			baseURL:  "u",
			expected: "u?$orderby=Name asc,Date desc",
		},
		{
			name:     "order by pairs win over text",
			cfg:      Config{OrderBy: []OrderByItem{{Field: "Name"}}, OrderByText: "Other desc"},
			baseURL:  "u",
			expected: "u?$orderby=Name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := NewQueryOptions(tt.cfg)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, opts.Build(tt.baseURL))
		})
	}
}

func TestQueryOptionsRejectsNegativeCounts(t *testing.T) {
	_, err := NewQueryOptions(Config{Top: intPtr(-1)})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConfiguration))

	var cfgErr *ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, OptionTop, cfgErr.Option)

	_, err = NewQueryOptions(Config{Top: intPtr(5), Skip: intPtr(-3)})
	assert.ErrorIs(t, err, ErrConfiguration)

	opts, err := NewQueryOptions(Config{Top: intPtr(5)})
	require.NoError(t, err)
	assert.ErrorIs(t, opts.SetSkip(-1), ErrConfiguration)
	_, ok := opts.Skip()
	assert.False(t, ok, "failed SetSkip must not change $skip")
}

func TestQueryOptionsAccessors(t *testing.T) {
	opts, err := NewQueryOptions(Config{})
	require.NoError(t, err)

	_, ok := opts.Filter()
	assert.False(t, ok)

	opts.SetFilter(Eq("A", 1).String())
	require.NoError(t, opts.SetTop(10))
	require.NoError(t, opts.SetSkip(5))
	opts.SetExpand("Details", "Contacts")
	opts.SetSelect("OrderNbr")
	opts.SetOrderBy(Desc("Date"))

	filter, ok := opts.Filter()
	assert.True(t, ok)
	assert.Equal(t, "A eq 1", filter)

	top, ok := opts.Top()
	assert.True(t, ok)
	assert.Equal(t, 10, top)

	skip, _ := opts.Skip()
	assert.Equal(t, 5, skip)

	expand, _ := opts.Expand()
	assert.Equal(t, "Details,Contacts", expand)

	sel, _ := opts.Select()
	assert.Equal(t, "OrderNbr", sel)

	orderBy, _ := opts.OrderBy()
	assert.Equal(t, "Date desc", orderBy)

	opts.DeleteFilter()
	opts.DeleteTop()
	opts.DeleteExpand()
	opts.SetSelect()
	assert.Equal(t, "u?$skip=5&$orderby=Date desc", opts.Build("u"))

	opts.DeleteSkip()
	opts.DeleteOrderBy()
	opts.SetOrderByText("Name")
	assert.Equal(t, "?$orderby=Name", opts.String())

	opts.SetOrderBy()
	opts.DeleteSelect()
	assert.Empty(t, opts.Params())
}

func TestQueryOptionsParams(t *testing.T) {
	opts, err := NewQueryOptions(Config{Filter: "X", Top: intPtr(3)})
	require.NoError(t, err)

	assert.Equal(t, []Param{
		{Key: OptionFilter, Value: "X"},
		{Key: OptionTop, Value: "3"},
	}, opts.Params())
}

func TestQueryOptionsAttributes(t *testing.T) {
	opts, err := NewQueryOptions(Config{
		Filter: "A eq 1",
		Top:    intPtr(10),
		Select: []string{"A", "B"},
	})
	require.NoError(t, err)

	assert.Equal(t, []attribute.KeyValue{
		observability.QueryFilterAttr("A eq 1"),
		observability.QueryTopAttr(10),
		observability.QuerySelectAttr("A,B"),
	}, opts.Attributes())
}

func TestQueryOptionsAnnotateSpanWithoutSpan(t *testing.T) {
	opts, err := NewQueryOptions(Config{Filter: "X"})
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		opts.AnnotateSpan(context.Background())
	})
}

func TestQueryOptionsBuildContext(t *testing.T) {
	opts, err := NewQueryOptions(Config{Filter: "X", Top: intPtr(2)})
	require.NoError(t, err)

	assert.Equal(t, opts.Build("u"), opts.BuildContext(context.Background(), "u"))
}

func TestQueryOptionsEmptyTextMeansAbsent(t *testing.T) {
	opts, err := NewQueryOptions(Config{Filter: "X", OrderByText: "Name"})
	require.NoError(t, err)

	opts.SetFilter("")
	opts.SetOrderByText("")

	_, ok := opts.Filter()
	assert.False(t, ok)
	_, ok = opts.OrderBy()
	assert.False(t, ok)
	assert.Equal(t, "u?", opts.Build("u"))

	fromConfig, err := NewQueryOptions(Config{Filter: ""})
	require.NoError(t, err)
	assert.Equal(t, fromConfig.Build("u"), opts.Build("u"))
}
