package query

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
)

// QueryOptionsFromMap builds QueryOptions from a dynamically decoded
// configuration such as the result of json.Unmarshal into
// map[string]interface{}. Keys may be given with or without the leading '$'
// and are case-insensitive.
//
//   - filter: string or fmt.Stringer
//   - top, skip: integral number (int types, float64 without fraction, json.Number)
//   - expand, select: string (passed through) or list of strings
//   - orderby: string (passed through) or list of [field] / [field, direction] pairs
//
// A nil value leaves the option absent.
func QueryOptionsFromMap(m map[string]interface{}) (*QueryOptions, error) {
	var cfg Config

	for key, raw := range m {
		if raw == nil {
			continue
		}
		option := "$" + strings.ToLower(strings.TrimPrefix(key, "$"))

		var err error
		switch option {
		case OptionFilter:
			cfg.Filter, err = stringValue(option, raw)
		case OptionTop:
			cfg.Top, err = integerValue(option, raw)
		case OptionSkip:
			cfg.Skip, err = integerValue(option, raw)
		case OptionExpand:
			cfg.Expand, err = listValue(option, raw)
		case OptionSelect:
			cfg.Select, err = listValue(option, raw)
		case OptionOrderBy:
			if s, ok := raw.(string); ok {
				cfg.OrderByText = s
			} else {
				cfg.OrderBy, err = orderByValue(option, raw)
			}
		default:
			err = &ConfigurationError{Option: key, Value: raw, Reason: "unknown query option"}
		}
		if err != nil {
			return nil, err
		}
	}

	return NewQueryOptions(cfg)
}

func stringValue(option string, raw interface{}) (string, error) {
	switch v := raw.(type) {
	case string:
		return v, nil
	case fmt.Stringer:
		return v.String(), nil
	default:
		return "", &ConfigurationError{Option: option, Value: raw, Reason: "must be a string"}
	}
}

func integerValue(option string, raw interface{}) (*int, error) {
	notInteger := &ConfigurationError{Option: option, Value: raw, Reason: "must be an integer"}

	var n int64
	switch v := raw.(type) {
	case int:
		n = int64(v)
	case int32:
		n = int64(v)
	case int64:
		n = v
	case float32:
		return integerValue(option, float64(v))
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) || v >= math.MaxInt64 || v < math.MinInt64 {
			return nil, notInteger
		}
		n = int64(v)
	case json.Number:
		parsed, err := v.Int64()
		if err != nil {
			return nil, notInteger
		}
		n = parsed
	default:
		return nil, notInteger
	}

	if n < 0 {
		return nil, &ConfigurationError{Option: option, Value: raw, Reason: "must be a non-negative integer"}
	}
	if int64(int(n)) != n {
		return nil, &ConfigurationError{Option: option, Value: raw, Reason: "out of range"}
	}
	i := int(n)
	return &i, nil
}

func listValue(option string, raw interface{}) ([]string, error) {
	switch v := raw.(type) {
	case string:
		return []string{v}, nil
	case []string:
		return v, nil
	case []interface{}:
		items := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, &ConfigurationError{Option: option, Value: raw, Reason: "list entries must be strings"}
			}
			items = append(items, s)
		}
		return items, nil
	default:
		return nil, &ConfigurationError{Option: option, Value: raw, Reason: "must be a string or a list of strings"}
	}
}

func orderByValue(option string, raw interface{}) ([]OrderByItem, error) {
	var pairs [][]interface{}

	switch v := raw.(type) {
	case [][]string:
		for _, pair := range v {
			converted := make([]interface{}, len(pair))
			for i, s := range pair {
				converted[i] = s
			}
			pairs = append(pairs, converted)
		}
	case [][2]string:
		for _, pair := range v {
			pairs = append(pairs, []interface{}{pair[0], pair[1]})
		}
	case []interface{}:
		for _, entry := range v {
			switch pair := entry.(type) {
			case []interface{}:
				pairs = append(pairs, pair)
			case []string:
				converted := make([]interface{}, len(pair))
				for i, s := range pair {
					converted[i] = s
				}
				pairs = append(pairs, converted)
			case string:
				pairs = append(pairs, []interface{}{pair})
			default:
				return nil, &ConfigurationError{Option: option, Value: raw, Reason: "entries must be [field, direction] pairs"}
			}
		}
	default:
		return nil, &ConfigurationError{Option: option, Value: raw, Reason: "must be a string or a list of [field, direction] pairs"}
	}

	items := make([]OrderByItem, 0, len(pairs))
	for _, pair := range pairs {
		item, err := orderByPair(option, pair)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func orderByPair(option string, pair []interface{}) (OrderByItem, error) {
	if len(pair) == 0 || len(pair) > 2 {
		return OrderByItem{}, &ConfigurationError{Option: option, Value: pair, Reason: "entries must be [field, direction] pairs"}
	}
	field, ok := pair[0].(string)
	if !ok || field == "" {
		return OrderByItem{}, &ConfigurationError{Option: option, Value: pair, Reason: "field must be a non-empty string"}
	}
	item := OrderByItem{Field: field}
	if len(pair) == 2 {
		dir, ok := pair[1].(string)
		if !ok {
			return OrderByItem{}, &ConfigurationError{Option: option, Value: pair, Reason: "direction must be a string"}
		}
		parsed, err := ParseDirection(dir)
		if err != nil {
			return OrderByItem{}, &ConfigurationError{Option: option, Value: pair, Reason: err.Error()}
		}
		item.Direction = parsed
	}
	return item, nil
}
