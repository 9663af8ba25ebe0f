package utils

import (
	"fmt"
	"net/url"
	"reflect"
	"sort"
	"strings"
)

// BuildQueryString encodes a flat key-value mapping in key order. Nil values are
// skipped and slices are joined with commas.
func BuildQueryString(params map[string]any) string {
	if len(params) == 0 {
		return ""
	}

	keys := make([]string, 0, len(params))
	for key := range params {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	values := make([]string, 0, len(keys))
	for _, key := range keys {
		value, ok := FormatQueryValue(params[key])
		if !ok {
			continue
		}
		values = append(values, url.QueryEscape(key)+"="+url.QueryEscape(value))
	}
	return strings.Join(values, "&")
}

func FormatQueryValue(value any) (string, bool) {
	if value == nil {
		return "", false
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() {
			return "", false
		}
		return FormatQueryValue(rv.Elem().Interface())
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8 {
			return string(rv.Bytes()), true
		}
		parts := make([]string, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			part, ok := FormatQueryValue(rv.Index(i).Interface())
			if ok {
				parts = append(parts, part)
			}
		}
		return strings.Join(parts, ","), true
	default:
		return fmt.Sprint(value), true
	}
}

// AppendQuery appends an encoded query to endpoint, keeping any query it already has.
func AppendQuery(endpoint, query string) string {
	if query == "" {
		return endpoint
	}
	if strings.Contains(endpoint, "?") {
		return endpoint + "&" + query
	}
	return endpoint + "?" + query
}

// JoinURL resolves endpoint against baseURL. Absolute endpoints are returned as is.
func JoinURL(baseURL, endpoint string) string {
	if strings.HasPrefix(endpoint, "http://") || strings.HasPrefix(endpoint, "https://") {
		return endpoint
	}
	if baseURL == "" {
		return endpoint
	}
	if endpoint == "" {
		return baseURL
	}
	return strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(endpoint, "/")
}

// ResourcePath joins path segments into an endpoint, escaping every segment after the first.
func ResourcePath(base string, segments ...string) string {
	var builder strings.Builder
	builder.WriteString(strings.TrimRight(base, "/"))
	for _, segment := range segments {
		segment = strings.Trim(segment, "/")
		if segment == "" {
			continue
		}
		builder.WriteString("/")
		builder.WriteString(url.PathEscape(segment))
	}
	return builder.String()
}
