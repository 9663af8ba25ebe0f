package responses

import (
	"net/http"

	"github.com/goccy/go-json"
)

// Result is a normalized backend response. Data holds the decoded JSON value for JSON
// responses and the body text otherwise.
type Result struct {
	StatusCode int
	Header     http.Header
	Data       any
	Raw        []byte
	JSON       bool
}

// Decode unmarshals the response body into dst. A nil Result (204 No Content)
// leaves dst untouched.
func (r *Result) Decode(dst any) error {
	if r == nil || len(r.Raw) == 0 {
		return nil
	}
	if !r.JSON {
		if s, ok := dst.(*string); ok {
			*s = string(r.Raw)
			return nil
		}
	}
	return json.Unmarshal(r.Raw, dst)
}

// Text returns the raw body as a string.
func (r *Result) Text() string {
	if r == nil {
		return ""
	}
	return string(r.Raw)
}
