package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildQueryString(t *testing.T) {
	tests := []struct {
		name   string
		params map[string]any
		want   string
	}{
		{name: "empty", params: nil, want: ""},
		{name: "sorted keys", params: map[string]any{"b": "two", "a": 1}, want: "a=1&b=two"},
		{name: "nil skipped", params: map[string]any{"a": nil, "b": true}, want: "b=true"},
		{name: "slice joined", params: map[string]any{"status": []string{"scheduled", "completed"}}, want: "status=scheduled%2Ccompleted"},
		{name: "escaped", params: map[string]any{"search": "asha rao&co"}, want: "search=asha+rao%26co"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildQueryString(tt.params))
		})
	}
}

func TestAppendQuery(t *testing.T) {
	assert.Equal(t, "/x", AppendQuery("/x", ""))
	assert.Equal(t, "/x?a=1", AppendQuery("/x", "a=1"))
	assert.Equal(t, "/x?page=2&a=1", AppendQuery("/x?page=2", "a=1"))
}

func TestJoinURL(t *testing.T) {
	tests := []struct {
		baseURL  string
		endpoint string
		want     string
	}{
		{baseURL: "http://localhost:8080/api", endpoint: "/patients", want: "http://localhost:8080/api/patients"},
		{baseURL: "http://localhost:8080/api/", endpoint: "patients", want: "http://localhost:8080/api/patients"},
		{baseURL: "http://localhost:8080/api", endpoint: "https://cdn.example.com/file", want: "https://cdn.example.com/file"},
		{baseURL: "", endpoint: "/patients", want: "/patients"},
		{baseURL: "http://localhost:8080/api", endpoint: "", want: "http://localhost:8080/api"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, JoinURL(tt.baseURL, tt.endpoint))
	}
}

func TestResourcePath(t *testing.T) {
	assert.Equal(t, "/appointments/a-1/cancel", ResourcePath("/appointments", "a-1", "/cancel"))
	assert.Equal(t, "/patients/a%2Fb", ResourcePath("/patients/", "a/b"))
	assert.Equal(t, "/patients", ResourcePath("/patients", ""))
}
