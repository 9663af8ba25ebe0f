package cli

import (
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"homeo-service/internal/pkg/constvars"
	"homeo-service/internal/pkg/dto/requests"

	"github.com/goccy/go-json"
)

// parseKeyValues turns repeated key=value flags into a mapping. A key given twice
// collects its values into a slice.
func parseKeyValues(pairs []string) (map[string]any, error) {
	values := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("expected key=value, got %q", pair)
		}
		switch existing := values[key].(type) {
		case nil:
			values[key] = value
		case string:
			values[key] = []string{existing, value}
		case []string:
			values[key] = append(existing, value)
		}
	}
	return values, nil
}

func parseHeaders(pairs []string) (map[string]string, error) {
	headers := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, ":")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("expected Name: value, got %q", pair)
		}
		headers[key] = strings.TrimSpace(value)
	}
	return headers, nil
}

// readBody resolves the --data flag. "@path" reads a file and "-" reads stdin. JSON
// content is decoded so the client re-encodes it; other content types are sent as is.
func readBody(data string, contentType string, stdin io.Reader) (any, error) {
	if data == "" {
		return nil, nil
	}

	var raw []byte
	switch {
	case data == "-":
		content, err := io.ReadAll(stdin)
		if err != nil {
			return nil, err
		}
		raw = content
	case strings.HasPrefix(data, "@"):
		content, err := os.ReadFile(strings.TrimPrefix(data, "@"))
		if err != nil {
			return nil, err
		}
		raw = content
	default:
		raw = []byte(data)
	}

	if contentType != constvars.MIMEApplicationJSON {
		return raw, nil
	}
	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("--data is not valid JSON: %w", err)
	}
	return decoded, nil
}

// openUpload opens a local file as an upload part; the caller closes the file.
func openUpload(path string) (requests.FileUpload, *os.File, error) {
	file, err := os.Open(path)
	if err != nil {
		return requests.FileUpload{}, nil, err
	}
	return requests.FileUpload{
		FileName:    filepath.Base(path),
		ContentType: mime.TypeByExtension(filepath.Ext(path)),
		Content:     file,
	}, file, nil
}
