package httpclient

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"net/url"
	"reflect"
	"sort"
	"strings"

	"homeo-service/internal/pkg/constvars"
	"homeo-service/internal/pkg/dto/requests"
	"homeo-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

// encodeBody buffers the request payload so every attempt can replay it. JSON content
// types marshal data; any other content type sends data unmodified.
func encodeBody(data any, contentType string) ([]byte, error) {
	if data == nil {
		return nil, nil
	}

	if isJSONContentType(contentType) {
		switch v := data.(type) {
		case json.RawMessage:
			return v, nil
		case []byte:
			return v, nil
		}
		payload, err := json.Marshal(data)
		if err != nil {
			return nil, exceptions.ErrCannotMarshalJSON(err)
		}
		return payload, nil
	}

	switch v := data.(type) {
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	case url.Values:
		return []byte(v.Encode()), nil
	case io.Reader:
		payload, err := io.ReadAll(v)
		if err != nil {
			return nil, exceptions.ErrCreateHTTPRequest(err)
		}
		return payload, nil
	default:
		return nil, exceptions.ErrUnsupportedBody(data, contentType)
	}
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// buildMultipart writes files under fieldName followed by additionalData in key order.
// The returned content type carries the boundary.
func buildMultipart(fieldName string, files []requests.FileUpload, additionalData map[string]any) ([]byte, string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for _, file := range files {
		if file.Content == nil {
			return nil, "", exceptions.ErrBuildMultipartForm(fmt.Errorf("file %q has no content", file.FileName))
		}

		header := make(textproto.MIMEHeader)
		header.Set(constvars.HeaderContentDisposition,
			fmt.Sprintf(`form-data; name="%s"; filename="%s"`, quoteEscaper.Replace(fieldName), quoteEscaper.Replace(file.FileName)))
		contentType := file.ContentType
		if contentType == "" {
			contentType = constvars.MIMEOctetStream
		}
		header.Set(constvars.HeaderContentType, contentType)

		part, err := writer.CreatePart(header)
		if err != nil {
			return nil, "", exceptions.ErrBuildMultipartForm(err)
		}
		if _, err := io.Copy(part, file.Content); err != nil {
			return nil, "", exceptions.ErrBuildMultipartForm(err)
		}
	}

	keys := make([]string, 0, len(additionalData))
	for key := range additionalData {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value, ok, err := formFieldValue(additionalData[key])
		if err != nil {
			return nil, "", exceptions.ErrBuildMultipartForm(err)
		}
		if !ok {
			continue
		}
		if err := writer.WriteField(key, value); err != nil {
			return nil, "", exceptions.ErrBuildMultipartForm(err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", exceptions.ErrBuildMultipartForm(err)
	}
	return buf.Bytes(), writer.FormDataContentType(), nil
}

// formFieldValue renders scalars as text and composite values as JSON.
func formFieldValue(value any) (string, bool, error) {
	if value == nil {
		return "", false, nil
	}
	switch v := value.(type) {
	case string:
		return v, true, nil
	case []byte:
		return string(v), true, nil
	case fmt.Stringer:
		return v.String(), true, nil
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return "", false, nil
		}
		return formFieldValue(rv.Elem().Interface())
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct:
		payload, err := json.Marshal(value)
		if err != nil {
			return "", false, err
		}
		return string(payload), true, nil
	default:
		return fmt.Sprint(value), true, nil
	}
}
