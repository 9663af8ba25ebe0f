package httpclient

import (
	"bytes"
	"mime"
	"net/http"
	"strings"

	"homeo-service/internal/pkg/constvars"
	"homeo-service/internal/pkg/dto/responses"
	"homeo-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

func isJSONContentType(contentType string) bool {
	if contentType == "" {
		return false
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		mediaType = strings.TrimSpace(strings.SplitN(contentType, ";", 2)[0])
	}
	mediaType = strings.ToLower(mediaType)
	return mediaType == constvars.MIMEApplicationJSON || strings.HasSuffix(mediaType, constvars.MIMESuffixJSON)
}

func isSuccessStatus(statusCode int) bool {
	return statusCode >= constvars.StatusOK && statusCode < constvars.StatusMultipleChoices
}

// normalizeResponse turns a fully read response into a Result or a status error.
// 204 always yields nil regardless of the body.
func normalizeResponse(resp *http.Response, body []byte) (*responses.Result, error) {
	if resp.StatusCode == constvars.StatusNoContent {
		return nil, nil
	}

	contentType := resp.Header.Get(constvars.HeaderContentType)
	success := isSuccessStatus(resp.StatusCode)

	if isJSONContentType(contentType) {
		var data any
		if len(bytes.TrimSpace(body)) > 0 {
			if err := json.Unmarshal(body, &data); err != nil {
				if !success {
					return nil, exceptions.ErrHTTPStatus(resp.StatusCode, "", body)
				}
				return nil, exceptions.ErrDecodeResponse(err, contentType)
			}
		}
		if !success {
			return nil, exceptions.ErrHTTPStatus(resp.StatusCode, jsonErrorMessage(data), body)
		}
		return &responses.Result{
			StatusCode: resp.StatusCode,
			Header:     resp.Header,
			Data:       data,
			Raw:        body,
			JSON:       true,
		}, nil
	}

	text := string(body)
	if !success {
		return nil, exceptions.ErrHTTPStatus(resp.StatusCode, text, body)
	}
	return &responses.Result{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Data:       text,
		Raw:        body,
	}, nil
}

func jsonErrorMessage(data any) string {
	fields, ok := data.(map[string]any)
	if !ok {
		return ""
	}
	message, _ := fields["message"].(string)
	return message
}
