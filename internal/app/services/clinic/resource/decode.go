package resource

import (
	"errors"

	"homeo-service/internal/pkg/dto/responses"
	"homeo-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"
)

var envelopeKeys = []string{"data", "items", "results"}

// unwrapEnvelope strips a {"data": ...} style wrapper whose value has the shape being
// decoded: an array for lists, an object for single entities. Objects carrying an id are
// entities themselves and are left alone.
func unwrapEnvelope(raw []byte, list bool) []byte {
	if !gjson.ValidBytes(raw) || !gjson.ParseBytes(raw).IsObject() {
		return raw
	}
	if !list && gjson.GetBytes(raw, "id").Exists() {
		return raw
	}
	for _, key := range envelopeKeys {
		inner := gjson.GetBytes(raw, key)
		if (list && !inner.IsArray()) || (!list && !inner.IsObject()) {
			continue
		}
		return []byte(inner.Raw)
	}
	return raw
}

// DecodeList decodes a JSON array, wrapped or not. A 204 decodes to an empty list.
func DecodeList[T any](result *responses.Result, name string) ([]T, error) {
	entities := []T{}
	if result == nil || len(result.Raw) == 0 {
		return entities, nil
	}
	if !result.JSON {
		return nil, exceptions.ErrDecodeResponse(errors.New("expected a JSON body"), name+" list")
	}
	if err := json.Unmarshal(unwrapEnvelope(result.Raw, true), &entities); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, name+" list")
	}
	return entities, nil
}

// DecodeOne decodes a single entity. A 204 yields nil.
func DecodeOne[T any](result *responses.Result, name string) (*T, error) {
	if result == nil || len(result.Raw) == 0 {
		return nil, nil
	}
	if !result.JSON {
		return nil, exceptions.ErrDecodeResponse(errors.New("expected a JSON body"), name)
	}
	entity := new(T)
	if err := json.Unmarshal(unwrapEnvelope(result.Raw, false), entity); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, name)
	}
	return entity, nil
}
