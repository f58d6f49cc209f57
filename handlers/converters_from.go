package handlers

import (
	"bytes"
	"encoding/json"
	"io"

	"mypresence/service"
)

// fromValuesBody decodes a JSON array request body. Returns service.BadParameterError on parse failure.
func fromValuesBody(body io.Reader) ([]json.RawMessage, error) {
	if body == nil {
		return nil, service.NewBadParameterError("request body is required", nil)
	}
	var values []json.RawMessage
	if err := json.NewDecoder(body).Decode(&values); err != nil {
		return nil, service.NewBadParameterError("request body must be a JSON array", err)
	}
	if values == nil {
		values = []json.RawMessage{}
	}
	return values, nil
}

// fromRawBody reads any JSON value from the request body. Returns service.BadParameterError when it is not valid JSON.
func fromRawBody(body io.Reader) (json.RawMessage, error) {
	if body == nil {
		return nil, service.NewBadParameterError("request body is required", nil)
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, service.NewBadParameterError("can't read request body", err)
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || !json.Valid(data) {
		return nil, service.NewBadParameterError("request body must be JSON", nil)
	}
	return json.RawMessage(data), nil
}
