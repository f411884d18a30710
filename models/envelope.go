// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
)

// Envelope is the server response convention: the actual payload may be
// nested under "content". A nil Content means the body was not wrapped.
type Envelope[T any] struct {
	Content *T `json:"content"`
}

// Normalize unwraps a response body. If raw is a JSON object whose "content"
// property is present and not null, the content is returned; otherwise raw
// itself is the payload and is returned unchanged.
//
// Normalize is applied once per call site: normalizing an already unwrapped
// payload that happens to carry its own "content" field unwraps it again.
func Normalize(raw json.RawMessage) json.RawMessage {
	content, ok := objectField(raw, "content")
	if !ok || isNull(content) {
		return raw
	}
	return content
}

// IsEmptyEnvelope reports whether raw is an envelope that carries no payload:
// an object whose only key is "content" with a null value, or "{}".
func IsEmptyEnvelope(raw json.RawMessage) bool {
	fields, ok := objectFields(raw)
	if !ok {
		return false
	}
	switch len(fields) {
	case 0:
		return true
	case 1:
		content, found := fields["content"]
		return found && isNull(content)
	default:
		return false
	}
}

// ObjectField returns the value stored under key in the JSON object raw. Keys
// are matched exactly.
func ObjectField(raw json.RawMessage, key string) (json.RawMessage, bool) {
	return objectField(raw, key)
}

func objectField(raw json.RawMessage, key string) (json.RawMessage, bool) {
	fields, ok := objectFields(raw)
	if !ok {
		return nil, false
	}
	v, found := fields[key]
	return v, found
}

// objectFields decodes raw into its top-level properties. encoding/json folds
// case when matching struct tags, a map keeps the keys as sent.
func objectFields(raw json.RawMessage) (map[string]json.RawMessage, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, false
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return nil, false
	}
	return fields, true
}

func isNull(v json.RawMessage) bool {
	v = bytes.TrimSpace(v)
	return len(v) == 0 || bytes.Equal(v, []byte("null"))
}

// DecodeContent normalizes raw and decodes the resulting payload into v.
func DecodeContent(raw json.RawMessage, v any) error {
	return json.Unmarshal(Normalize(raw), v)
}
