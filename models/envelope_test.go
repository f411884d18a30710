package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"content array", `{"content":[{"id":1,"name":"Male"}]}`, `[{"id":1,"name":"Male"}]`},
		{"content object", `{"content":{"id":7},"total":1}`, `{"id":7}`},
		{"content scalar", `{"content":"ok"}`, `"ok"`},
		{"content false is not null", `{"content":false}`, `false`},
		{"content empty array", `{"content":[]}`, `[]`},
		{"content null", `{"content":null}`, `{"content":null}`},
		{"content absent", `{"id":1,"name":"Admin"}`, `{"id":1,"name":"Admin"}`},
		{"top-level array", `[1,2,3]`, `[1,2,3]`},
		{"top-level string", `"plain"`, `"plain"`},
		{"empty body", ``, ``},
		{"invalid json", `{"content":`, `{"content":`},
		{"leading whitespace", "  \n{\"content\":{\"a\":1}}", `{"a":1}`},
		{"capitalized key is not content", `{"Content":[1],"id":2}`, `{"Content":[1],"id":2}`},
		{"upper-case key is not content", `{"CONTENT":"x"}`, `{"CONTENT":"x"}`},
		{"exact key next to a case variant", `{"Content":1,"content":2}`, `2`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(json.RawMessage(tt.raw))
			assert.Equal(t, tt.want, string(got))
		})
	}
}

// Normalize is applied once per call site; a payload with its own content
// field is unwrapped again.
func TestNormalize_NotIdempotent(t *testing.T) {
	raw := json.RawMessage(`{"content":{"content":"inner"}}`)

	once := Normalize(raw)
	twice := Normalize(once)

	assert.JSONEq(t, `{"content":"inner"}`, string(once))
	assert.Equal(t, `"inner"`, string(twice))
}

func TestIsEmptyEnvelope(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{`{"content":null}`, true},
		{` {} `, true},
		{`{"content":null,"total":0}`, false},
		{`{"Content":null}`, false},
		{`{"id":1}`, false},
		{`[]`, false},
		{`null`, false},
		{`{"content":`, false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, IsEmptyEnvelope(json.RawMessage(tt.raw)))
		})
	}
}

func TestDecodeContent(t *testing.T) {
	var enums []CoreEnum
	err := DecodeContent(json.RawMessage(`{"content":[{"id":1,"name":"Male"},{"id":2,"name":"Female"}]}`), &enums)

	require.NoError(t, err)
	require.Len(t, enums, 2)
	assert.Equal(t, CoreEnum{ID: 1, Name: "Male"}, enums[0])
	assert.Equal(t, "Female", enums[1].Name)
}

func TestDecodeContent_Unwrapped(t *testing.T) {
	var role Role
	err := DecodeContent(json.RawMessage(`{"id":3,"name":"Editor","permissions":["blog.write"]}`), &role)

	require.NoError(t, err)
	assert.Equal(t, int64(3), role.ID)
	assert.True(t, role.HasPermission("blog.write"))
	assert.False(t, role.HasPermission("bonus.write"))
}

func TestEnvelope_Decode(t *testing.T) {
	var env Envelope[[]CoreEnum]

	require.NoError(t, json.Unmarshal([]byte(`{"content":null}`), &env))
	assert.Nil(t, env.Content)

	require.NoError(t, json.Unmarshal([]byte(`{"content":[{"id":1,"name":"Male"}]}`), &env))
	require.NotNil(t, env.Content)
	assert.Len(t, *env.Content, 1)
}

func TestBlogFilter_Query(t *testing.T) {
	assert.Empty(t, BlogFilter{}.Query())
	assert.Equal(t,
		map[string]string{"status": BlogStatusDraft, "tag": "go", "search": "release"},
		BlogFilter{Status: BlogStatusDraft, Tag: "go", Search: "release"}.Query(),
	)
}

func TestMultipartForm_HasFiles(t *testing.T) {
	var nilForm *MultipartForm
	assert.False(t, nilForm.HasFiles())
	assert.False(t, NewMultipartForm(map[string]string{"a": "b"}).HasFiles())
	assert.True(t, NewMultipartForm(nil, FilePart{Field: "cover"}).HasFiles())
}
