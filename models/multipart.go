// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "io"

// DefaultMultipartDataField is the form field that carries the JSON-encoded
// structured part of a [MultipartForm].
const DefaultMultipartDataField = "data"

// MultipartForm is a request body made of a structured part and binary
// attachments. The structured part is serialized to JSON and embedded as a
// single form field; each file becomes its own part.
type MultipartForm struct {
	// DataField overrides [DefaultMultipartDataField] when non-empty.
	DataField string

	// Data is the structured part. It is JSON-encoded before sending.
	// A nil Data produces no data field.
	Data any

	// Files are appended as separate parts in order.
	Files []FilePart
}

// FilePart is one binary attachment of a [MultipartForm].
type FilePart struct {
	// Field is the form field name (e.g. "cover", "attachments").
	Field string

	// FileName is the file name reported to the server.
	FileName string

	// ContentType defaults to application/octet-stream when empty.
	ContentType string

	// Reader supplies the file content.
	Reader io.Reader
}

// NewMultipartForm creates a form whose structured part is data.
func NewMultipartForm(data any, files ...FilePart) *MultipartForm {
	return &MultipartForm{Data: data, Files: files}
}

// HasFiles reports whether at least one file is attached.
func (f *MultipartForm) HasFiles() bool {
	return f != nil && len(f.Files) > 0
}
