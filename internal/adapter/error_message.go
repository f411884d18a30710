package adapter

import (
	"encoding/json"
	"errors"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-biz-admin/internal/app"
	"github.com/MKhiriev/go-biz-admin/models"
)

// ErrorMessage derives the user-facing message of a failed call:
//  1. error.message of the JSON response body, when non-empty;
//  2. the transport error's message;
//  3. "Unknown error".
//
// For *url.Error the wrapped error's message is used, without the method
// and URL prefix added by net/http.
func ErrorMessage(body []byte, err error) string {
	if msg := bodyMessage(body); msg != "" {
		return msg
	}
	if msg := transportMessage(err); msg != "" {
		return msg
	}
	return app.MsgUnknownError
}

func bodyMessage(body []byte) string {
	detail, ok := models.ObjectField(body, "error")
	if !ok {
		return ""
	}
	raw, ok := models.ObjectField(detail, "message")
	if !ok {
		return ""
	}

	var msg string
	if err := json.Unmarshal(raw, &msg); err != nil {
		return ""
	}
	return strings.TrimSpace(msg)
}

func transportMessage(err error) string {
	if err == nil {
		return ""
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Err != nil {
		return strings.TrimSpace(urlErr.Err.Error())
	}
	return strings.TrimSpace(err.Error())
}
