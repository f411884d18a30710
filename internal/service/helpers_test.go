package service

import (
	"net/http"

	"github.com/MKhiriev/go-biz-admin/internal/adapter"
)

// ok builds a successful response with a JSON body.
func ok(body string) *adapter.Response {
	return &adapter.Response{
		StatusCode: http.StatusOK,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       []byte(body),
	}
}

// apiErr is what the access layer returns for a failed call.
func apiErr(status int, message string) error {
	return &adapter.APIError{Message: message, StatusCode: status, Err: &adapter.StatusError{StatusCode: status}}
}
