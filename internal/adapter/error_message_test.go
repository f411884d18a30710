package adapter

import (
	"errors"
	"fmt"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		body string
		err  error
		want string
	}{
		{name: "server message wins", body: `{"error":{"message":"X"}}`, err: errors.New("timeout"), want: "X"},
		{name: "transport message", err: errors.New("timeout"), want: "timeout"},
		{name: "neither", want: "Unknown error"},
		{name: "empty server message", body: `{"error":{"message":""}}`, err: errors.New("timeout"), want: "timeout"},
		{name: "error is a string", body: `{"error":"nope"}`, err: errors.New("timeout"), want: "timeout"},
		{name: "error is null", body: `{"error":null}`, want: "Unknown error"},
		{name: "non json body", body: `<html>502</html>`, err: &StatusError{StatusCode: 502}, want: "Request failed with status code 502"},
		{name: "json array body", body: `[1,2]`, want: "Unknown error"},
		{name: "url error unwrapped", err: &url.Error{Op: "Get", URL: "http://x", Err: errors.New("connection refused")}, want: "connection refused"},
		{name: "wrapped url error", err: fmt.Errorf("call: %w", &url.Error{Op: "Get", URL: "http://x", Err: errors.New("eof")}), want: "eof"},
		{name: "case variant error key ignored", body: `{"Error":{"MESSAGE":"x"}}`, err: errors.New("timeout"), want: "timeout"},
		{name: "case variant message key ignored", body: `{"error":{"Message":"x"}}`, err: errors.New("timeout"), want: "timeout"},
		{name: "message is not a string", body: `{"error":{"message":42}}`, want: "Unknown error"},
		{name: "blank transport message", err: errors.New("  "), want: "Unknown error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ErrorMessage([]byte(tt.body), tt.err))
		})
	}
}

func TestAPIError_Unwrap(t *testing.T) {
	cause := &StatusError{StatusCode: 409}
	err := &APIError{Message: "exists", StatusCode: 409, Err: cause}

	assert.Equal(t, "exists", err.Error())
	assert.ErrorIs(t, err, ErrConflict)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrNotFound)

	transport := &APIError{Message: "timeout", Err: errors.New("timeout")}
	assert.Len(t, transport.Unwrap(), 1)
}

func TestStatusSentinel(t *testing.T) {
	assert.Equal(t, ErrBadRequest, statusSentinel(400))
	assert.Equal(t, ErrUnauthorized, statusSentinel(401))
	assert.Equal(t, ErrForbidden, statusSentinel(403))
	assert.Equal(t, ErrNotFound, statusSentinel(404))
	assert.Equal(t, ErrConflict, statusSentinel(409))
	assert.Equal(t, ErrInternalServerError, statusSentinel(500))
	assert.Equal(t, ErrBadGateway, statusSentinel(502))
	assert.Nil(t, statusSentinel(418))
	assert.Nil(t, statusSentinel(0))
}
