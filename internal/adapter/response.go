package adapter

import (
	"encoding/json"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-biz-admin/models"
)

// Response is a successful API response, passed through as received.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       json.RawMessage
}

func newResponse(resp *resty.Response) *Response {
	return &Response{
		StatusCode: resp.StatusCode(),
		Header:     resp.Header(),
		Body:       resp.Body(),
	}
}

// Decode decodes the raw body into v.
func (r *Response) Decode(v any) error {
	return json.Unmarshal(r.Body, v)
}

// Content returns the body with its "content" envelope removed, see
// [models.Normalize].
func (r *Response) Content() json.RawMessage {
	return models.Normalize(r.Body)
}

// DecodeContent decodes the normalized body into v.
func (r *Response) DecodeContent(v any) error {
	return models.DecodeContent(r.Body, v)
}
