package adapter

import "github.com/go-resty/resty/v2"

// RequestOption customizes a single call.
type RequestOption func(r *resty.Request)

// WithQuery adds query parameters. Empty values are skipped.
func WithQuery(params map[string]string) RequestOption {
	return func(r *resty.Request) {
		for k, v := range params {
			if v != "" {
				r.SetQueryParam(k, v)
			}
		}
	}
}

// WithHeader sets an extra request header. Authorization and Content-Type
// are owned by the access layer and overwritten before sending.
func WithHeader(key, value string) RequestOption {
	return func(r *resty.Request) {
		r.SetHeader(key, value)
	}
}
