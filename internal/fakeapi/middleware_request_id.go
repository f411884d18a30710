package fakeapi

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-biz-admin/internal/logger"
)

const requestIDHeader = "X-Request-ID"

// withRequestID tags the request logger with the caller's X-Request-ID, or
// a fresh one, and echoes it in the response.
func (h *Handler) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		requestID := r.Header.Get(requestIDHeader)
		if requestID == "" {
			requestID = h.ids.Generate()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str(logger.RequestIDFieldName, requestID)
		})
		r = r.WithContext(l.WithContext(ctx))

		w.Header().Set(requestIDHeader, requestID)
		next.ServeHTTP(w, r)
	})
}
