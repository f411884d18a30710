package fakeapi

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-biz-admin/internal/app"
	"github.com/MKhiriev/go-biz-admin/internal/logger"
	"github.com/MKhiriev/go-biz-admin/internal/utils"
)

const maxMultipartMemory = 10 << 20

var errUnsupportedMediaType = errors.New("unsupported media type")

func mediaType(r *http.Request) string {
	mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return ""
	}
	return mt
}

// decodeJSON reads a JSON body into v, answering 415 or 400 itself on
// failure. It reports whether the handler may continue.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	log := logger.FromRequest(r)

	if mediaType(r) != "application/json" {
		log.Warn().Str("content_type", r.Header.Get("Content-Type")).Err(errUnsupportedMediaType).Send()
		utils.WriteError(w, app.MsgUnsupportedMediaType, app.CodeUnsupported, http.StatusUnsupportedMediaType)
		return false
	}

	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidDataProvided, app.CodeBadRequest, http.StatusBadRequest)
		return false
	}
	return true
}

// pathID parses the {id} URL parameter, answering 404 itself when it is
// not a positive integer.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		utils.WriteError(w, app.MsgNotFound, app.CodeNotFound, http.StatusNotFound)
		return 0, false
	}
	return id, true
}
