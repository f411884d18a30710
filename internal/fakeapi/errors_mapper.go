package fakeapi

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-biz-admin/internal/app"
	"github.com/MKhiriev/go-biz-admin/internal/logger"
	"github.com/MKhiriev/go-biz-admin/internal/utils"
	"github.com/MKhiriev/go-biz-admin/internal/validators"
)

var validationErrors = []error{
	validators.ErrInvalidID,
	validators.ErrEmptyEmail,
	validators.ErrInvalidEmail,
	validators.ErrEmptyPassword,
	validators.ErrEmptyName,
	validators.ErrEmptyType,
	validators.ErrInvalidType,
	validators.ErrEmptyTitle,
	validators.ErrInvalidStatus,
	validators.ErrInvalidEmployeeID,
	validators.ErrInvalidAmount,
	validators.ErrInvalidCurrency,
}

// writeStoreError translates store and validation errors into error bodies.
// Validation messages are passed through so the client shows them as-is.
func writeStoreError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	for _, v := range validationErrors {
		if errors.Is(err, v) {
			log.Err(err).Msg("validation failed")
			utils.WriteError(w, err.Error(), app.CodeBadRequest, http.StatusBadRequest)
			return
		}
	}

	switch {
	case errors.Is(err, errNotFound):
		utils.WriteError(w, app.MsgNotFound, app.CodeNotFound, http.StatusNotFound)
	case errors.Is(err, errAlreadyExists):
		utils.WriteError(w, app.MsgAlreadyExists, app.CodeConflict, http.StatusConflict)
	case errors.Is(err, errBadCredential):
		utils.WriteError(w, app.MsgInvalidEmailPassword, app.CodeUnauthorized, http.StatusUnauthorized)
	default:
		log.Err(err).Msg("unexpected error")
		utils.WriteError(w, app.MsgInternalServerError, app.CodeInternalServer, http.StatusInternalServerError)
	}
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteError(w, app.MsgNotFound, app.CodeNotFound, http.StatusNotFound)
}
