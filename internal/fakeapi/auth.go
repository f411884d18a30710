package fakeapi

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-biz-admin/internal/app"
	"github.com/MKhiriev/go-biz-admin/internal/logger"
	"github.com/MKhiriev/go-biz-admin/internal/utils"
	"github.com/MKhiriev/go-biz-admin/models"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.Credentials
	if !decodeJSON(w, r, &creds) {
		return
	}

	if err := h.validator.Validate(ctx, creds); err != nil {
		writeStoreError(w, r, err)
		return
	}

	user, err := h.store.Authenticate(creds.Email, creds.Password)
	if err != nil {
		log.Err(err).Str("email", creds.Email).Msg("login failed")
		writeStoreError(w, r, err)
		return
	}

	token, err := utils.GenerateJWTToken(TokenIssuer, user, h.cfg.TokenDuration, h.cfg.TokenSignKey)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteError(w, app.MsgInternalServerError, app.CodeInternalServer, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token))
	utils.WriteContent(w, models.Session{Token: token, User: user}, http.StatusOK)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		utils.WriteError(w, app.MsgAuthorizationRequired, app.CodeUnauthorized, http.StatusUnauthorized)
		return
	}
	utils.WriteContent(w, user, http.StatusOK)
}
