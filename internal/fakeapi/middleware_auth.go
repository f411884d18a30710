package fakeapi

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-biz-admin/internal/app"
	"github.com/MKhiriev/go-biz-admin/internal/logger"
	"github.com/MKhiriev/go-biz-admin/internal/utils"
)

// auth rejects requests without a valid bearer token with 401 and stores
// the token's account in the request context.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Warn().Msg("request without Authorization header")
			utils.WriteError(w, app.MsgAuthorizationRequired, app.CodeUnauthorized, http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			utils.WriteError(w, app.MsgTokenIsExpiredOrInvalid, app.CodeUnauthorized, http.StatusUnauthorized)
			return
		}

		claims, err := utils.ValidateAndParseJWTToken(tokenString, h.cfg.TokenSignKey, TokenIssuer)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			utils.WriteError(w, app.MsgTokenIsExpiredOrInvalid, app.CodeUnauthorized, http.StatusUnauthorized)
			return
		}

		userID, _ := strconv.ParseInt(claims.Subject, 10, 64)
		user, err := h.store.User(userID)
		if err != nil {
			log.Err(err).Int64("user_id", userID).Msg("token subject does not exist")
			utils.WriteError(w, app.MsgTokenIsExpiredOrInvalid, app.CodeUnauthorized, http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUser(r.Context(), user)))
	})
}
