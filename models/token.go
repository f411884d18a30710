package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the set of registered JWT claims read from the stored bearer
// token. The token is parsed without signature verification, so Claims is
// informational only: it is shown to the user and never used to decide
// whether the token is still valid.
type Claims struct {
	jwt.RegisteredClaims

	// Email is the optional "email" private claim.
	Email string `json:"email,omitempty"`

	// Roles is the optional "roles" private claim.
	Roles []string `json:"roles,omitempty"`
}

// ExpiresAtTime returns the "exp" claim or the zero time when absent.
func (c Claims) ExpiresAtTime() time.Time {
	if c.ExpiresAt == nil {
		return time.Time{}
	}
	return c.ExpiresAt.Time
}
