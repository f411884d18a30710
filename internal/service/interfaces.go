// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the typed consumers of the access layer. Every
// service decodes responses through [models.Normalize], so payloads nested
// in a "content" envelope and bare payloads are handled alike.
//
// Failed calls have already been reported to the user by the access layer;
// services only wrap the returned error.
package service

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/go-biz-admin/models"
)

// AuthService manages the session of the back-office user.
type AuthService interface {
	// Login exchanges credentials for a token, persists it and returns the
	// authenticated user. The token is taken from the response payload, or
	// from the Authorization response header when the payload has none.
	// Returns ErrEmptyCredentials before any call for blank input and
	// ErrNoToken when the server returned no token at all.
	Login(ctx context.Context, creds models.Credentials) (models.User, error)

	// Logout removes the persisted token.
	Logout() error

	// IsAuthenticated reports whether a token is persisted. It does not
	// check the token against the server or its expiry.
	IsAuthenticated() bool

	// Me returns the account the current token belongs to.
	Me(ctx context.Context) (models.User, error)

	// Claims returns the unverified claims of the persisted token, for
	// display only. Returns ErrNoToken when no token is persisted.
	Claims() (models.Claims, error)
}

// RoleService manages roles.
type RoleService interface {
	List(ctx context.Context) ([]models.Role, error)
	Get(ctx context.Context, id int64) (models.Role, error)
	Create(ctx context.Context, role models.Role) (models.Role, error)
	Update(ctx context.Context, role models.Role) (models.Role, error)
	Delete(ctx context.Context, id int64) error
}

// CoreEnumService manages core enumerations.
type CoreEnumService interface {
	// GetByType returns the values of one enumeration as the normalized
	// payload: the "content" of the response when present and not null,
	// otherwise the whole body.
	GetByType(ctx context.Context, enumType string) (json.RawMessage, error)

	// ListByType is GetByType decoded into typed values.
	ListByType(ctx context.Context, enumType string) ([]models.CoreEnum, error)

	List(ctx context.Context) ([]models.CoreEnum, error)
	Create(ctx context.Context, enum models.CoreEnum) (models.CoreEnum, error)
	Update(ctx context.Context, enum models.CoreEnum) (models.CoreEnum, error)
	Delete(ctx context.Context, id int64) error
}

// BlogService manages blog posts.
type BlogService interface {
	List(ctx context.Context, filter models.BlogFilter) ([]models.Blog, error)
	Get(ctx context.Context, id int64) (models.Blog, error)

	// Create sends blog as a multipart form when files are attached and as
	// JSON otherwise.
	Create(ctx context.Context, blog models.Blog, files ...models.FilePart) (models.Blog, error)

	// Update replaces the post identified by blog.ID, encoded like Create.
	Update(ctx context.Context, blog models.Blog, files ...models.FilePart) (models.Blog, error)

	Delete(ctx context.Context, id int64) error

	// Publish moves a post to the PUBLISHED status.
	Publish(ctx context.Context, id int64) (models.Blog, error)
}

// BonusService manages employee bonuses.
type BonusService interface {
	// List returns the bonuses of one employee, or all bonuses when
	// employeeID is zero.
	List(ctx context.Context, employeeID int64) ([]models.Bonus, error)
	Create(ctx context.Context, bonus models.Bonus) (models.Bonus, error)
	Update(ctx context.Context, bonus models.Bonus) (models.Bonus, error)
	Delete(ctx context.Context, id int64) error
}
