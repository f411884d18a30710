// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package guard gates client routes on authentication state.
//
// A route is a space-separated command path such as "roles list". Protected
// routes redirect to [LoginPath] when no token is held; guest-only routes
// redirect to [HomePath] when one is. Redirects are returned as
// [*RedirectError] and followed by [Router].
package guard

import (
	"context"
	"fmt"
)

// Well-known route paths.
const (
	LoginPath = "login"
	HomePath  = "whoami"
)

// Authenticator reports whether the user holds a token.
type Authenticator interface {
	IsAuthenticated() bool
}

// Handler runs a route with the arguments left after the route path.
type Handler func(ctx context.Context, args []string) error

// RedirectError asks the router to run the route To instead.
type RedirectError struct {
	From string
	To   string
}

func (e *RedirectError) Error() string {
	return fmt.Sprintf("redirect from %q to %q", e.From, e.To)
}

// Protected wraps h so that it only runs for an authenticated user.
// Otherwise it returns a redirect to [LoginPath].
func Protected(auth Authenticator, h Handler) Handler {
	return func(ctx context.Context, args []string) error {
		if !auth.IsAuthenticated() {
			return &RedirectError{From: RouteFromContext(ctx), To: LoginPath}
		}
		return h(ctx, args)
	}
}

// GuestOnly wraps h so that it only runs for an anonymous user.
// Otherwise it returns a redirect to [HomePath].
func GuestOnly(auth Authenticator, h Handler) Handler {
	return func(ctx context.Context, args []string) error {
		if auth.IsAuthenticated() {
			return &RedirectError{From: RouteFromContext(ctx), To: HomePath}
		}
		return h(ctx, args)
	}
}

type ctxKey string

const (
	routeCtxKey    ctxKey = "route"
	redirectCtxKey ctxKey = "redirected_from"
)

// RouteFromContext returns the path of the route being run.
func RouteFromContext(ctx context.Context) string {
	route, _ := ctx.Value(routeCtxKey).(string)
	return route
}

// RedirectedFrom returns the route that redirected to the current one, or ""
// when the current route was requested directly.
func RedirectedFrom(ctx context.Context) string {
	from, _ := ctx.Value(redirectCtxKey).(string)
	return from
}
