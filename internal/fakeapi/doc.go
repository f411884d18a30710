// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package fakeapi is an in-memory implementation of the admin REST API.
//
// It serves the same routes, envelopes and error bodies as the real backend
// and is used for local development (cmd/fakeapi) and end-to-end tests of
// the access layer. State lives in memory and is lost on restart.
//
// Conventions:
//   - successful payloads are wrapped in {"content": ...}, except GET
//     /api/roles which returns a bare array;
//   - failures are {"error": {"message": ..., "code": ...}};
//   - JSON endpoints reject bodies that are not application/json with 415;
//   - every route except login and file downloads requires a bearer token.
package fakeapi
