package fakeapi

import "errors"

var (
	errNotFound      = errors.New("not found")
	errAlreadyExists = errors.New("already exists")
	errBadCredential = errors.New("invalid email or password")
)
