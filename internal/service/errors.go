package service

import "errors"

var (
	ErrInvalidID        = errors.New("invalid id")
	ErrInvalidEnumType  = errors.New("invalid enumeration type")
	ErrInvalidRole      = errors.New("invalid role")
	ErrInvalidCoreEnum  = errors.New("invalid core enumeration value")
	ErrInvalidBlog      = errors.New("invalid blog post")
	ErrInvalidBonus     = errors.New("invalid bonus")
	ErrEmptyCredentials = errors.New("email and password are required")
	ErrNoToken          = errors.New("no token")

	ErrDecodingResponse = errors.New("error decoding response")
)
