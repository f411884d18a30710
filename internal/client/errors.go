package client

import "errors"

var (
	ErrUsage                = errors.New("invalid usage")
	ErrLoginRequired        = errors.New("not signed in: run login -email <email> -password <password>")
	ErrConfirmationRequired = errors.New("deletion needs confirmation: pass -yes")
	ErrCancelled            = errors.New("cancelled")
)
