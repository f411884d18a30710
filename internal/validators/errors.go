package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidID         = errors.New("invalid ID")
	ErrEmptyEmail        = errors.New("email is required")
	ErrInvalidEmail      = errors.New("invalid email")
	ErrEmptyPassword     = errors.New("password is required")
	ErrEmptyName         = errors.New("name is required")
	ErrEmptyType         = errors.New("type is required")
	ErrInvalidType       = errors.New("invalid type")
	ErrEmptyTitle        = errors.New("title is required")
	ErrInvalidStatus     = errors.New("invalid blog status")
	ErrInvalidEmployeeID = errors.New("invalid employee ID")
	ErrInvalidAmount     = errors.New("amount must be positive")
	ErrInvalidCurrency   = errors.New("currency must be a three-letter ISO 4217 code")
)
