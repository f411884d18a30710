package validators

import (
	"context"
	"net/mail"
	"strings"

	"github.com/MKhiriev/go-biz-admin/models"
)

// Field names accepted by [AdminValidator.Validate] to scope validation.
const (
	FieldID         = "id"
	FieldEmail      = "email"
	FieldPassword   = "password"
	FieldName       = "name"
	FieldType       = "type"
	FieldTitle      = "title"
	FieldStatus     = "status"
	FieldEmployeeID = "employee_id"
	FieldAmount     = "amount"
	FieldCurrency   = "currency"
)

var allowedBlogStatuses = []string{
	models.BlogStatusDraft,
	models.BlogStatusPublished,
	models.BlogStatusArchived,
}

// AdminValidator validates the admin entities: Credentials, Role, CoreEnum,
// Blog and Bonus, by value or by pointer.
type AdminValidator struct{}

// NewAdminValidator returns an [AdminValidator] as a [Validator].
func NewAdminValidator() Validator {
	return &AdminValidator{}
}

// Validate dispatches on the dynamic type of obj. With no fields a default
// set suited for creation is checked; FieldID is only checked on request.
//
// Returns ErrUnsupportedType for any other type and ErrUnknownField for a
// field name that does not apply to the type.
func (v *AdminValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(value, fields...)
	case *models.Credentials:
		return v.validateCredentials(*value, fields...)

	case models.Role:
		return v.validateRole(value, fields...)
	case *models.Role:
		return v.validateRole(*value, fields...)

	case models.CoreEnum:
		return v.validateCoreEnum(value, fields...)
	case *models.CoreEnum:
		return v.validateCoreEnum(*value, fields...)

	case models.Blog:
		return v.validateBlog(value, fields...)
	case *models.Blog:
		return v.validateBlog(*value, fields...)

	case models.Bonus:
		return v.validateBonus(value, fields...)
	case *models.Bonus:
		return v.validateBonus(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *AdminValidator) validateCredentials(c models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			email := strings.TrimSpace(c.Email)
			if email == "" {
				return ErrEmptyEmail
			}
			if _, err := mail.ParseAddress(email); err != nil {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if c.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func (v *AdminValidator) validateRole(r models.Role, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if r.ID <= 0 {
				return ErrInvalidID
			}
		case FieldName:
			if strings.TrimSpace(r.Name) == "" {
				return ErrEmptyName
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func (v *AdminValidator) validateCoreEnum(e models.CoreEnum, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldType, FieldName}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if e.ID <= 0 {
				return ErrInvalidID
			}
		case FieldType:
			if err := validateEnumType(e.Type); err != nil {
				return err
			}
		case FieldName:
			if strings.TrimSpace(e.Name) == "" {
				return ErrEmptyName
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

// validateEnumType accepts upper snake case identifiers such as BLOG_STATUS.
func validateEnumType(t string) error {
	if t == "" {
		return ErrEmptyType
	}
	for _, r := range t {
		if (r < 'A' || r > 'Z') && (r < '0' || r > '9') && r != '_' {
			return ErrInvalidType
		}
	}
	return nil
}

// ValidateEnumType reports whether t can name a core enumeration.
func ValidateEnumType(t string) error {
	return validateEnumType(t)
}

// ValidateEnumPath reports whether t can be sent as a single path segment.
// The server decides which types exist.
func ValidateEnumPath(t string) error {
	if strings.TrimSpace(t) == "" {
		return ErrEmptyType
	}
	if strings.ContainsAny(t, "/\\") || t == "." || t == ".." {
		return ErrInvalidType
	}
	return nil
}

func (v *AdminValidator) validateBlog(b models.Blog, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldStatus}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if b.ID <= 0 {
				return ErrInvalidID
			}
		case FieldTitle:
			if strings.TrimSpace(b.Title) == "" {
				return ErrEmptyTitle
			}
		case FieldStatus:
			// empty status lets the server apply its default (DRAFT)
			if b.Status != "" && !isAllowedBlogStatus(b.Status) {
				return ErrInvalidStatus
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func isAllowedBlogStatus(status string) bool {
	for _, s := range allowedBlogStatuses {
		if status == s {
			return true
		}
	}
	return false
}

func (v *AdminValidator) validateBonus(b models.Bonus, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmployeeID, FieldAmount, FieldCurrency}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if b.ID <= 0 {
				return ErrInvalidID
			}
		case FieldEmployeeID:
			if b.EmployeeID <= 0 {
				return ErrInvalidEmployeeID
			}
		case FieldAmount:
			if b.Amount <= 0 {
				return ErrInvalidAmount
			}
		case FieldCurrency:
			if !isCurrencyCode(b.Currency) {
				return ErrInvalidCurrency
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func isCurrencyCode(c string) bool {
	if len(c) != 3 {
		return false
	}
	for _, r := range c {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
