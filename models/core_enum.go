package models

// Well-known core enumeration types used across the admin UI.
const (
	EnumTypeGender     = "GENDER"
	EnumTypeBlogStatus = "BLOG_STATUS"
	EnumTypeBonusType  = "BONUS_TYPE"
	EnumTypeCurrency   = "CURRENCY"
)

// CoreEnum is a single value of a server-managed enumeration, e.g. one
// entry of the GENDER list.
type CoreEnum struct {
	// ID is the server-assigned identifier.
	ID int64 `json:"id"`

	// Type groups values into one enumeration (e.g. "GENDER").
	Type string `json:"type,omitempty"`

	// Name is the display label.
	Name string `json:"name"`

	// Code is an optional stable machine value.
	Code string `json:"code,omitempty"`

	// SortOrder controls presentation order inside one Type.
	SortOrder int `json:"sortOrder,omitempty"`

	// Active is false for retired values that must not be offered anymore.
	Active bool `json:"active,omitempty"`
}
