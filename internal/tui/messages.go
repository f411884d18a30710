package tui

import "github.com/MKhiriev/go-biz-admin/models"

// LoginResult is produced by the login command once the call finished.
type LoginResult struct {
	User models.User
	Err  error
}
