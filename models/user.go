package models

// User is the authenticated back-office account as returned by the API.
type User struct {
	ID    int64    `json:"id"`
	Email string   `json:"email"`
	Name  string   `json:"name,omitempty"`
	Roles []string `json:"roles,omitempty"`
}

// Credentials is the login request body.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Session is the payload of a successful login: the bearer token and the
// account it belongs to.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
