package credentials

import "errors"

var (
	// ErrUnknownBackend is returned by New for an unsupported backend type.
	ErrUnknownBackend = errors.New("unknown credentials backend")

	// ErrStorageClosed is returned when a closed backend is used.
	ErrStorageClosed = errors.New("credentials storage is closed")

	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a query against the credentials
	// table fails.
	ErrExecutingQuery = errors.New("error executing sql query")
)
