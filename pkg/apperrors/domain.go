package apperrors

import "net/http"

// Factories for errors tied to repository outcomes.

// ErrNotFound converts a repository miss (gorm.ErrRecordNotFound or a zero
// RowsAffected update) into a 404.
func ErrNotFound(err error, domain string) *AppError {
	return Wrap(err, CodeNotFound, domain, "Resource not found", http.StatusNotFound)
}

func ErrAlreadyExists(err error, domain string) *AppError {
	return Wrap(err, CodeAlreadyExists, domain, "Resource already exists", http.StatusConflict)
}

func ErrDatabase(err error, domain string) *AppError {
	return Wrap(err, CodeDatabaseError, domain, "Database operation failed", http.StatusInternalServerError)
}

// Static auth errors shared by the session service and middleware.

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid username or password",
	http.StatusUnauthorized,
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid session token",
	http.StatusUnauthorized,
)

var ErrTokenExpired = New(
	CodeTokenExpired,
	"auth",
	"Session has expired",
	http.StatusUnauthorized,
)

var ErrSessionRevoked = New(
	CodeSessionRevoked,
	"auth",
	"Session has been revoked",
	http.StatusUnauthorized,
)

// Upload errors

var ErrFileTooLarge = New(
	CodeFileTooLarge,
	"upload",
	"File exceeds the maximum allowed size",
	http.StatusBadRequest,
)

var ErrInvalidFileType = New(
	CodeInvalidFileType,
	"upload",
	"File type is not allowed",
	http.StatusBadRequest,
)
