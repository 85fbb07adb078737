package autherrors

import (
	"net/http"

	"go-ems/internal/shared/apperror"
)

var (
	ErrUserAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"User already exists",
		http.StatusBadRequest,
	)
	ErrMissingCredentials = apperror.New(
		apperror.CodeValidationFailed,
		"Please provide an email and password",
		http.StatusBadRequest,
	)
	// ErrInvalidCredentials is deliberately identical for "no such email"
	// and "wrong password".
	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid credentials",
		http.StatusUnauthorized,
	)
	ErrUserNotFound = apperror.New(
		apperror.CodeUnauthorized,
		"Not authorized to access this route",
		http.StatusUnauthorized,
	)
)
