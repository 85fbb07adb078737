package employeeerrors

import (
	"net/http"

	"go-ems/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	// Duplicate unique email. 400 rather than 409: the store-level duplicate
	// is reported the same way as a failed input check.
	ErrEmailAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"email already exists",
		http.StatusBadRequest,
	)
)
