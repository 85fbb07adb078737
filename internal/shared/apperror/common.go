package apperror

import "net/http"

var (
	ErrUnauthorized = New(
		CodeUnauthorized,
		"Not authorized to access this route",
		http.StatusUnauthorized,
	)

	ErrInternal = New(
		CodeInternalError,
		"Server Error",
		http.StatusInternalServerError,
	)
)

// ValidationFailed reports the first violated rule of an input. Callers are
// expected to short-circuit: one message per response, never an aggregate.
func ValidationFailed(message string) *AppError {
	return New(CodeValidationFailed, message, http.StatusBadRequest)
}
