package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"go-ems/internal/shared/apperror"

	"github.com/stretchr/testify/assert"
)

func TestToHTTP_PassesAppErrorThrough(t *testing.T) {
	appErr := apperror.New(apperror.CodeNotFound, "Employee not found", http.StatusNotFound)

	got := apperror.ToHTTP(appErr)
	assert.Equal(t, appErr, got)
}

func TestToHTTP_UnwrapsWrappedAppError(t *testing.T) {
	appErr := apperror.New(apperror.CodeConflict, "email already exists", http.StatusBadRequest)
	wrapped := fmt.Errorf("creating employee: %w", appErr)

	got := apperror.ToHTTP(wrapped)
	assert.Equal(t, appErr, got)
}

func TestToHTTP_UnknownErrorBecomes500(t *testing.T) {
	got := apperror.ToHTTP(errors.New("connection reset"))

	assert.Equal(t, http.StatusInternalServerError, got.HTTPStatus)
	assert.Equal(t, apperror.CodeInternalError, got.Code)
	assert.Equal(t, "connection reset", got.Message)
}

func TestToHTTP_NilMessageFallback(t *testing.T) {
	got := apperror.ToHTTP(nil)
	assert.Equal(t, "Server Error", got.Message)
	assert.Equal(t, http.StatusInternalServerError, got.HTTPStatus)
}

func TestValidationFailed(t *testing.T) {
	err := apperror.ValidationFailed("First name is required")
	assert.Equal(t, http.StatusBadRequest, err.HTTPStatus)
	assert.EqualError(t, err, "First name is required")
}
