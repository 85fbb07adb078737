package auth

import (
	"errors"
	"strings"

	autherrors "go-ems/internal/auth/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// mapCreateError translates a unique-email violation on the users table into
// the registration conflict. Anything else is an infrastructure failure and
// passes through unchanged so the boundary renders it as a 500.
func mapCreateError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return autherrors.ErrUserAlreadyExists
	}

	if strings.Contains(strings.ToLower(err.Error()), "duplicate key value") {
		return autherrors.ErrUserAlreadyExists
	}

	return err
}
