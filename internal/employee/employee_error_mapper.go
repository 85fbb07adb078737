package employee

import (
	"errors"
	"strings"

	employeeerrors "go-ems/internal/employee/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// mapRepositoryError folds store-level failures into the error taxonomy so
// nothing Postgres-specific reaches the boundary. A malformed uuid in the id
// position surfaces from Postgres as 22P02 and is treated as not-found, the
// same as an id that simply does not exist.
func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return employeeerrors.ErrEmailAlreadyExists
		case "22P02":
			return employeeerrors.ErrEmployeeNotFound
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") {
		return employeeerrors.ErrEmailAlreadyExists
	}
	if strings.Contains(errMsg, "invalid input syntax for type uuid") {
		return employeeerrors.ErrEmployeeNotFound
	}

	return err
}
