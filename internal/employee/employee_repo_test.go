package employee_test

import (
	"context"
	"testing"
	"time"

	"go-ems/internal/employee"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockRepo(t *testing.T) (employee.Repository, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{SkipDefaultTransaction: true})
	assert.NoError(t, err)

	return employee.NewRepository(gormDB), mock
}

func TestRepository_FindAll_NewestFirst(t *testing.T) {
	repo, mock := newMockRepo(t)

	newer := uuid.New()
	older := uuid.New()
	now := time.Now()

	mock.ExpectQuery(`SELECT \* FROM "employees" ORDER BY created_at DESC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "first_name", "email", "created_at"}).
			AddRow(newer.String(), "New", "new@x.co", now).
			AddRow(older.String(), "Old", "old@x.co", now.Add(-time.Hour)))

	empls, err := repo.FindAll(context.Background())

	assert.NoError(t, err)
	assert.Len(t, empls, 2)
	assert.Equal(t, newer, empls[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindByID_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	id := uuid.New().String()
	mock.ExpectQuery(`SELECT \* FROM "employees" WHERE id = \$1`).
		WithArgs(id, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindByID(context.Background(), id)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Delete_ReportsRowsAffected(t *testing.T) {
	repo, mock := newMockRepo(t)

	id := uuid.New().String()
	mock.ExpectExec(`DELETE FROM "employees" WHERE id = \$1`).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	affected, err := repo.Delete(context.Background(), id)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	// Second delete of the same id removes nothing.
	mock.ExpectExec(`DELETE FROM "employees" WHERE id = \$1`).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 0))

	affected, err = repo.Delete(context.Background(), id)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), affected)
	assert.NoError(t, mock.ExpectationsWereMet())
}
