package employee_test

import (
	"context"
	"testing"
	"time"

	"go-ems/internal/employee"
	employeeerrors "go-ems/internal/employee/errors"
	employeeMock "go-ems/internal/employee/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func TestService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := employeeMock.NewMockRepository(ctrl)
	service := employee.NewService(mockRepo)
	ctx := context.Background()

	t.Run("success forces createdBy to the caller", func(t *testing.T) {
		actorID := uuid.New()
		salary := 5_000_000.0
		req := employee.EmployeeRequest{
			FirstName:  "Ann",
			LastName:   "Lee",
			Email:      "ann@x.co",
			Position:   "Eng",
			Department: "R&D",
			Salary:     &salary,
		}

		mockRepo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, e *employee.Employee) error {
				assert.Equal(t, actorID, e.CreatedBy)
				assert.Equal(t, "ann@x.co", e.Email)
				assert.False(t, e.DateOfJoining.IsZero()) // defaults to now
				return nil
			})

		resp, err := service.Create(ctx, actorID.String(), req)

		assert.NoError(t, err)
		assert.Equal(t, "Ann", resp.FirstName)
		assert.Equal(t, "Lee", resp.LastName)
		assert.Equal(t, actorID.String(), resp.CreatedBy)
		if assert.NotNil(t, resp.Salary) {
			assert.Equal(t, 5_000_000.0, *resp.Salary)
		}
	})

	t.Run("validation failure short-circuits before the store", func(t *testing.T) {
		req := employee.EmployeeRequest{
			FirstName:  "",
			LastName:   "Smith",
			Email:      "bad",
			Position:   "Eng",
			Department: "R&D",
		}

		_, err := service.Create(ctx, uuid.New().String(), req)
		assert.EqualError(t, err, "First name is required")
	})

	t.Run("duplicate email maps to conflict", func(t *testing.T) {
		req := employee.EmployeeRequest{
			FirstName:  "Ann",
			LastName:   "Lee",
			Email:      "ann@x.co",
			Position:   "Eng",
			Department: "R&D",
		}

		mockRepo.EXPECT().
			Create(ctx, gomock.Any()).
			Return(&mockPgError{code: "23505"})

		_, err := service.Create(ctx, uuid.New().String(), req)
		assert.Equal(t, employeeerrors.ErrEmailAlreadyExists, err)
	})

	t.Run("explicit joining date is kept", func(t *testing.T) {
		req := employee.EmployeeRequest{
			FirstName:     "Ann",
			LastName:      "Lee",
			Email:         "ann2@x.co",
			Position:      "Eng",
			Department:    "R&D",
			DateOfJoining: "2020-03-15",
		}

		mockRepo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, e *employee.Employee) error {
				assert.Equal(t, "2020-03-15", e.DateOfJoining.Format("2006-01-02"))
				return nil
			})

		resp, err := service.Create(ctx, uuid.New().String(), req)
		assert.NoError(t, err)
		assert.Equal(t, "2020-03-15", resp.DateOfJoining)
	})
}

func TestService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := employeeMock.NewMockRepository(ctrl)
	service := employee.NewService(mockRepo)
	ctx := context.Background()

	now := time.Now()
	mockRepo.EXPECT().
		FindAll(ctx).
		Return([]employee.Employee{
			{ID: uuid.New(), FirstName: "New", Email: "new@x.co", CreatedAt: now},
			{ID: uuid.New(), FirstName: "Old", Email: "old@x.co", CreatedAt: now.Add(-time.Hour)},
		}, nil)

	resp, err := service.GetAll(ctx)
	assert.NoError(t, err)
	assert.Len(t, resp, 2)
	assert.Equal(t, "New", resp[0].FirstName) // repo order preserved
}

func TestService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := employeeMock.NewMockRepository(ctrl)
	service := employee.NewService(mockRepo)
	ctx := context.Background()

	t.Run("createdBy survives an update", func(t *testing.T) {
		id := uuid.New()
		creator := uuid.New()
		existing := &employee.Employee{
			ID:            id,
			FirstName:     "Ann",
			LastName:      "Lee",
			Email:         "ann@x.co",
			Position:      "Eng",
			Department:    "R&D",
			DateOfJoining: time.Date(2020, 3, 15, 0, 0, 0, 0, time.UTC),
			CreatedBy:     creator,
		}

		mockRepo.EXPECT().FindByID(ctx, id.String()).Return(existing, nil)
		mockRepo.EXPECT().
			Update(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, e *employee.Employee) error {
				assert.Equal(t, creator, e.CreatedBy)
				assert.Equal(t, "Senior Eng", e.Position)
				return nil
			})

		req := employee.EmployeeRequest{
			FirstName:  "Ann",
			LastName:   "Lee",
			Email:      "ann@x.co",
			Position:   "Senior Eng",
			Department: "R&D",
		}

		resp, err := service.Update(ctx, id.String(), req)
		assert.NoError(t, err)
		assert.Equal(t, creator.String(), resp.CreatedBy)
	})

	t.Run("unknown id", func(t *testing.T) {
		id := uuid.New().String()
		mockRepo.EXPECT().FindByID(ctx, id).Return(nil, gorm.ErrRecordNotFound)

		req := employee.EmployeeRequest{
			FirstName:  "Ann",
			LastName:   "Lee",
			Email:      "ann@x.co",
			Position:   "Eng",
			Department: "R&D",
		}

		_, err := service.Update(ctx, id, req)
		assert.Equal(t, employeeerrors.ErrEmployeeNotFound, err)
	})
}

func TestService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := employeeMock.NewMockRepository(ctrl)
	service := employee.NewService(mockRepo)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		id := uuid.New().String()
		mockRepo.EXPECT().Delete(ctx, id).Return(int64(1), nil)

		assert.NoError(t, service.Delete(ctx, id))
	})

	t.Run("second delete of the same id is not found", func(t *testing.T) {
		id := uuid.New().String()
		mockRepo.EXPECT().Delete(ctx, id).Return(int64(0), nil)

		err := service.Delete(ctx, id)
		assert.Equal(t, employeeerrors.ErrEmployeeNotFound, err)
	})
}

// mockPgError mimics a pgconn duplicate-key error without a live database.
type mockPgError struct {
	code string
}

func (e *mockPgError) Error() string {
	return "ERROR: duplicate key value violates unique constraint \"uq_employee_email\" (SQLSTATE " + e.code + ")"
}
