package employee

import (
	"context"
	"time"

	employeeerrors "go-ems/internal/employee/errors"
	"go-ems/internal/events"
	"go-ems/internal/messaging/kafka"
	"go-ems/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, actorID string, req EmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	Update(ctx context.Context, id string, req EmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo      Repository
	publisher *kafka.Publisher
	logger    *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	return NewServiceWithPublisher(repo, nil, logger...)
}

func NewServiceWithPublisher(repo Repository, publisher *kafka.Publisher, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{repo: repo, publisher: publisher, logger: l}
}

func (s *service) Create(ctx context.Context, actorID string, req EmployeeRequest) (EmployeeResponse, error) {
	logger := contextutil.GetLogger(ctx, s.logger)
	rid := contextutil.GetRequestID(ctx)
	logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("actor_id", actorID),
		zap.String("email", req.Email),
	)

	if err := req.Validate(); err != nil {
		logger.Warn("create employee validation failed",
			zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	createdBy, err := uuid.Parse(actorID)
	if err != nil {
		logger.Error("create employee bad actor id",
			zap.String("actor_id", actorID), zap.Error(err))
		return EmployeeResponse{}, err
	}

	now := time.Now()
	empl := &Employee{
		ID:            uuid.New(),
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		Phone:         req.Phone,
		Position:      req.Position,
		Department:    req.Department,
		Salary:        req.Salary,
		DateOfJoining: req.dateOfJoining(now),
		CreatedBy:     createdBy,
	}

	if err := s.repo.Create(ctx, empl); err != nil {
		logger.Warn("create employee persist failed",
			zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.publisher.PublishEmployeeLifecycle(ctx, events.EmployeeLifecycleEvent{
		EventType:  events.EmployeeCreated,
		RequestID:  rid,
		EmployeeID: empl.ID.String(),
		ActorID:    actorID,
		OccurredAt: time.Now().UTC(),
	})

	logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", empl.ID.String()),
	)

	return mapToResponse(*empl), nil
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	empls, err := s.repo.FindAll(ctx)
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("get all employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(empls), nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*empl), nil
}

func (s *service) Update(ctx context.Context, id string, req EmployeeRequest) (EmployeeResponse, error) {
	logger := contextutil.GetLogger(ctx, s.logger)
	rid := contextutil.GetRequestID(ctx)
	logger.Debug("update employee requested",
		zap.String("request_id", rid),
		zap.String("employee_id", id),
	)

	if err := req.Validate(); err != nil {
		logger.Warn("update employee validation failed",
			zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	// CreatedBy and CreatedAt are immutable; everything else follows input.
	empl.FirstName = req.FirstName
	empl.LastName = req.LastName
	empl.Email = req.Email
	empl.Phone = req.Phone
	empl.Position = req.Position
	empl.Department = req.Department
	empl.Salary = req.Salary
	empl.DateOfJoining = req.dateOfJoining(empl.DateOfJoining)

	if err := s.repo.Update(ctx, empl); err != nil {
		logger.Warn("update employee persist failed",
			zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.publisher.PublishEmployeeLifecycle(ctx, events.EmployeeLifecycleEvent{
		EventType:  events.EmployeeUpdated,
		RequestID:  rid,
		EmployeeID: empl.ID.String(),
		ActorID:    contextutil.GetUserID(ctx),
		OccurredAt: time.Now().UTC(),
	})

	logger.Info("update employee success", zap.String("employee_id", id))

	return mapToResponse(*empl), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	logger := contextutil.GetLogger(ctx, s.logger)
	rid := contextutil.GetRequestID(ctx)
	logger.Debug("delete employee requested",
		zap.String("request_id", rid),
		zap.String("employee_id", id),
	)

	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		logger.Error("delete employee failed", zap.Error(err))
		return mapRepositoryError(err)
	}
	if affected == 0 {
		// Repeat deletes report not-found, never a silent success.
		return employeeerrors.ErrEmployeeNotFound
	}

	s.publisher.PublishEmployeeLifecycle(ctx, events.EmployeeLifecycleEvent{
		EventType:  events.EmployeeDeleted,
		RequestID:  rid,
		EmployeeID: id,
		ActorID:    contextutil.GetUserID(ctx),
		OccurredAt: time.Now().UTC(),
	})

	logger.Info("delete employee success", zap.String("employee_id", id))
	return nil
}

func mapToResponse(empl Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:            empl.ID.String(),
		FirstName:     empl.FirstName,
		LastName:      empl.LastName,
		Email:         empl.Email,
		Phone:         empl.Phone,
		Position:      empl.Position,
		Department:    empl.Department,
		Salary:        empl.Salary,
		DateOfJoining: empl.DateOfJoining.Format(dateLayout),
		CreatedBy:     empl.CreatedBy.String(),
		CreatedAt:     empl.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:     empl.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func mapToListResponse(empls []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(empls))
	for i, e := range empls {
		res[i] = mapToResponse(e)
	}
	return res
}
