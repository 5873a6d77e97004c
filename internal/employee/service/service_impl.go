package service

import (
	"context"
	"strings"

	"github.com/smallbiznis/panorama/internal/apperror"
	"github.com/smallbiznis/panorama/internal/employee/domain"
	"github.com/smallbiznis/panorama/internal/observability/metrics"
	"github.com/smallbiznis/panorama/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	DB      db.Gateway
	Log     *zap.Logger
	Repo    domain.Repository
	Metrics *metrics.Metrics `optional:"true"`
}

type Service struct {
	db      db.Gateway
	log     *zap.Logger
	repo    domain.Repository
	metrics *metrics.Metrics
}

func New(p Params) domain.Service {
	return &Service{
		db:      p.DB,
		log:     p.Log.Named("employee.service"),
		repo:    p.Repo,
		metrics: p.Metrics,
	}
}

func (s *Service) Create(ctx context.Context, req domain.EmployeeInput) (domain.Employee, error) {
	employee, err := buildEmployee(req)
	if err != nil {
		return domain.Employee{}, err
	}

	if err := s.repo.Insert(ctx, s.db, &employee); err != nil {
		return domain.Employee{}, apperror.FromStore(err, domain.StoreMessages)
	}

	s.metrics.RecordCreated(ctx, "employee")
	return employee, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Employee, error) {
	employees, err := s.repo.List(ctx, s.db)
	if err != nil {
		return nil, apperror.FromStore(err, apperror.Messages{
			apperror.CategoryInternal: "Failed to fetch employees.",
		})
	}
	return employees, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (domain.Employee, error) {
	if id <= 0 {
		return domain.Employee{}, domain.ErrInvalidID
	}

	employee, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Employee{}, apperror.FromStore(err, apperror.Messages{
			apperror.CategoryInternal: "Failed to fetch employee details.",
		})
	}
	if employee == nil {
		return domain.Employee{}, domain.ErrNotFound
	}
	return *employee, nil
}

func (s *Service) Update(ctx context.Context, id int64, req domain.EmployeeInput) (domain.Employee, error) {
	if id <= 0 {
		return domain.Employee{}, domain.ErrInvalidID
	}
	employee, err := buildEmployee(req)
	if err != nil {
		return domain.Employee{}, err
	}

	employee.ID = id
	found, err := s.repo.Update(ctx, s.db, &employee)
	if err != nil {
		return domain.Employee{}, apperror.FromStore(err, domain.StoreMessages)
	}
	if !found {
		return domain.Employee{}, domain.ErrNotFound
	}
	return employee, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.ErrInvalidID
	}

	found, err := s.repo.Delete(ctx, s.db, id)
	if err != nil {
		return apperror.FromStore(err, domain.DeleteMessages)
	}
	if !found {
		return domain.ErrNotFound
	}

	s.log.Info("employee deleted", zap.Int64("employee_id", id))
	s.metrics.RecordDeleted(ctx, "employee")
	return nil
}

func buildEmployee(req domain.EmployeeInput) (domain.Employee, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.Employee{}, domain.ErrNameRequired
	}
	return domain.Employee{
		Name:      name,
		Position:  blankToNil(req.Position),
		WorkingOn: blankToNil(req.WorkingOn),
		EmpCode:   req.EmpCode,
	}, nil
}

// blankToNil stores empty optional text as NULL.
func blankToNil(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
