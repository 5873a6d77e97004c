package service

import (
	"context"
	"strings"

	"github.com/smallbiznis/panorama/internal/apperror"
	"github.com/smallbiznis/panorama/internal/observability/metrics"
	"github.com/smallbiznis/panorama/internal/project/domain"
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
		log:     p.Log.Named("project.service"),
		repo:    p.Repo,
		metrics: p.Metrics,
	}
}

func (s *Service) Create(ctx context.Context, req domain.ProjectInput) (domain.Project, error) {
	project, err := buildProject(req)
	if err != nil {
		return domain.Project{}, err
	}

	if err := s.repo.Insert(ctx, s.db, &project); err != nil {
		return domain.Project{}, apperror.FromStore(err, domain.StoreMessages)
	}

	s.metrics.RecordCreated(ctx, "project")
	return project, nil
}

func (s *Service) List(ctx context.Context) ([]domain.ProjectListItem, error) {
	projects, err := s.repo.List(ctx, s.db)
	if err != nil {
		return nil, apperror.FromStore(err, apperror.Messages{
			apperror.CategoryInternal: "Failed to fetch projects.",
		})
	}
	return projects, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (domain.Project, error) {
	if id <= 0 {
		return domain.Project{}, domain.ErrInvalidID
	}

	project, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Project{}, apperror.FromStore(err, apperror.Messages{
			apperror.CategoryInternal: "Failed to fetch project details.",
		})
	}
	if project == nil {
		return domain.Project{}, domain.ErrNotFound
	}
	return *project, nil
}

func (s *Service) Update(ctx context.Context, id int64, req domain.ProjectInput) (domain.Project, error) {
	if id <= 0 {
		return domain.Project{}, domain.ErrInvalidID
	}
	project, err := buildProject(req)
	if err != nil {
		return domain.Project{}, err
	}

	project.ID = id
	found, err := s.repo.Update(ctx, s.db, &project)
	if err != nil {
		return domain.Project{}, apperror.FromStore(err, domain.StoreMessages)
	}
	if !found {
		return domain.Project{}, domain.ErrNotFound
	}
	return project, nil
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

	s.log.Info("project deleted", zap.Int64("project_id", id))
	s.metrics.RecordDeleted(ctx, "project")
	return nil
}

func buildProject(req domain.ProjectInput) (domain.Project, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" || req.ClientID == 0 || req.EmpID == 0 {
		return domain.Project{}, domain.ErrRequiredFields
	}

	method, err := parseBillingMethod(req.BillingMethod)
	if err != nil {
		return domain.Project{}, err
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	return domain.Project{
		Name:          name,
		ClientID:      req.ClientID,
		EmpID:         req.EmpID,
		BillingAmt:    valueOrZero(req.BillingAmt),
		Active:        active,
		BillingMethod: method,
		OvertimeAmt:   valueOrZero(req.OvertimeAmt),
	}, nil
}

// parseBillingMethod defaults an absent or blank method to "days" and rejects
// anything outside the supported set.
func parseBillingMethod(raw *string) (domain.BillingMethod, error) {
	if raw == nil {
		return domain.DefaultBillingMethod, nil
	}
	trimmed := strings.TrimSpace(*raw)
	if trimmed == "" {
		return domain.DefaultBillingMethod, nil
	}
	method := domain.BillingMethod(trimmed)
	if !method.Valid() {
		return "", domain.ErrInvalidBillingMethod
	}
	return method, nil
}

func valueOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
