package service

import (
	"context"
	"strings"

	"github.com/smallbiznis/panorama/internal/apperror"
	"github.com/smallbiznis/panorama/internal/client/domain"
	"github.com/smallbiznis/panorama/internal/clock"
	"github.com/smallbiznis/panorama/internal/observability/metrics"
	"github.com/smallbiznis/panorama/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	DB      db.Gateway
	Log     *zap.Logger
	Clock   clock.Clock
	Repo    domain.Repository
	Metrics *metrics.Metrics `optional:"true"`
}

type Service struct {
	db      db.Gateway
	log     *zap.Logger
	clock   clock.Clock
	repo    domain.Repository
	metrics *metrics.Metrics
}

func New(p Params) domain.Service {
	return &Service{
		db:      p.DB,
		log:     p.Log.Named("client.service"),
		clock:   p.Clock,
		repo:    p.Repo,
		metrics: p.Metrics,
	}
}

func (s *Service) Create(ctx context.Context, req domain.ClientInput) (domain.Client, error) {
	client, err := s.buildClient(req)
	if err != nil {
		return domain.Client{}, err
	}

	now := s.clock.Now()
	client.CreatedAt = now
	client.UpdatedAt = now
	if err := s.repo.Insert(ctx, s.db, &client); err != nil {
		return domain.Client{}, apperror.FromStore(err, domain.StoreMessages)
	}

	s.metrics.RecordCreated(ctx, "client")
	return client, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Client, error) {
	clients, err := s.repo.List(ctx, s.db)
	if err != nil {
		return nil, apperror.FromStore(err, apperror.Messages{
			apperror.CategoryInternal: "Failed to fetch clients.",
		})
	}
	return clients, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (domain.ClientDetail, error) {
	if id <= 0 {
		return domain.ClientDetail{}, domain.ErrInvalidID
	}

	client, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.ClientDetail{}, apperror.FromStore(err, apperror.Messages{
			apperror.CategoryInternal: "Failed to fetch client details.",
		})
	}
	if client == nil {
		return domain.ClientDetail{}, domain.ErrNotFound
	}
	return *client, nil
}

func (s *Service) Update(ctx context.Context, id int64, req domain.ClientInput) (domain.Client, error) {
	if id <= 0 {
		return domain.Client{}, domain.ErrInvalidID
	}
	client, err := s.buildClient(req)
	if err != nil {
		return domain.Client{}, err
	}

	client.ID = id
	client.UpdatedAt = s.clock.Now()
	found, err := s.repo.Update(ctx, s.db, &client)
	if err != nil {
		return domain.Client{}, apperror.FromStore(err, domain.StoreMessages)
	}
	if !found {
		return domain.Client{}, domain.ErrNotFound
	}
	return client, nil
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

	s.log.Info("client deleted", zap.Int64("client_id", id))
	s.metrics.RecordDeleted(ctx, "client")
	return nil
}

func (s *Service) buildClient(req domain.ClientInput) (domain.Client, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.Client{}, domain.ErrNameRequired
	}
	if req.CompanyID == 0 {
		return domain.Client{}, domain.ErrCompanyRequired
	}

	return domain.Client{
		Name:      name,
		Address:   trimOptional(req.Address),
		State:     trimOptional(req.State),
		GSTNumber: trimOptional(req.GSTNumber),
		CompanyID: req.CompanyID,
	}, nil
}

func trimOptional(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	return &trimmed
}
