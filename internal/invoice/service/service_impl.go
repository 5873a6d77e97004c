package service

import (
	"context"
	"strings"

	"github.com/smallbiznis/panorama/internal/apperror"
	"github.com/smallbiznis/panorama/internal/clock"
	"github.com/smallbiznis/panorama/internal/invoice/domain"
	"github.com/smallbiznis/panorama/internal/invoice/render"
	"github.com/smallbiznis/panorama/internal/observability/metrics"
	"github.com/smallbiznis/panorama/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	DB       db.Gateway
	Log      *zap.Logger
	Clock    clock.Clock
	Repo     domain.Repository
	Renderer render.Renderer
	Metrics  *metrics.Metrics `optional:"true"`
}

type Service struct {
	db       db.Gateway
	log      *zap.Logger
	clock    clock.Clock
	repo     domain.Repository
	renderer render.Renderer
	metrics  *metrics.Metrics
}

func New(p Params) domain.Service {
	return &Service{
		db:       p.DB,
		log:      p.Log.Named("invoice.service"),
		clock:    p.Clock,
		repo:     p.Repo,
		renderer: p.Renderer,
		metrics:  p.Metrics,
	}
}

// Create resolves the project's client, company and employee and stores the
// invoice in the same transaction.
func (s *Service) Create(ctx context.Context, req domain.InvoiceInput) (domain.CreatedInvoice, error) {
	invoice, err := s.buildInvoice(req)
	if err != nil {
		return domain.CreatedInvoice{}, err
	}

	var link *domain.ProjectLink
	err = s.db.Transaction(ctx, func(tx db.Gateway) error {
		resolved, err := s.repo.ResolveProject(ctx, tx, invoice.ProjectID)
		if err != nil {
			return err
		}
		if resolved == nil {
			return domain.ErrProjectNotFound
		}
		link = resolved
		return s.repo.Insert(ctx, tx, &invoice)
	})
	if err != nil {
		return domain.CreatedInvoice{}, apperror.FromStore(err, domain.StoreMessages)
	}

	s.log.Info("invoice created",
		zap.Int64("invoice_id", invoice.ID),
		zap.Int64("project_id", invoice.ProjectID),
	)
	s.metrics.RecordCreated(ctx, "invoice")
	return domain.CreatedInvoice{
		Invoice:   invoice,
		ClientID:  link.ClientID,
		CompanyID: link.CompanyID,
		EmpID:     link.EmpID,
	}, nil
}

func (s *Service) List(ctx context.Context) ([]domain.InvoiceDetail, error) {
	invoices, err := s.repo.List(ctx, s.db)
	if err != nil {
		return nil, apperror.FromStore(err, apperror.Messages{
			apperror.CategoryInternal: "Failed to fetch invoices.",
		})
	}
	return invoices, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (domain.InvoiceDetail, error) {
	if id <= 0 {
		return domain.InvoiceDetail{}, domain.ErrInvalidID
	}

	invoice, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.InvoiceDetail{}, apperror.FromStore(err, apperror.Messages{
			apperror.CategoryInternal: "Failed to fetch invoice details.",
		})
	}
	if invoice == nil {
		return domain.InvoiceDetail{}, domain.ErrNotFound
	}
	return *invoice, nil
}

func (s *Service) Update(ctx context.Context, id int64, req domain.InvoiceInput) (domain.Invoice, error) {
	if id <= 0 {
		return domain.Invoice{}, domain.ErrInvalidID
	}
	invoice, err := s.buildInvoice(req)
	if err != nil {
		return domain.Invoice{}, err
	}

	invoice.ID = id
	found, err := s.repo.Update(ctx, s.db, &invoice)
	if err != nil {
		return domain.Invoice{}, apperror.FromStore(err, domain.StoreMessages)
	}
	if !found {
		return domain.Invoice{}, domain.ErrNotFound
	}
	return invoice, nil
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

	s.log.Info("invoice deleted", zap.Int64("invoice_id", id))
	s.metrics.RecordDeleted(ctx, "invoice")
	return nil
}

func (s *Service) RenderPDF(ctx context.Context, id int64) (domain.RenderedInvoice, error) {
	invoice, err := s.GetByID(ctx, id)
	if err != nil {
		return domain.RenderedInvoice{}, err
	}

	content, err := s.renderer.Render(ctx, invoice)
	if err != nil {
		s.log.Error("failed to render invoice", zap.Int64("invoice_id", id), zap.Error(err))
		return domain.RenderedInvoice{}, apperror.Internal("Failed to render invoice.", err)
	}

	s.metrics.RecordInvoiceRendered(ctx)
	return domain.RenderedInvoice{
		FileName:    render.FileName(invoice.Invoice),
		ContentType: render.ContentTypePDF,
		Content:     content,
	}, nil
}

func (s *Service) buildInvoice(req domain.InvoiceInput) (domain.Invoice, error) {
	invoiceNo := strings.TrimSpace(req.InvoiceNo)
	if invoiceNo == "" || req.ProjectID == 0 {
		return domain.Invoice{}, domain.ErrRequiredFields
	}

	issueDate := s.clock.Now()
	if req.IssueDate != nil && !req.IssueDate.IsZero() {
		issueDate = req.IssueDate.UTC()
	}

	return domain.Invoice{
		InvoiceNo:    invoiceNo,
		ProjectID:    req.ProjectID,
		IssueDate:    issueDate,
		TotalAmount:  valueOrZero(req.TotalAmount),
		Days:         valueOrZero(req.Days),
		PaidLeaves:   valueOrZero(req.PaidLeaves),
		UnpaidLeaves: valueOrZero(req.UnpaidLeaves),
		OverTime:     valueOrZero(req.OverTime),
	}, nil
}

func valueOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
