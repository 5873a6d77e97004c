package domain

import (
	"context"
	"time"

	"github.com/smallbiznis/panorama/internal/apperror"
)

// InvoiceInput carries the writable invoice fields. A nil IssueDate means
// now; nil amounts are stored as zero.
type InvoiceInput struct {
	InvoiceNo    string
	ProjectID    int64
	IssueDate    *time.Time
	TotalAmount  *float64
	Days         *float64
	PaidLeaves   *float64
	UnpaidLeaves *float64
	OverTime     *float64
}

type Service interface {
	Create(ctx context.Context, req InvoiceInput) (CreatedInvoice, error)
	List(ctx context.Context) ([]InvoiceDetail, error)
	GetByID(ctx context.Context, id int64) (InvoiceDetail, error)
	Update(ctx context.Context, id int64, req InvoiceInput) (Invoice, error)
	Delete(ctx context.Context, id int64) error
	RenderPDF(ctx context.Context, id int64) (RenderedInvoice, error)
}

var (
	ErrInvalidID       = apperror.Validation("Invalid invoice ID provided.")
	ErrRequiredFields  = apperror.Validation("Invoice No and Project ID are required.")
	ErrProjectNotFound = apperror.NotFound("Project does not exist.")
	ErrNotFound        = apperror.NotFound("Invoice not found.")
)

var StoreMessages = apperror.Messages{
	apperror.CategoryDuplicate: "Duplicate invoice_no - must be unique.",
	apperror.CategoryReference: "Invalid project_id - referenced record not found.",
	apperror.CategoryType:      "Invalid data type - please check your input fields.",
	apperror.CategoryInternal:  "Unexpected server error while saving invoice.",
}

var DeleteMessages = apperror.Messages{
	apperror.CategoryReference: "Cannot delete - this invoice is referenced in another table (foreign key constraint).",
	apperror.CategoryInternal:  "Unexpected error while deleting invoice.",
}
