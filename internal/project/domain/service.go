package domain

import (
	"context"

	"github.com/smallbiznis/panorama/internal/apperror"
)

// ProjectInput carries the writable project fields. Nil optionals take their
// defaults: zero amounts, active, and "days" billing.
type ProjectInput struct {
	Name          string
	ClientID      int64
	EmpID         int64
	BillingAmt    *float64
	Active        *bool
	BillingMethod *string
	OvertimeAmt   *float64
}

type Service interface {
	Create(ctx context.Context, req ProjectInput) (Project, error)
	List(ctx context.Context) ([]ProjectListItem, error)
	GetByID(ctx context.Context, id int64) (Project, error)
	Update(ctx context.Context, id int64, req ProjectInput) (Project, error)
	Delete(ctx context.Context, id int64) error
}

var (
	ErrInvalidID            = apperror.Validation("Invalid project ID provided.")
	ErrRequiredFields       = apperror.Validation("'name', 'client_id', and 'emp_id' are required.")
	ErrInvalidBillingMethod = apperror.Validation("Invalid 'billing_method'. Must be 'days', 'hours', or 'month'.")
	ErrNotFound             = apperror.NotFound("Project not found.")
)

var StoreMessages = apperror.Messages{
	apperror.CategoryReference:  "Invalid 'client_id' or 'emp_id' - referenced record not found.",
	apperror.CategoryDuplicate:  "Duplicate entry - a project with similar data already exists.",
	apperror.CategoryType:       "Invalid data type - please check your input fields.",
	apperror.CategoryValidation: "Invalid 'billing_method'. Must be 'days', 'hours', or 'month'.",
	apperror.CategoryInternal:   "Unexpected error while saving project.",
}

var DeleteMessages = apperror.Messages{
	apperror.CategoryReference: "Cannot delete - this project is referenced in another table (foreign key constraint).",
	apperror.CategoryInternal:  "Unexpected error while deleting project.",
}
