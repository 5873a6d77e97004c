package domain

import (
	"context"

	"github.com/smallbiznis/panorama/internal/apperror"
)

// ClientInput carries the writable client fields. Update replaces every
// field, so omitted optionals are cleared.
type ClientInput struct {
	Name      string
	Address   *string
	State     *string
	GSTNumber *string
	CompanyID int64
}

type Service interface {
	Create(ctx context.Context, req ClientInput) (Client, error)
	List(ctx context.Context) ([]Client, error)
	GetByID(ctx context.Context, id int64) (ClientDetail, error)
	Update(ctx context.Context, id int64, req ClientInput) (Client, error)
	Delete(ctx context.Context, id int64) error
}

var (
	ErrInvalidID       = apperror.Validation("Invalid client ID provided.")
	ErrNameRequired    = apperror.Validation("'name' is required.")
	ErrCompanyRequired = apperror.Validation("company_id is required")
	ErrNotFound        = apperror.NotFound("Client not found")
)

// StoreMessages phrases store failures on client writes.
var StoreMessages = apperror.Messages{
	apperror.CategoryReference:  "Invalid 'company_id' - referenced record not found.",
	apperror.CategoryDuplicate:  "Duplicate entry - a client with similar data already exists.",
	apperror.CategoryType:       "Invalid data type - please check your input fields.",
	apperror.CategoryValidation: "Invalid client data - a required field is missing or out of range.",
	apperror.CategoryInternal:   "Unexpected error while saving client.",
}

var DeleteMessages = apperror.Messages{
	apperror.CategoryReference: "Cannot delete - this client is referenced in another table (foreign key constraint).",
	apperror.CategoryInternal:  "Unexpected error while deleting client.",
}
