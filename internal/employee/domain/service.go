package domain

import (
	"context"

	"github.com/smallbiznis/panorama/internal/apperror"
)

type EmployeeInput struct {
	Name      string
	Position  *string
	WorkingOn *string
	EmpCode   *string
}

type Service interface {
	Create(ctx context.Context, req EmployeeInput) (Employee, error)
	List(ctx context.Context) ([]Employee, error)
	GetByID(ctx context.Context, id int64) (Employee, error)
	Update(ctx context.Context, id int64, req EmployeeInput) (Employee, error)
	Delete(ctx context.Context, id int64) error
}

var (
	ErrInvalidID    = apperror.Validation("Invalid employee ID provided.")
	ErrNameRequired = apperror.Validation("Name is required")
	ErrNotFound     = apperror.NotFound("Employee not found")
)

var StoreMessages = apperror.Messages{
	apperror.CategoryDuplicate:  "Duplicate entry - an employee with similar data already exists.",
	apperror.CategoryType:       "Invalid data type - please check your input fields.",
	apperror.CategoryValidation: "Invalid employee data - a required field is missing or out of range.",
	apperror.CategoryInternal:   "Unexpected error while saving employee.",
}

var DeleteMessages = apperror.Messages{
	apperror.CategoryReference: "Cannot delete - this employee is assigned to a project (foreign key constraint).",
	apperror.CategoryInternal:  "Unexpected error while deleting employee.",
}
