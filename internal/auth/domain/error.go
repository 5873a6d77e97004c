package domain

import "github.com/smallbiznis/panorama/internal/apperror"

var (
	ErrCredentialsRequired = apperror.Validation("Email and password are required.")
	ErrPasswordTooLong     = apperror.Validation("Password must not exceed 72 bytes.")
	ErrInvalidLogin        = apperror.New(apperror.CategoryInvalidInput, "Invalid input / incorrect credentials")
	ErrAdminExists         = apperror.New(apperror.CategoryConflict, "Admin already exists")
	ErrAdminNotFound       = apperror.NotFound("Admin doesn't exist")
	ErrInvalidPassword     = apperror.New(apperror.CategoryInvalidCredential, "Invalid password")
	ErrInvalidToken        = apperror.New(apperror.CategoryUnauthorized, "Invalid or expired token")
)
