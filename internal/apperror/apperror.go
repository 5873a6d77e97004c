// Package apperror defines the client-facing error taxonomy shared by every
// resource and the mapping from gateway failures onto it.
package apperror

import (
	"errors"

	"github.com/smallbiznis/panorama/pkg/db"
)

type Category string

const (
	CategoryValidation        Category = "ValidationError"
	CategoryInvalidInput      Category = "InvalidInput"
	CategoryReference         Category = "ReferenceError"
	CategoryDuplicate         Category = "DuplicateError"
	CategoryType              Category = "TypeError"
	CategoryNotFound          Category = "NotFound"
	CategoryInvalidCredential Category = "InvalidCredential"
	CategoryConflict          Category = "Conflict"
	CategoryUnauthorized      Category = "Unauthorized"
	CategoryRateLimited       Category = "RateLimited"
	CategoryInternal          Category = "InternalError"
)

// Error is a categorized failure with a client-safe message. Err keeps the
// underlying diagnostic, if any.
type Error struct {
	Category Category
	Message  string
	Err      error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Diagnostic returns the wrapped cause's message, or "" when there is none.
func (e *Error) Diagnostic() string {
	if e == nil || e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

func New(category Category, message string) *Error {
	return &Error{Category: category, Message: message}
}

func Wrap(category Category, message string, err error) *Error {
	return &Error{Category: category, Message: message, Err: err}
}

func Validation(message string) *Error { return New(CategoryValidation, message) }
func NotFound(message string) *Error   { return New(CategoryNotFound, message) }
func Internal(message string, err error) *Error {
	return Wrap(CategoryInternal, message, err)
}

// As extracts the *Error from err's chain.
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) && appErr != nil {
		return appErr, true
	}
	return nil, false
}

// CategoryOf returns the category of err, treating unknown errors as internal.
func CategoryOf(err error) Category {
	if appErr, ok := As(err); ok {
		return appErr.Category
	}
	return CategoryInternal
}

func Is(err error, category Category) bool {
	return err != nil && CategoryOf(err) == category
}

// CategoryForKind is the single mapping from gateway failure kinds to the taxonomy.
func CategoryForKind(kind db.Kind) Category {
	switch kind {
	case db.KindUnique:
		return CategoryDuplicate
	case db.KindForeignKey:
		return CategoryReference
	case db.KindInvalidText:
		return CategoryType
	case db.KindCheck, db.KindNotNull:
		return CategoryValidation
	default:
		return CategoryInternal
	}
}

// Messages lets a resource phrase store failures in its own terms.
type Messages map[Category]string

var defaultMessages = Messages{
	CategoryDuplicate:  "Duplicate entry - a record with the same unique value already exists.",
	CategoryReference:  "Invalid reference - referenced record not found.",
	CategoryType:       "Invalid data type - please check your input fields.",
	CategoryValidation: "Invalid value - a constraint on the record was violated.",
	CategoryInternal:   "Unexpected server error.",
}

// FromStore converts a gateway failure into a categorized *Error. Errors that
// are already categorized pass through unchanged.
func FromStore(err error, messages Messages) error {
	if err == nil {
		return nil
	}
	if _, ok := As(err); ok {
		return err
	}

	category := CategoryForKind(db.Classify(err))
	message := messages[category]
	if message == "" {
		message = defaultMessages[category]
	}
	return Wrap(category, message, err)
}
