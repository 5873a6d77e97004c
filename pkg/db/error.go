package db

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Kind classifies a failed statement independently of the store's code scheme.
type Kind string

const (
	KindUnknown     Kind = "unknown"
	KindUnique      Kind = "unique"
	KindForeignKey  Kind = "foreign_key"
	KindInvalidText Kind = "invalid_text"
	KindCheck       Kind = "check"
	KindNotNull     Kind = "not_null"
)

// Failure is the error variant returned by the Gateway for any failed statement.
type Failure struct {
	Kind Kind
	Err  error
}

func (f *Failure) Error() string {
	if f == nil || f.Err == nil {
		return "database failure"
	}
	return f.Err.Error()
}

func (f *Failure) Unwrap() error {
	return f.Err
}

func newFailure(err error) error {
	if err == nil {
		return nil
	}
	var existing *Failure
	if errors.As(err, &existing) {
		return err
	}
	return &Failure{Kind: Classify(err), Err: err}
}

var pgCodeKinds = map[string]Kind{
	"23505": KindUnique,
	"23503": KindForeignKey,
	"23514": KindCheck,
	"23502": KindNotNull,
	"22P02": KindInvalidText,
	"22007": KindInvalidText,
	"22008": KindInvalidText,
	"22003": KindInvalidText,
}

// Classify maps a driver error onto a Kind.
func Classify(err error) Kind {
	if err == nil {
		return ""
	}

	var failure *Failure
	if errors.As(err, &failure) {
		return failure.Kind
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if kind, ok := pgCodeKinds[pgErr.Code]; ok {
			return kind
		}
		return KindUnknown
	}

	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return KindUnique
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return KindForeignKey
	case errors.Is(err, gorm.ErrCheckConstraintViolated):
		return KindCheck
	}

	msg := err.Error()
	switch {
	// PostgreSQL text (23505) / SQLite (2067)
	case strings.Contains(msg, "duplicate key value violates unique constraint"),
		strings.Contains(msg, "UNIQUE constraint failed"):
		return KindUnique
	case strings.Contains(msg, "violates foreign key constraint"),
		strings.Contains(msg, "FOREIGN KEY constraint failed"):
		return KindForeignKey
	case strings.Contains(msg, "violates check constraint"),
		strings.Contains(msg, "CHECK constraint failed"):
		return KindCheck
	case strings.Contains(msg, "violates not-null constraint"),
		strings.Contains(msg, "NOT NULL constraint failed"):
		return KindNotNull
	case strings.Contains(msg, "invalid input syntax"):
		return KindInvalidText
	}

	return KindUnknown
}

func IsDuplicateKeyErr(err error) bool {
	return Classify(err) == KindUnique
}
