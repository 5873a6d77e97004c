package db

import (
	"context"

	"gorm.io/gorm"
)

// Gateway executes parameterized SQL. Every error it returns is a *Failure.
type Gateway interface {
	// Query runs a row-returning statement (SELECT or ... RETURNING) and scans
	// into dest. It reports how many rows were scanned.
	Query(ctx context.Context, dest any, query string, args ...any) (int64, error)
	// Exec runs a statement and reports the affected row count.
	Exec(ctx context.Context, query string, args ...any) (int64, error)
	// Transaction runs fn against a gateway bound to a single transaction.
	Transaction(ctx context.Context, fn func(tx Gateway) error) error
}

type gateway struct {
	conn *gorm.DB
}

func NewGateway(conn *gorm.DB) Gateway {
	return &gateway{conn: conn}
}

func (g *gateway) Query(ctx context.Context, dest any, query string, args ...any) (int64, error) {
	res := g.conn.WithContext(ctx).Raw(query, args...).Scan(dest)
	if res.Error != nil {
		return 0, newFailure(res.Error)
	}
	return res.RowsAffected, nil
}

func (g *gateway) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	res := g.conn.WithContext(ctx).Exec(query, args...)
	if res.Error != nil {
		return 0, newFailure(res.Error)
	}
	return res.RowsAffected, nil
}

func (g *gateway) Transaction(ctx context.Context, fn func(tx Gateway) error) error {
	var fnErr error
	err := g.conn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fnErr = fn(&gateway{conn: tx})
		return fnErr
	})
	if fnErr != nil {
		return fnErr
	}
	return newFailure(err)
}
