package domain

import (
	"context"

	"github.com/smallbiznis/panorama/pkg/db"
)

type Repository interface {
	Insert(ctx context.Context, gw db.Gateway, employee *Employee) error
	List(ctx context.Context, gw db.Gateway) ([]Employee, error)
	FindByID(ctx context.Context, gw db.Gateway, id int64) (*Employee, error)
	Update(ctx context.Context, gw db.Gateway, employee *Employee) (bool, error)
	Delete(ctx context.Context, gw db.Gateway, id int64) (bool, error)
}
