package domain

import (
	"context"

	"github.com/smallbiznis/panorama/pkg/db"
)

type Repository interface {
	FindByEmail(ctx context.Context, gw db.Gateway, email string) (*Admin, error)
	Insert(ctx context.Context, gw db.Gateway, admin *Admin) error
}
