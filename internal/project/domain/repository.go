package domain

import (
	"context"

	"github.com/smallbiznis/panorama/pkg/db"
)

type Repository interface {
	Insert(ctx context.Context, gw db.Gateway, project *Project) error
	List(ctx context.Context, gw db.Gateway) ([]ProjectListItem, error)
	FindByID(ctx context.Context, gw db.Gateway, id int64) (*Project, error)
	Update(ctx context.Context, gw db.Gateway, project *Project) (bool, error)
	Delete(ctx context.Context, gw db.Gateway, id int64) (bool, error)
}
