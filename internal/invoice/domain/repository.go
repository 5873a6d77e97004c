package domain

import (
	"context"

	"github.com/smallbiznis/panorama/pkg/db"
)

type Repository interface {
	ResolveProject(ctx context.Context, gw db.Gateway, projectID int64) (*ProjectLink, error)
	Insert(ctx context.Context, gw db.Gateway, invoice *Invoice) error
	List(ctx context.Context, gw db.Gateway) ([]InvoiceDetail, error)
	FindByID(ctx context.Context, gw db.Gateway, id int64) (*InvoiceDetail, error)
	Update(ctx context.Context, gw db.Gateway, invoice *Invoice) (bool, error)
	Delete(ctx context.Context, gw db.Gateway, id int64) (bool, error)
}
