package domain

import (
	"context"

	"github.com/smallbiznis/panorama/pkg/db"
)

type Repository interface {
	Insert(ctx context.Context, gw db.Gateway, client *Client) error
	List(ctx context.Context, gw db.Gateway) ([]Client, error)
	FindByID(ctx context.Context, gw db.Gateway, id int64) (*ClientDetail, error)
	Update(ctx context.Context, gw db.Gateway, client *Client) (bool, error)
	Delete(ctx context.Context, gw db.Gateway, id int64) (bool, error)
}
