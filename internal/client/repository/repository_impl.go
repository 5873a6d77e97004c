package repository

import (
	"context"

	"github.com/smallbiznis/panorama/internal/client/domain"
	"github.com/smallbiznis/panorama/pkg/db"
)

const clientColumns = `id, name, address, state, gst_number, company_id, created_at, updated_at`

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, gw db.Gateway, client *domain.Client) error {
	_, err := gw.Query(ctx, client,
		`INSERT INTO clients (name, address, state, gst_number, company_id, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 RETURNING `+clientColumns,
		client.Name,
		client.Address,
		client.State,
		client.GSTNumber,
		client.CompanyID,
		client.CreatedAt,
		client.UpdatedAt,
	)
	return err
}

func (r *repo) List(ctx context.Context, gw db.Gateway) ([]domain.Client, error) {
	clients := make([]domain.Client, 0)
	if _, err := gw.Query(ctx, &clients, `SELECT `+clientColumns+` FROM clients ORDER BY id ASC`); err != nil {
		return nil, err
	}
	return clients, nil
}

func (r *repo) FindByID(ctx context.Context, gw db.Gateway, id int64) (*domain.ClientDetail, error) {
	var client domain.ClientDetail
	_, err := gw.Query(ctx, &client,
		`SELECT c.id, c.name, c.address, c.state, c.gst_number, c.company_id,
		        c.created_at, c.updated_at, co.name AS company_name
		 FROM clients c
		 LEFT JOIN companies co ON c.company_id = co.id
		 WHERE c.id = ?`,
		id,
	)
	if err != nil {
		return nil, err
	}
	if client.ID == 0 {
		return nil, nil
	}
	return &client, nil
}

// Update overwrites every writable column and reports whether the row existed.
// CreatedAt is refreshed from the stored row.
func (r *repo) Update(ctx context.Context, gw db.Gateway, client *domain.Client) (bool, error) {
	var updated domain.Client
	_, err := gw.Query(ctx, &updated,
		`UPDATE clients
		 SET name = ?, address = ?, state = ?, gst_number = ?, company_id = ?, updated_at = ?
		 WHERE id = ?
		 RETURNING `+clientColumns,
		client.Name,
		client.Address,
		client.State,
		client.GSTNumber,
		client.CompanyID,
		client.UpdatedAt,
		client.ID,
	)
	if err != nil {
		return false, err
	}
	if updated.ID == 0 {
		return false, nil
	}
	*client = updated
	return true, nil
}

func (r *repo) Delete(ctx context.Context, gw db.Gateway, id int64) (bool, error) {
	affected, err := gw.Exec(ctx, `DELETE FROM clients WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
