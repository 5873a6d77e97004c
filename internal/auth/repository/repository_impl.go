package repository

import (
	"context"

	"github.com/smallbiznis/panorama/internal/auth/domain"
	"github.com/smallbiznis/panorama/pkg/db"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) FindByEmail(ctx context.Context, gw db.Gateway, email string) (*domain.Admin, error) {
	var admin domain.Admin
	_, err := gw.Query(ctx, &admin,
		`SELECT id, email, password, created_at, updated_at
		 FROM admins WHERE email = ?`,
		email,
	)
	if err != nil {
		return nil, err
	}
	if admin.ID == 0 {
		return nil, nil
	}
	return &admin, nil
}

func (r *repo) Insert(ctx context.Context, gw db.Gateway, admin *domain.Admin) error {
	_, err := gw.Query(ctx, admin,
		`INSERT INTO admins (email, password, created_at, updated_at)
		 VALUES (?, ?, ?, ?)
		 RETURNING id, email, password, created_at, updated_at`,
		admin.Email,
		admin.PasswordHash,
		admin.CreatedAt,
		admin.UpdatedAt,
	)
	return err
}
