package domain

import (
	"context"
	"time"

	"github.com/smallbiznis/panorama/internal/auth/token"
)

type Service interface {
	Register(ctx context.Context, req RegisterRequest) (Admin, error)
	Authenticate(ctx context.Context, req LoginRequest) (LoginResult, error)
	VerifyToken(ctx context.Context, raw string) (*token.Claims, error)
}

type RegisterRequest struct {
	Email    string
	Password string
}

type LoginRequest struct {
	Email    string
	Password string
}

type LoginResult struct {
	Admin     Admin
	Token     string
	ExpiresAt time.Time
}
