package service

import (
	"context"
	"net/mail"
	"strings"

	"github.com/smallbiznis/panorama/internal/apperror"
	"github.com/smallbiznis/panorama/internal/auth/domain"
	"github.com/smallbiznis/panorama/internal/auth/password"
	"github.com/smallbiznis/panorama/internal/auth/token"
	"github.com/smallbiznis/panorama/internal/clock"
	"github.com/smallbiznis/panorama/internal/observability/metrics"
	"github.com/smallbiznis/panorama/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	minPasswordLength = 6
	// bcrypt ignores input past 72 bytes and x/crypto rejects it outright.
	maxPasswordBytes = 72
)

type Params struct {
	fx.In

	DB      db.Gateway
	Log     *zap.Logger
	Clock   clock.Clock
	Repo    domain.Repository
	Tokens  *token.Manager
	Metrics *metrics.Metrics `optional:"true"`
}

type Service struct {
	db      db.Gateway
	log     *zap.Logger
	clock   clock.Clock
	repo    domain.Repository
	tokens  *token.Manager
	metrics *metrics.Metrics
}

func New(p Params) domain.Service {
	return &Service{
		db:      p.DB,
		log:     p.Log.Named("auth.service"),
		clock:   p.Clock,
		repo:    p.Repo,
		tokens:  p.Tokens,
		metrics: p.Metrics,
	}
}

func (s *Service) Register(ctx context.Context, req domain.RegisterRequest) (domain.Admin, error) {
	email := strings.TrimSpace(req.Email)
	if email == "" || req.Password == "" {
		return domain.Admin{}, domain.ErrCredentialsRequired
	}
	if len(req.Password) > maxPasswordBytes {
		return domain.Admin{}, domain.ErrPasswordTooLong
	}

	existing, err := s.repo.FindByEmail(ctx, s.db, email)
	if err != nil {
		return domain.Admin{}, apperror.FromStore(err, nil)
	}
	if existing != nil {
		return domain.Admin{}, domain.ErrAdminExists
	}

	hashed, err := password.Hash(req.Password)
	if err != nil {
		return domain.Admin{}, apperror.Internal("Error while creating admin", err)
	}

	now := s.clock.Now()
	admin := domain.Admin{
		Email:        email,
		PasswordHash: hashed,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.Insert(ctx, s.db, &admin); err != nil {
		// a concurrent signup for the same email lost the race
		if db.IsDuplicateKeyErr(err) {
			return domain.Admin{}, domain.ErrAdminExists
		}
		return domain.Admin{}, apperror.FromStore(err, apperror.Messages{
			apperror.CategoryInternal: "Error while creating admin",
		})
	}

	s.log.Info("admin registered", zap.Int64("admin_id", admin.ID))
	return admin, nil
}

func (s *Service) Authenticate(ctx context.Context, req domain.LoginRequest) (domain.LoginResult, error) {
	email, ok := normalizeEmail(req.Email)
	if !ok || len(req.Password) < minPasswordLength {
		s.metrics.RecordLogin(ctx, "invalid_input")
		return domain.LoginResult{}, domain.ErrInvalidLogin
	}

	admin, err := s.repo.FindByEmail(ctx, s.db, email)
	if err != nil {
		return domain.LoginResult{}, apperror.FromStore(err, apperror.Messages{
			apperror.CategoryInternal: "Error while logging in",
		})
	}
	if admin == nil {
		s.metrics.RecordLogin(ctx, "unknown_admin")
		return domain.LoginResult{}, domain.ErrAdminNotFound
	}

	if !password.Verify(req.Password, admin.PasswordHash) {
		s.metrics.RecordLogin(ctx, "invalid_password")
		s.log.Info("login rejected", zap.Int64("admin_id", admin.ID))
		return domain.LoginResult{}, domain.ErrInvalidPassword
	}

	raw, expiresAt, err := s.tokens.Issue(admin.ID)
	if err != nil {
		return domain.LoginResult{}, apperror.Internal("Error while logging in", err)
	}

	s.metrics.RecordLogin(ctx, "success")
	return domain.LoginResult{
		Admin:     *admin,
		Token:     raw,
		ExpiresAt: expiresAt,
	}, nil
}

func (s *Service) VerifyToken(ctx context.Context, raw string) (*token.Claims, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, domain.ErrInvalidToken
	}
	claims, err := s.tokens.Verify(raw)
	if err != nil {
		s.log.Debug("token rejected", zap.Error(err))
		return nil, apperror.Wrap(apperror.CategoryUnauthorized, domain.ErrInvalidToken.Message, err)
	}
	return claims, nil
}

// normalizeEmail trims surrounding space and accepts a bare address with a
// dotted domain. Case is preserved since admin emails are case-sensitive.
func normalizeEmail(raw string) (string, bool) {
	email := strings.TrimSpace(raw)
	if email == "" {
		return "", false
	}
	parsed, err := mail.ParseAddress(email)
	if err != nil || parsed.Address != email {
		return "", false
	}
	at := strings.LastIndex(email, "@")
	domainPart := email[at+1:]
	if !strings.Contains(domainPart, ".") || strings.HasSuffix(domainPart, ".") {
		return "", false
	}
	return email, true
}
