package auth

import (
	"github.com/smallbiznis/panorama/internal/auth/repository"
	"github.com/smallbiznis/panorama/internal/auth/service"
	"github.com/smallbiznis/panorama/internal/auth/token"
	"go.uber.org/fx"
)

var Module = fx.Module("auth.service",
	fx.Provide(repository.Provide),
	fx.Provide(token.NewManager),
	fx.Provide(service.New),
)
