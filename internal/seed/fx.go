package seed

import (
	"context"

	"github.com/smallbiznis/panorama/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Module must be registered after migration.Module so the companies table exists.
var Module = fx.Module("seed",
	fx.Invoke(func(conn *gorm.DB, cfg config.Config, log *zap.Logger) error {
		if !cfg.Bootstrap.EnsureDefaultCompany {
			return nil
		}
		id, err := EnsureDefaultCompany(context.Background(), conn, cfg.Bootstrap.DefaultCompanyName)
		if err != nil {
			return err
		}
		log.Info("default company ready", zap.Int64("company_id", id))
		return nil
	}),
)
