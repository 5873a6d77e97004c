package db

import (
	"fmt"

	"github.com/smallbiznis/panorama/internal/config"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func Dialect(cfg config.Config) (gorm.Dialector, error) {
	switch cfg.DBType {
	case "postgres":
		return postgres.Open(PostgresDSN(cfg)), nil
	case "sqlite":
		return sqlite.Open(fmt.Sprintf("file:%s?_foreign_keys=on", cfg.SQLitePath)), nil
	default:
		return nil, fmt.Errorf("unsupported %s type", cfg.DBType)
	}
}

// PostgresDSN builds the keyword/value connection string. Hosted providers
// terminate TLS without a verifiable chain, so SSL maps to sslmode=require.
func PostgresDSN(cfg config.Config) string {
	sslMode := "disable"
	if cfg.DBSSL {
		sslMode = "require"
	}
	timeout := cfg.DBConnectTimeout
	if timeout <= 0 {
		timeout = 5
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s connect_timeout=%d TimeZone=UTC",
		cfg.DBHost,
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBName,
		cfg.DBPort,
		sslMode,
		timeout,
	)
}
