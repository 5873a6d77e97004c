package db

import (
	"time"

	"github.com/smallbiznis/panorama/internal/config"
)

// Config carries the connection-pool settings applied to the underlying *sql.DB.
type Config struct {
	MaxIdleConn     int
	MaxOpenConn     int
	ConnMaxIdleTime time.Duration
}

func ConfigFrom(cfg config.Config) Config {
	return Config{
		MaxIdleConn:     cfg.DBMaxIdleConn,
		MaxOpenConn:     cfg.DBMaxOpenConn,
		ConnMaxIdleTime: time.Duration(cfg.DBConnMaxIdleTime) * time.Second,
	}
}
