package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromViperDefaults(t *testing.T) {
	t.Setenv("PGPORT", "")
	t.Setenv("PORT", "")
	t.Setenv("SSL", "")
	t.Setenv("DB_TYPE", "")

	cfg := FromViper(newViper())

	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, "3000", cfg.HTTPPort)
	assert.False(t, cfg.DBSSL)
	assert.Equal(t, "postgres", cfg.DBType)
	assert.True(t, cfg.Bootstrap.EnsureDefaultCompany)
	assert.False(t, cfg.RateLimit.Enabled())
}

func TestFromViperReadsEnvironment(t *testing.T) {
	t.Setenv("PGHOST", "db.internal")
	t.Setenv("PGDATABASE", "invoices")
	t.Setenv("PGUSER", "billing")
	t.Setenv("PGPASSWORD", "s3cret")
	t.Setenv("PGPORT", "6543")
	t.Setenv("SSL", "true")
	t.Setenv("JWT_SECRET", "  signing-key  ")
	t.Setenv("PORT", "8081")
	t.Setenv("DB_TYPE", "SQLite3")
	t.Setenv("REDIS_ADDR", "localhost:6379")

	cfg := FromViper(newViper())

	assert.Equal(t, "db.internal", cfg.DBHost)
	assert.Equal(t, "invoices", cfg.DBName)
	assert.Equal(t, "billing", cfg.DBUser)
	assert.Equal(t, "s3cret", cfg.DBPassword)
	assert.Equal(t, "6543", cfg.DBPort)
	assert.True(t, cfg.DBSSL)
	assert.Equal(t, "signing-key", cfg.AuthJWTSecret)
	assert.Equal(t, "8081", cfg.HTTPPort)
	assert.Equal(t, "sqlite", cfg.DBType)
	assert.True(t, cfg.RateLimit.Enabled())
}

func TestIsProduction(t *testing.T) {
	t.Setenv("ENVIRONMENT", " Production ")
	assert.True(t, FromViper(newViper()).IsProduction())

	t.Setenv("ENVIRONMENT", "development")
	assert.False(t, FromViper(newViper()).IsProduction())
}
