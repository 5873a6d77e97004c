package dbtest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAppliesMigrations(t *testing.T) {
	conn := Open(t)

	var version struct {
		Version int64
		Dirty   bool
	}
	require.NoError(t, conn.Raw(`SELECT version, dirty FROM schema_migrations`).Scan(&version).Error)
	assert.Equal(t, int64(1), version.Version)
	assert.False(t, version.Dirty)

	// timestamp defaults only exist in the migration files
	require.NoError(t, conn.Exec(`INSERT INTO admins (email, password) VALUES (?, ?)`, "a@b.co", "hash").Error)
	var missing int64
	require.NoError(t, conn.Raw(`SELECT COUNT(*) FROM admins WHERE created_at IS NULL OR updated_at IS NULL`).Scan(&missing).Error)
	assert.Zero(t, missing)
}

func TestOpenEnforcesForeignKeys(t *testing.T) {
	conn := Open(t)

	err := conn.Exec(`INSERT INTO clients (name, company_id, created_at, updated_at) VALUES ('Globex', 99, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)`).Error
	assert.Error(t, err)

	companyID := SeedCompany(t, conn, "Acme")
	assert.Equal(t, int64(1), companyID)
}
