// Package dbtest opens throwaway in-memory SQLite databases carrying the
// production schema, for repository and service tests.
package dbtest

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/smallbiznis/panorama/internal/migration"
	"github.com/smallbiznis/panorama/pkg/db"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open returns a fresh database with foreign keys enforced and the sqlite
// migrations applied.
func Open(t testing.TB) *gorm.DB {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}

	sqlDB, err := conn.DB()
	if err != nil {
		t.Fatalf("failed to get sql db: %v", err)
	}
	// every new connection to :memory: is a separate database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := migration.RunMigrations(sqlDB, "sqlite"); err != nil {
		t.Fatalf("failed to apply migrations: %v", err)
	}
	return conn
}

// Gateway returns a Gateway over a fresh database.
func Gateway(t testing.TB) (db.Gateway, *gorm.DB) {
	t.Helper()
	conn := Open(t)
	return db.NewGateway(conn), conn
}

// SeedCompany inserts a company row and returns its id.
func SeedCompany(t testing.TB, conn *gorm.DB, name string) int64 {
	t.Helper()
	var id int64
	if err := conn.Raw(`INSERT INTO companies (name) VALUES (?) RETURNING id`, name).Scan(&id).Error; err != nil {
		t.Fatalf("failed to seed company: %v", err)
	}
	return id
}
