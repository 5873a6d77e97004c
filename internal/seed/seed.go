package seed

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
)

const defaultCompanyName = "Default Company"

type companyRow struct {
	ID   int64
	Name string
}

// EnsureDefaultCompany makes sure at least one company exists so clients can
// be created against a fresh database. It returns the id of the oldest
// company, which is 1 on a database seeded by this function.
func EnsureDefaultCompany(ctx context.Context, db *gorm.DB, name string) (int64, error) {
	if db == nil {
		return 0, errors.New("seed database handle is required")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = defaultCompanyName
	}

	var id int64
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing companyRow
		if err := tx.Raw(`SELECT id, name FROM companies ORDER BY id ASC LIMIT 1`).Scan(&existing).Error; err != nil {
			return err
		}
		if existing.ID != 0 {
			id = existing.ID
			return nil
		}

		var created companyRow
		if err := tx.Raw(`INSERT INTO companies (name) VALUES (?) RETURNING id, name`, name).Scan(&created).Error; err != nil {
			return err
		}
		id = created.ID
		return nil
	})
	return id, err
}
