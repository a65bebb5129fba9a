package models

import (
	"fmt"

	"gorm.io/gorm"
)

// All lists every persisted model in dependency order.
func All() []any {
	return []any{&User{}, &Vacancy{}, &Application{}}
}

// AutoMigrate builds the schema with gorm for sqlite runs and tests; Postgres
// deployments use the goose migrations instead. The live-email index is partial,
// which gorm tags cannot express.
func AutoMigrate(conn *gorm.DB) error {
	if err := conn.AutoMigrate(All()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	if err := conn.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS ux_users_email_live ON users (email) WHERE deleted_at IS NULL`).Error; err != nil {
		return fmt.Errorf("auto migrate users email index: %w", err)
	}
	return nil
}
