package postgres

import (
	"logistics/internal/adapters/out/postgres/notificationrepo"
	"logistics/internal/adapters/out/postgres/routerepo"

	"gorm.io/gorm"
)

// Migrate creates or updates the routes, legs and notifications tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&routerepo.RouteDTO{},
		&routerepo.LegDTO{},
		&notificationrepo.NotificationDTO{},
	)
}
