package configs

import (
	"github.com/AlexMaina05/Comande/entity"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// ConnectDB opens the durable store. The handle is injected everywhere it is
// needed (routes, services, tests) rather than kept as a package singleton,
// so tests can run against an isolated in-memory database.
func ConnectDB(dsn string) (*gorm.DB, error) {
	// TranslateError turns driver UNIQUE violations into
	// gorm.ErrDuplicatedKey, which the services interpret as
	// conflict-or-merge on their guarded write paths.
	return gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
}

func SetupDatabase(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.User{},
		&entity.MenuItem{},
		&entity.Reservation{},
		&entity.Order{},
		&entity.OrderItem{},
	)
}
