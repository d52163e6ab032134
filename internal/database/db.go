package database

import (
	"log"

	"crm-backend/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewConnection initializes a new connection pool using GORM
func NewConnection(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	// Auto-migrate core models. The CRM tables are populated by the
	// external ingestion pipeline; this only keeps the schema in sync.
	err = db.AutoMigrate(
		&model.User{},
		&model.Agent{},
		&model.Account{},
		&model.Product{},
		&model.Opportunity{},
	)
	if err != nil {
		log.Println("WARNING: Failed to auto-migrate models:", err)
	}

	return db, nil
}
