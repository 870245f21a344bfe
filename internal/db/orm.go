package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	gormModels "espoch-directory/docentes/internal/models/gorm"
)

var PgDB *gorm.DB

// InitPostgresORM opens the GORM connection backing the configuration store
// and migrates the faculty tables.
func InitPostgresORM(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	if err := db.AutoMigrate(&gormModels.Faculty{}, &gormModels.FieldMapping{}); err != nil {
		return nil, fmt.Errorf("failed to migrate faculty tables: %w", err)
	}

	PgDB = db
	return db, nil
}
