package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"portfolio_backend/internal/config"
	"portfolio_backend/internal/models"
)

var gormDB *gorm.DB

// ConnectGorm opens a GORM connection using the configured DSN.
func ConnectGorm() (*gorm.DB, error) {
	if gormDB != nil {
		return gormDB, nil
	}

	cfg := config.GetConfig()

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to GORM: %w", err)
	}

	gormDB = db
	return db, nil
}

// AutoMigrate runs schema migrations for every model.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Session{},
		&models.PortfolioItem{},
		&models.Client{},
		&models.Project{},
		&models.Category{},
		&models.SingletonDocument{},
		&models.AnalyticsSettings{},
	)
}
