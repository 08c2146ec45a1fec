package infra

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"barrio/internal/models/db_models"
)

func InitPostgresql(cfg *Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.PostgresURL), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	return db, nil
}

// AutoMigrate creates or updates the schema for every entity, join tables
// included.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&db_models.Account{},
		&db_models.Tag{},
		&db_models.Event{},
		&db_models.Activity{},
		&db_models.Ticket{},
		&db_models.Business{},
		&db_models.SocialNetwork{},
		&db_models.File{},
		&db_models.ResetToken{},
	)
}

func ClosePostgresql(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
