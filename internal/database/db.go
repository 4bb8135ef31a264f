package database

import (
	"fmt"

	"orderanalytics/internal/model"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewConnection initializes a new connection pool using GORM and migrates
// the order tables.
func NewConnection(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		log.Warn().Err(err).Msg("failed to auto-migrate models")
	}
	return db, nil
}

// Migrate creates or updates the orders and order_line_items tables
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.Order{}, &model.LineItem{}); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}
