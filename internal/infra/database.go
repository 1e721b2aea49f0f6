package infra

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/JoMaNi1998/MKBusinessSoftware-sub003/internal/model"
)

// NewDatabase establishes a GORM connection backed by pgx, runs AutoMigrate to
// create / update all tables, then applies the idempotent SQL patches that GORM
// cannot express (sequences, partial indexes).
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, err
	}
	return db, nil
}

// RunMigrations migrates the schema and applies the SQL patches. Also used by
// integration tests against a throwaway database.
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.Category{},
		&model.Material{},
		&model.Customer{},
		&model.Project{},
		&model.Booking{},
		&model.BookingLine{},
		&model.Offer{},
		&model.OfferItem{},
	); err != nil {
		return fmt.Errorf("AutoMigrate: %w", err)
	}
	return applySchemaPatches(db)
}

// applySchemaPatches runs idempotent DDL that AutoMigrate cannot handle on its
// own. Each statement uses IF NOT EXISTS semantics so re-running on an already
// patched database is a no-op.
func applySchemaPatches(db *gorm.DB) error {
	patches := []string{
		// gapless offer numbering (see OfferRepository.NextNumber)
		`CREATE SEQUENCE IF NOT EXISTS angebot_nummer_seq START 1000`,
		// partial index for the ordering screen: only materials with an
		// active order status are scanned
		`DO $$ BEGIN
		  IF NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'idx_materialien_order_status') THEN
		    CREATE INDEX idx_materialien_order_status
		        ON materialien (order_status)
		        WHERE order_status <> '';
		  END IF;
		END $$`,
	}

	for _, sql := range patches {
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("patch %q: %w", sql[:min(len(sql), 60)], err)
		}
	}
	return nil
}
