package database

import (
	"fmt"
	"gamestore/backend/internal/config"
	"gamestore/backend/internal/models"
	"gamestore/backend/internal/store"

	"github.com/glebarez/sqlite"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the database named by cfg, runs migrations and seeds the
// reference data.
func Connect(cfg *config.Config, log *logrus.Logger, gormLogger logger.Interface) (*gorm.DB, error) {
	dialector, err := Dialector(cfg.DBDriver, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	log.WithField("driver", cfg.DBDriver).Info("Database connection established.")

	if err := Migrate(db); err != nil {
		return nil, err
	}
	log.Info("Database migrated successfully.")

	if err := Seed(db, cfg.SeedGames); err != nil {
		return nil, err
	}
	return db, nil
}

// Dialector returns the GORM dialector for a DB_DRIVER value.
func Dialector(driver, dsn string) (gorm.Dialector, error) {
	switch driver {
	case config.DriverPostgres:
		return postgres.Open(dsn), nil
	case config.DriverSQLite:
		return sqlite.Open(dsn), nil
	default:
		return nil, fmt.Errorf("no SQL dialector for driver %q", driver)
	}
}

// Migrate creates or updates the genres and games tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Genre{}, &models.Game{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

// Seed inserts any reference genre missing from the genres table and, when
// withGames is set, the starter games into an empty games table. Seed games
// are attached to genres by name, so existing genre rows are reused. Ids are
// left to the database so its sequences stay in step.
func Seed(db *gorm.DB, withGames bool) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var existing []models.Genre
		if err := tx.Find(&existing).Error; err != nil {
			return fmt.Errorf("failed to load genres: %w", err)
		}
		byName := make(map[string]uint, len(existing))
		for _, genre := range existing {
			byName[genre.Name] = genre.ID
		}

		genreIDs := make(map[uint]uint)
		for _, seed := range store.SeedGenres() {
			if id, ok := byName[seed.Name]; ok {
				genreIDs[seed.ID] = id
				continue
			}
			genre := models.Genre{Name: seed.Name}
			if err := tx.Create(&genre).Error; err != nil {
				return fmt.Errorf("failed to seed genre %q: %w", seed.Name, err)
			}
			genreIDs[seed.ID] = genre.ID
		}

		if !withGames {
			return nil
		}

		var gameCount int64
		if err := tx.Model(&models.Game{}).Count(&gameCount).Error; err != nil {
			return fmt.Errorf("failed to count games: %w", err)
		}
		if gameCount > 0 {
			return nil
		}

		for _, seed := range store.SeedGames() {
			game := seed
			game.ID = 0
			game.GenreID = genreIDs[seed.GenreID]
			if err := tx.Omit("Genre").Create(&game).Error; err != nil {
				return fmt.Errorf("failed to seed game %q: %w", seed.Name, err)
			}
		}
		return nil
	})
}
