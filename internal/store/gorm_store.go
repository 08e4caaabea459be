package store

import (
	"context"
	"errors"
	"fmt"
	"gamestore/backend/internal/models"

	"gorm.io/gorm"
)

// GormStore keeps games and genres in a relational database.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) ListGames(ctx context.Context) ([]models.Game, error) {
	games := []models.Game{}
	if err := s.db.WithContext(ctx).Preload("Genre").Order("id").Find(&games).Error; err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}
	return games, nil
}

func (s *GormStore) GetGame(ctx context.Context, id uint) (*models.Game, error) {
	var game models.Game
	if err := s.db.WithContext(ctx).Preload("Genre").First(&game, id).Error; err != nil {
		return nil, translateError(err, "failed to get game %d", id)
	}
	return &game, nil
}

func (s *GormStore) CreateGame(ctx context.Context, game *models.Game) error {
	// Omit the association so an attached genre is never upserted.
	if err := s.db.WithContext(ctx).Omit("Genre").Create(game).Error; err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}
	return nil
}

func (s *GormStore) UpdateGame(ctx context.Context, game *models.Game) error {
	result := s.db.WithContext(ctx).Model(game).
		Select("Name", "GenreID", "Price", "ReleaseDate").
		Updates(game)
	if result.Error != nil {
		return fmt.Errorf("failed to update game %d: %w", game.ID, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) DeleteGame(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&models.Game{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete game %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) ListGenres(ctx context.Context) ([]models.Genre, error) {
	genres := []models.Genre{}
	if err := s.db.WithContext(ctx).Order("id").Find(&genres).Error; err != nil {
		return nil, fmt.Errorf("failed to list genres: %w", err)
	}
	return genres, nil
}

func (s *GormStore) GetGenre(ctx context.Context, id uint) (*models.Genre, error) {
	var genre models.Genre
	if err := s.db.WithContext(ctx).First(&genre, id).Error; err != nil {
		return nil, translateError(err, "failed to get genre %d", id)
	}
	return &genre, nil
}

// translateError maps gorm.ErrRecordNotFound to ErrNotFound and wraps anything else.
func translateError(err error, format string, args ...interface{}) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}
