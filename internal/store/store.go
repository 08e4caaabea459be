// Package store persists games and genres. Handlers depend on the Store
// interface so the in-memory and relational backends are interchangeable.
package store

import (
	"context"
	"errors"
	"gamestore/backend/internal/models"
)

// ErrNotFound is returned when the requested game or genre does not exist.
var ErrNotFound = errors.New("record not found")

// Store is the persistence contract of the games API.
type Store interface {
	// ListGames returns every game ordered by id, with its genre resolved.
	ListGames(ctx context.Context) ([]models.Game, error)
	GetGame(ctx context.Context, id uint) (*models.Game, error)
	// CreateGame saves game and assigns its ID.
	CreateGame(ctx context.Context, game *models.Game) error
	UpdateGame(ctx context.Context, game *models.Game) error
	DeleteGame(ctx context.Context, id uint) error

	ListGenres(ctx context.Context) ([]models.Genre, error)
	GetGenre(ctx context.Context, id uint) (*models.Genre, error)
}
