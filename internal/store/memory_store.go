package store

import (
	"context"
	"gamestore/backend/internal/models"
	"sort"
	"sync"
)

// MemoryStore keeps games and genres in process memory.
type MemoryStore struct {
	mu     sync.RWMutex
	games  []models.Game
	genres []models.Genre
}

// NewMemoryStore returns a store holding copies of genres and games.
// Games are kept in id order.
func NewMemoryStore(genres []models.Genre, games []models.Game) *MemoryStore {
	s := &MemoryStore{
		genres: append([]models.Genre(nil), genres...),
		games:  make([]models.Game, 0, len(games)),
	}
	for _, g := range games {
		g.Genre = nil
		s.games = append(s.games, g)
	}
	sort.Slice(s.games, func(i, j int) bool { return s.games[i].ID < s.games[j].ID })
	return s
}

func (s *MemoryStore) ListGames(_ context.Context) ([]models.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	games := make([]models.Game, 0, len(s.games))
	for _, g := range s.games {
		games = append(games, s.withGenre(g))
	}
	return games, nil
}

func (s *MemoryStore) GetGame(_ context.Context, id uint) (*models.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, ErrNotFound
	}
	game := s.withGenre(s.games[i])
	return &game, nil
}

// CreateGame assigns the next id as the current game count plus one. Ids
// can repeat once games have been deleted.
func (s *MemoryStore) CreateGame(_ context.Context, game *models.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	game.ID = uint(len(s.games) + 1)
	stored := *game
	stored.Genre = nil
	s.games = append(s.games, stored)

	*game = s.withGenre(stored)
	return nil
}

func (s *MemoryStore) UpdateGame(_ context.Context, game *models.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(game.ID)
	if i < 0 {
		return ErrNotFound
	}
	stored := *game
	stored.Genre = nil
	s.games[i] = stored
	return nil
}

func (s *MemoryStore) DeleteGame(_ context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}
	s.games = append(s.games[:i], s.games[i+1:]...)
	return nil
}

func (s *MemoryStore) ListGenres(_ context.Context) ([]models.Genre, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	genres := append([]models.Genre(nil), s.genres...)
	sort.Slice(genres, func(i, j int) bool { return genres[i].ID < genres[j].ID })
	return genres, nil
}

func (s *MemoryStore) GetGenre(_ context.Context, id uint) (*models.Genre, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if genre := s.genre(id); genre != nil {
		return genre, nil
	}
	return nil, ErrNotFound
}

// indexOf returns the position of the first game with id, or -1.
// Callers must hold mu.
func (s *MemoryStore) indexOf(id uint) int {
	for i, g := range s.games {
		if g.ID == id {
			return i
		}
	}
	return -1
}

// genre returns a copy of the genre with id, or nil. Callers must hold mu.
func (s *MemoryStore) genre(id uint) *models.Genre {
	for _, g := range s.genres {
		if g.ID == id {
			genre := g
			return &genre
		}
	}
	return nil
}

func (s *MemoryStore) withGenre(game models.Game) models.Game {
	game.Genre = s.genre(game.GenreID)
	return game
}
