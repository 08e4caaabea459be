package store

import (
	"context"
	"gamestore/backend/internal/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreReturnsCopies(t *testing.T) {
	s := NewMemoryStore(SeedGenres(), SeedGames())
	ctx := context.Background()

	game, err := s.GetGame(ctx, 1)
	require.NoError(t, err)
	game.Name = "changed"
	game.Genre.Name = "changed"

	again, err := s.GetGame(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Street Fighter II", again.Name)
	assert.Equal(t, "Fighting", again.Genre.Name)
}

func TestMemoryStoreIDIsCountPlusOne(t *testing.T) {
	s := NewMemoryStore(SeedGenres(), nil)
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		g := models.Game{Name: "game", GenreID: 1}
		require.NoError(t, s.CreateGame(ctx, &g))
		assert.Equal(t, uint(i), g.ID)
	}

	require.NoError(t, s.DeleteGame(ctx, 1))
	g := models.Game{Name: "after delete", GenreID: 1}
	require.NoError(t, s.CreateGame(ctx, &g))
	assert.Equal(t, uint(3), g.ID)
}

func TestMemoryStoreUnresolvedGenre(t *testing.T) {
	s := NewMemoryStore(nil, []models.Game{{ID: 1, Name: "Orphan", GenreID: 9}})

	game, err := s.GetGame(context.Background(), 1)
	require.NoError(t, err)
	assert.Nil(t, game.Genre)
}
