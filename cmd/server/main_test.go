package main

import (
	"context"
	"gamestore/backend/internal/config"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestNewStoreMemory(t *testing.T) {
	st, err := newStore(&config.Config{DBDriver: config.DriverMemory, SeedGames: false}, quietLogger())
	require.NoError(t, err)

	games, err := st.ListGames(context.Background())
	require.NoError(t, err)
	assert.Empty(t, games)

	genres, err := st.ListGenres(context.Background())
	require.NoError(t, err)
	assert.Len(t, genres, 5)
}

func TestNewStoreSQLite(t *testing.T) {
	cfg := &config.Config{
		DBDriver:    config.DriverSQLite,
		DatabaseURL: "file:main_test?mode=memory&cache=shared",
		SeedGames:   true,
	}

	st, err := newStore(cfg, quietLogger())
	require.NoError(t, err)

	games, err := st.ListGames(context.Background())
	require.NoError(t, err)
	assert.Len(t, games, 5)
}
