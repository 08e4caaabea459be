package handler

import (
	"context"
	"errors"
	"gamestore/backend/internal/models"
	"gamestore/backend/internal/store"
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// spyStore counts the calls that reach the wrapped store.
type spyStore struct {
	store.Store
	calls int
}

func (s *spyStore) GetGenre(ctx context.Context, id uint) (*models.Genre, error) {
	s.calls++
	return s.Store.GetGenre(ctx, id)
}

func (s *spyStore) GetGame(ctx context.Context, id uint) (*models.Game, error) {
	s.calls++
	return s.Store.GetGame(ctx, id)
}

func (s *spyStore) CreateGame(ctx context.Context, game *models.Game) error {
	s.calls++
	return s.Store.CreateGame(ctx, game)
}

func (s *spyStore) UpdateGame(ctx context.Context, game *models.Game) error {
	s.calls++
	return s.Store.UpdateGame(ctx, game)
}

func newFaultyAPI(t *testing.T) (*testAPI, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	return newTestAPI(t, store.NewGormStore(db)), mock
}

func TestStoreFaultsAnswer500(t *testing.T) {
	api, mock := newFaultyAPI(t)
	lost := errors.New("connection lost")
	mock.ExpectQuery(`SELECT \* FROM "games"`).WillReturnError(lost)
	mock.ExpectQuery(`SELECT \* FROM "games"`).WillReturnError(lost)
	mock.ExpectQuery(`SELECT \* FROM "genres"`).WillReturnError(lost)

	w := api.do(http.MethodGet, "/games", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Failed to retrieve games"}`, w.Body.String())

	w = api.do(http.MethodGet, "/games/1", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Failed to retrieve game"}`, w.Body.String())

	w = api.do(http.MethodGet, "/genres", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	assert.NoError(t, mock.ExpectationsWereMet())
}
