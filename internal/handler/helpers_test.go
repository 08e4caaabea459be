package handler

import (
	"bytes"
	"encoding/json"
	"gamestore/backend/internal/hub"
	"gamestore/backend/internal/store"
	"gamestore/backend/internal/testutil"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
	decimal.MarshalJSONWithoutQuotes = true
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func backends() map[string]func(t *testing.T) store.Store {
	return map[string]func(t *testing.T) store.Store{
		"memory": func(t *testing.T) store.Store {
			return store.NewMemoryStore(store.SeedGenres(), store.SeedGames())
		},
		"gorm": func(t *testing.T) store.Store {
			return store.NewGormStore(testutil.SQLiteDB(t, true))
		},
	}
}

// testAPI is a router over a seeded store.
type testAPI struct {
	t      *testing.T
	router *gin.Engine
	store  store.Store
	events *hub.Hub
}

func forEachBackend(t *testing.T, test func(t *testing.T, api *testAPI)) {
	for name, newStore := range backends() {
		t.Run(name, func(t *testing.T) {
			test(t, newTestAPI(t, newStore(t)))
		})
	}
}

func newTestAPI(t *testing.T, st store.Store) *testAPI {
	events := hub.NewHub()
	return &testAPI{
		t:      t,
		router: NewRouter(st, events, quietLogger()),
		store:  st,
		events: events,
	}
}

func (a *testAPI) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	a.t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(a.t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func (a *testAPI) gameCount() int {
	a.t.Helper()
	w := a.do(http.MethodGet, "/games", nil)
	require.Equal(a.t, http.StatusOK, w.Code)
	var list []json.RawMessage
	require.NoError(a.t, json.Unmarshal(w.Body.Bytes(), &list))
	return len(list)
}
