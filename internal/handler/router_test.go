package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	_ "gamestore/backend/docs"
)

func TestSwaggerDocument(t *testing.T) {
	api := newTestAPI(t, backends()["memory"](t))

	w := api.do(http.MethodGet, "/swagger/doc.json", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"title": "Game Store API"`)
	assert.Contains(t, w.Body.String(), `"/games/{id}"`)
}

func TestUnknownRouteIs404(t *testing.T) {
	api := newTestAPI(t, backends()["memory"](t))

	w := api.do(http.MethodPatch, "/games/1", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
