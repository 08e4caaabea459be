package handler

import (
	"gamestore/backend/internal/dto"
	"gamestore/backend/internal/store"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// GenreHandler serves the read-only genre reference data.
type GenreHandler struct {
	store store.Store
	log   logrus.FieldLogger
}

func NewGenreHandler(st store.Store, log logrus.FieldLogger) *GenreHandler {
	return &GenreHandler{store: st, log: log}
}

// GetGenres godoc
// @Summary      Get all genres
// @Description  Lists the genres a game may reference through genreId.
// @Tags         genres
// @Produce      json
// @Success      200 {array}  dto.GenreDto
// @Failure      500 {object} ErrorResponse
// @Router       /genres [get]
func (h *GenreHandler) GetGenres(c *gin.Context) {
	genres, err := h.store.ListGenres(c.Request.Context())
	if err != nil {
		respondStoreFault(c, h.log, err, "Failed to retrieve genres")
		return
	}

	response := make([]dto.GenreDto, 0, len(genres))
	for _, genre := range genres {
		response = append(response, dto.ToGenreDto(genre))
	}
	c.JSON(http.StatusOK, response)
}
