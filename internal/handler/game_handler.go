package handler

import (
	"errors"
	"fmt"
	"gamestore/backend/internal/dto"
	"gamestore/backend/internal/hub"
	"gamestore/backend/internal/store"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// GameHandler serves the /games routes.
type GameHandler struct {
	store  store.Store
	events *hub.Hub
	log    logrus.FieldLogger
}

func NewGameHandler(st store.Store, events *hub.Hub, log logrus.FieldLogger) *GameHandler {
	return &GameHandler{store: st, events: events, log: log}
}

// GetGames godoc
// @Summary      Get all games
// @Description  Retrieves every game in the catalog, ordered by id.
// @Tags         games
// @Produce      json
// @Success      200 {array}  dto.GameSummaryDto
// @Failure      500 {object} ErrorResponse
// @Router       /games [get]
func (h *GameHandler) GetGames(c *gin.Context) {
	games, err := h.store.ListGames(c.Request.Context())
	if err != nil {
		respondStoreFault(c, h.log, err, "Failed to retrieve games")
		return
	}

	response := make([]dto.GameSummaryDto, 0, len(games))
	for _, game := range games {
		response = append(response, dto.ToSummaryDto(game))
	}
	c.JSON(http.StatusOK, response)
}

// GetGameByID godoc
// @Summary      Get a single game by ID
// @Tags         games
// @Produce      json
// @Param        id path int true "Game ID"
// @Success      200 {object} dto.GameDetailsDto
// @Failure      404 "Game not found"
// @Failure      500 {object} ErrorResponse
// @Router       /games/{id} [get]
func (h *GameHandler) GetGameByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	game, err := h.store.GetGame(c.Request.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		c.Status(http.StatusNotFound)
		return
	}
	if err != nil {
		respondStoreFault(c, h.log, err, "Failed to retrieve game")
		return
	}

	c.JSON(http.StatusOK, dto.ToDetailsDto(*game))
}

// CreateGame godoc
// @Summary      Create a new game
// @Description  Validates the body, resolves the genre and stores the game.
// @Tags         games
// @Accept       json
// @Produce      json
// @Param        input body dto.CreateGameDto true "Game Info"
// @Success      201 {object} dto.GameDetailsDto
// @Header       201 {string} Location "/games/{id}"
// @Failure      400 {object} ValidationErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /games [post]
func (h *GameHandler) CreateGame(c *gin.Context) {
	var input dto.CreateGameDto
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	if errs := input.Validate(); len(errs) > 0 {
		respondValidation(c, errs)
		return
	}

	ctx := c.Request.Context()
	genre, err := h.store.GetGenre(ctx, uint(input.GenreID))
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: fmt.Sprintf("Invalid genre id: %d", input.GenreID)})
		return
	}
	if err != nil {
		respondStoreFault(c, h.log, err, "Failed to retrieve genre")
		return
	}

	game := dto.ToGame(input, genre)
	if err := h.store.CreateGame(ctx, &game); err != nil {
		respondStoreFault(c, h.log, err, "Failed to create game")
		return
	}
	game.Genre = genre

	response := dto.ToDetailsDto(game)
	h.publish(hub.GameCreated, response)

	c.Header("Location", fmt.Sprintf("/games/%d", game.ID))
	c.JSON(http.StatusCreated, response)
}

// UpdateGame godoc
// @Summary      Update a game
// @Description  Replaces every field of an existing game.
// @Tags         games
// @Accept       json
// @Param        id    path int               true "Game ID"
// @Param        input body dto.UpdateGameDto true "New Game Info"
// @Success      204 "No Content"
// @Failure      400 {object} ValidationErrorResponse
// @Failure      404 "Game not found"
// @Failure      500 {object} ErrorResponse
// @Router       /games/{id} [put]
func (h *GameHandler) UpdateGame(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input dto.UpdateGameDto
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	if errs := input.Validate(); len(errs) > 0 {
		respondValidation(c, errs)
		return
	}

	ctx := c.Request.Context()
	game, err := h.store.GetGame(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		c.Status(http.StatusNotFound)
		return
	}
	if err != nil {
		respondStoreFault(c, h.log, err, "Failed to retrieve game")
		return
	}

	genre, err := h.store.GetGenre(ctx, uint(input.GenreID))
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: fmt.Sprintf("Invalid genre id: %d", input.GenreID)})
		return
	}
	if err != nil {
		respondStoreFault(c, h.log, err, "Failed to retrieve genre")
		return
	}

	dto.UpdateGame(game, input, genre)
	if err := h.store.UpdateGame(ctx, game); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		respondStoreFault(c, h.log, err, "Failed to update game")
		return
	}
	game.Genre = genre

	h.publish(hub.GameUpdated, dto.ToDetailsDto(*game))
	c.Status(http.StatusNoContent)
}

// DeleteGame godoc
// @Summary      Delete a game
// @Tags         games
// @Param        id path int true "Game ID"
// @Success      204 "No Content"
// @Failure      404 "Game not found"
// @Failure      500 {object} ErrorResponse
// @Router       /games/{id} [delete]
func (h *GameHandler) DeleteGame(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	err := h.store.DeleteGame(c.Request.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		c.Status(http.StatusNotFound)
		return
	}
	if err != nil {
		respondStoreFault(c, h.log, err, "Failed to delete game")
		return
	}

	h.publish(hub.GameDeleted, gin.H{"id": id})
	c.Status(http.StatusNoContent)
}

// StreamEvents godoc
// @Summary      Stream catalog changes
// @Description  Server-sent events for every created, updated and deleted game.
// @Tags         games
// @Produce      text/event-stream
// @Success      200 {object} hub.Event
// @Router       /games/events [get]
func (h *GameHandler) StreamEvents(c *gin.Context) {
	client := h.events.Subscribe(16)
	defer h.events.Unsubscribe(client)

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Status(http.StatusOK)
	c.Writer.Flush()

	for {
		select {
		case <-c.Request.Context().Done():
			return
		case msg, ok := <-client:
			if !ok {
				return
			}
			c.SSEvent("catalog", string(msg))
			c.Writer.Flush()
		}
	}
}

func (h *GameHandler) publish(eventType string, payload interface{}) {
	if err := h.events.Broadcast(hub.Event{Type: eventType, Payload: payload}); err != nil {
		h.log.WithError(err).WithField("event", eventType).Warn("Failed to broadcast catalog event")
	}
}
