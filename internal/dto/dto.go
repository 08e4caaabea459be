// Package dto holds the wire shapes of the games API, their validation
// rules and the mappings to and from the entity model.
package dto

import (
	"gamestore/backend/internal/models"

	"github.com/shopspring/decimal"
)

// CreateGameDto is the body of POST /games.
type CreateGameDto struct {
	Name        string          `json:"name" example:"Street Fighter II"`
	GenreID     int             `json:"genreId" example:"1"`
	Price       decimal.Decimal `json:"price" swaggertype:"number" example:"19.99"`
	ReleaseDate models.Date     `json:"releaseDate" swaggertype:"string" example:"1992-07-15"`
}

// UpdateGameDto is the body of PUT /games/{id}. The id comes from the path.
type UpdateGameDto struct {
	Name        string          `json:"name" example:"Street Fighter II Turbo"`
	GenreID     int             `json:"genreId" example:"1"`
	Price       decimal.Decimal `json:"price" swaggertype:"number" example:"9.99"`
	ReleaseDate models.Date     `json:"releaseDate" swaggertype:"string" example:"1992-07-15"`
}

// GameSummaryDto is one entry of the game list.
type GameSummaryDto struct {
	ID    uint   `json:"id" example:"1"`
	Name  string `json:"name" example:"Street Fighter II"`
	Genre string `json:"genre" example:"Fighting"`
}

// GameDetailsDto is the single-game view.
type GameDetailsDto struct {
	ID          uint            `json:"id" example:"1"`
	Name        string          `json:"name" example:"Street Fighter II"`
	Genre       string          `json:"genre" example:"Fighting"`
	Price       decimal.Decimal `json:"price" swaggertype:"number" example:"19.99"`
	ReleaseDate models.Date     `json:"releaseDate" swaggertype:"string" example:"1992-07-15"`
}

// GameDto is the name older clients use for the single-game view.
type GameDto = GameDetailsDto

// GenreDto is one entry of the genre list.
type GenreDto struct {
	ID   uint   `json:"id" example:"1"`
	Name string `json:"name" example:"Fighting"`
}
