package dto

import "gamestore/backend/internal/models"

// ToGame builds a new, unsaved game from a create request.
func ToGame(d CreateGameDto, genre *models.Genre) models.Game {
	return models.Game{
		Name:        d.Name,
		GenreID:     uint(d.GenreID),
		Genre:       genre,
		Price:       d.Price,
		ReleaseDate: d.ReleaseDate,
	}
}

// UpdateGame overwrites every field of game except its id.
func UpdateGame(game *models.Game, d UpdateGameDto, genre *models.Genre) {
	game.Name = d.Name
	game.GenreID = uint(d.GenreID)
	game.Genre = genre
	game.Price = d.Price
	game.ReleaseDate = d.ReleaseDate
}

func ToSummaryDto(game models.Game) GameSummaryDto {
	return GameSummaryDto{
		ID:    game.ID,
		Name:  game.Name,
		Genre: genreName(game.Genre),
	}
}

func ToDetailsDto(game models.Game) GameDetailsDto {
	return GameDetailsDto{
		ID:          game.ID,
		Name:        game.Name,
		Genre:       genreName(game.Genre),
		Price:       game.Price,
		ReleaseDate: game.ReleaseDate,
	}
}

func ToGenreDto(genre models.Genre) GenreDto {
	return GenreDto{ID: genre.ID, Name: genre.Name}
}

func genreName(genre *models.Genre) string {
	if genre == nil {
		return ""
	}
	return genre.Name
}
