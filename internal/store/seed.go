package store

import (
	"gamestore/backend/internal/models"
	"time"

	"github.com/shopspring/decimal"
)

// SeedGenres is the reference data every store starts with.
func SeedGenres() []models.Genre {
	return []models.Genre{
		{ID: 1, Name: "Fighting"},
		{ID: 2, Name: "Roleplaying"},
		{ID: 3, Name: "Sports"},
		{ID: 4, Name: "Action Adventure"},
		{ID: 5, Name: "Sandbox"},
	}
}

// SeedGames is the starter catalog. Genre ids refer to SeedGenres.
func SeedGames() []models.Game {
	return []models.Game{
		{ID: 1, Name: "Street Fighter II", GenreID: 1, Price: decimal.RequireFromString("19.99"), ReleaseDate: models.NewDate(1992, time.July, 15)},
		{ID: 2, Name: "Final Fantasy XIV", GenreID: 2, Price: decimal.RequireFromString("59.99"), ReleaseDate: models.NewDate(2010, time.September, 30)},
		{ID: 3, Name: "FIFA 23", GenreID: 3, Price: decimal.RequireFromString("69.99"), ReleaseDate: models.NewDate(2022, time.September, 27)},
		{ID: 4, Name: "The Legend of Zelda: Breath of the Wild", GenreID: 4, Price: decimal.RequireFromString("59.99"), ReleaseDate: models.NewDate(2017, time.March, 3)},
		{ID: 5, Name: "Minecraft", GenreID: 5, Price: decimal.RequireFromString("26.95"), ReleaseDate: models.NewDate(2011, time.November, 18)},
	}
}
