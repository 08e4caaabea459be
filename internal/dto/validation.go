package dto

import (
	"fmt"
	"gamestore/backend/internal/models"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// MaxNameLength is the longest game name accepted, in characters.
const MaxNameLength = 100

// PriceScale is the number of decimal places a price may carry. Together
// with maxPrice it matches the numeric(10,2) price column.
const PriceScale = 2

var maxPrice = decimal.New(1, 8)

// FieldErrors maps a JSON field name to the messages for that field.
// An empty FieldErrors means the input is valid.
type FieldErrors map[string][]string

func (fe FieldErrors) add(field, msg string) {
	fe[field] = append(fe[field], msg)
}

// Error implements error. Fields are listed in a stable order.
func (fe FieldErrors) Error() string {
	fields := make([]string, 0, len(fe))
	for f := range fe {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f, strings.Join(fe[f], "; ")))
	}
	return strings.Join(parts, ", ")
}

// Validate checks a create request.
func (d CreateGameDto) Validate() FieldErrors {
	return validateGame(d.Name, d.GenreID, d.Price, d.ReleaseDate)
}

// Validate checks an update request.
func (d UpdateGameDto) Validate() FieldErrors {
	return validateGame(d.Name, d.GenreID, d.Price, d.ReleaseDate)
}

func validateGame(name string, genreID int, price decimal.Decimal, releaseDate models.Date) FieldErrors {
	errs := FieldErrors{}

	switch {
	case strings.TrimSpace(name) == "":
		errs.add("name", "name is required")
	case utf8.RuneCountInString(name) > MaxNameLength:
		errs.add("name", fmt.Sprintf("name must be at most %d characters", MaxNameLength))
	}

	if genreID < 1 {
		errs.add("genreId", "genreId must be a positive integer")
	}

	switch {
	case price.IsNegative():
		errs.add("price", "price must be greater than or equal to 0")
	case price.GreaterThanOrEqual(maxPrice):
		errs.add("price", fmt.Sprintf("price must be less than %s", maxPrice))
	case !price.Equal(price.Truncate(PriceScale)):
		errs.add("price", fmt.Sprintf("price must have at most %d decimal places", PriceScale))
	}

	if releaseDate.IsZero() {
		errs.add("releaseDate", "release date is required")
	}

	return errs
}
