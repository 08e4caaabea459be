package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Game represents a game in the catalog.
type Game struct {
	ID          uint            `gorm:"primaryKey"`
	Name        string          `gorm:"size:100;not null"`
	GenreID     uint            `gorm:"not null;index"`
	Genre       *Genre          `gorm:"foreignKey:GenreID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	Price       decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	ReleaseDate Date            `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
