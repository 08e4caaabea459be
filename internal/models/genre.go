package models

// Genre classifies a game (e.g., "Fighting", "Sports").
type Genre struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:50;unique;not null"`
}
