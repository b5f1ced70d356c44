package entity

import (
	"gorm.io/gorm"
)

type Product struct {
	gorm.Model
	Name        string  `json:"name"`
	Description string  `json:"description"`
	BasePrice   float64 `json:"basePrice"`
	ImageURL    string  `json:"imageUrl"`
	IsAvailable bool    `json:"isAvailable"`

	CategoryID uint     `json:"categoryId"`
	Category   Category `json:"-"` // preload only on detail

	Options []ProductOption `json:"options,omitempty"`
}
