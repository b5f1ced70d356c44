package entity

import (
	"gorm.io/gorm"
)

type Category struct {
	gorm.Model
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	Position int    `json:"position"`
	IconName string `json:"iconName"`

	Products []Product `json:"-"`
}
