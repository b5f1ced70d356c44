package entity

import (
	"gorm.io/gorm"
)

// OptionKind determines the selection semantics of an option group:
// exclusive kinds replace the previous pick, multi kinds toggle.
type OptionKind string

const (
	KindSize    OptionKind = "size"
	KindExtra   OptionKind = "extra"
	KindSauce   OptionKind = "sauce"
	KindCooking OptionKind = "cooking"
	KindSide    OptionKind = "side"
)

// Exclusive reports whether selecting an option of this kind replaces any
// previously selected option of the same kind.
func (k OptionKind) Exclusive() bool {
	return k == KindSize || k == KindCooking
}

type ProductOption struct {
	gorm.Model
	ProductID uint    `json:"productId"`
	Product   Product `json:"-"`

	Label      string     `json:"label"`
	Kind       OptionKind `json:"kind"`
	PriceDelta float64    `json:"priceDelta"` // signed, negative = discount variant
	IsDefault  bool       `json:"isDefault"`
	SortOrder  int        `json:"sortOrder"`
}
