package entity

import (
	"gorm.io/gorm"
)

type OrderItemSelection struct {
	gorm.Model
	OrderItemID uint      `json:"orderItemId"`
	OrderItem   OrderItem `json:"-"` // not serialized back, avoids a loop

	OptionID   uint    `json:"optionId"`
	Label      string  `json:"label"`
	PriceDelta float64 `json:"priceDelta"`
}
