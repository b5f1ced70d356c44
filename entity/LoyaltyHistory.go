package entity

import (
	"gorm.io/gorm"
)

type LoyaltyHistory struct {
	gorm.Model
	UserID uint `json:"userId"`
	User   User `json:"-"`

	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	PointsChange int `json:"pointsChange"`
}
