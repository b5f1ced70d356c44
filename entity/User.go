package entity

import (
	"gorm.io/gorm"
)

// User is a loyalty-program customer identified by the QR code on their card.
type User struct {
	gorm.Model
	LoyaltyQR string `gorm:"uniqueIndex;not null" json:"loyaltyQr"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Points    int    `json:"points"`

	Orders         []Order          `json:"-"`
	LoyaltyHistory []LoyaltyHistory `json:"-"`
}
