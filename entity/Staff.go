package entity

import (
	"gorm.io/gorm"
)

// Staff can sign in on the kitchen display to follow incoming orders.
type Staff struct {
	gorm.Model
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Password string `json:"-"` // bcrypt hash
	Role     string `gorm:"not null;default:staff" json:"role"`
}
