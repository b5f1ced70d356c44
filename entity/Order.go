package entity

import (
	"gorm.io/gorm"
)

const (
	OrderStatusPending   = "pending"
	OrderStatusPreparing = "preparing"
	OrderStatusReady     = "ready"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

type Order struct {
	gorm.Model
	TableNumber string  `json:"tableNumber"` // SUR-PLACE / A-EMPORTER / TABLE_n / BORNE-1
	TotalAmount float64 `json:"totalAmount"`
	Status      string  `json:"status"`

	UserID *uint `json:"userId"` // loyalty user, nil for anonymous orders
	User   *User `json:"-"`

	Items []OrderItem `json:"items,omitempty"`
}
