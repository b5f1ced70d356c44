package repository

import (
	"time"

	"github.com/itsmelouis/kiosko/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// CreateOrder persists an order together with its items, their option
// selections and, for loyalty customers, the points movement — all in one
// transaction. Either everything lands or nothing does.
func (r *OrderRepository) CreateOrder(o *entity.Order, pointsEarned int) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(o).Error; err != nil {
			return err
		}
		if o.UserID != nil && pointsEarned > 0 {
			hist := entity.LoyaltyHistory{
				UserID:       *o.UserID,
				OrderID:      o.ID,
				PointsChange: pointsEarned,
			}
			if err := tx.Create(&hist).Error; err != nil {
				return err
			}
			if err := tx.Model(&entity.User{}).
				Where("id = ?", *o.UserID).
				Update("points", gorm.Expr("points + ?", pointsEarned)).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Preload("Items.Selections").First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

type OrderSummary struct {
	ID          uint      `json:"id"`
	TableNumber string    `json:"tableNumber"`
	TotalAmount float64   `json:"totalAmount"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// GET /staff/orders → newest first, for the kitchen display
func (r *OrderRepository) ListRecentOrders(limit int) ([]OrderSummary, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []OrderSummary
	err := r.DB.Model(&entity.Order{}).
		Select("id, table_number, total_amount, status, created_at").
		Order("id DESC").Limit(limit).
		Scan(&out).Error
	return out, err
}

// UpdateStatusFromTo flips an order's status only when it still is in the
// expected state, so two kitchen screens cannot double-advance an order.
func (r *OrderRepository) UpdateStatusFromTo(orderID uint, from, to string) (bool, error) {
	res := r.DB.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Update("status", to)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
