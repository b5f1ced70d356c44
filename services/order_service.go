package services

import (
	"errors"
	"fmt"

	"github.com/itsmelouis/kiosko/entity"
	"github.com/itsmelouis/kiosko/utils"
)

var ErrCartEmpty = errors.New("cart is empty")

// Default table token when the kiosk was not asked for a dine mode.
const defaultTableToken = "BORNE-1"

// OrderStore is the persistence collaborator. The adapter never catches its
// errors; they propagate so the kiosk can offer a retry with the cart intact.
type OrderStore interface {
	CreateOrder(o *entity.Order, pointsEarned int) error
}

// OrderNotifier receives placed orders, e.g. the kitchen display hub.
type OrderNotifier interface {
	OrderPlaced(o *entity.Order)
}

type OrderService struct {
	Carts    *CartService
	Store    OrderStore
	Notifier OrderNotifier // optional
}

func NewOrderService(carts *CartService, store OrderStore) *OrderService {
	return &OrderService{Carts: carts, Store: store}
}

type SubmitOrderRes struct {
	ID          uint    `json:"id"`
	Reference   string  `json:"reference"`
	TableNumber string  `json:"tableNumber"`
	Total       float64 `json:"total"`
}

// TableToken maps the dine mode to the location token stored on the order.
func TableToken(mode entity.DineMode) string {
	switch mode {
	case entity.DineModeDineIn:
		return "SUR-PLACE"
	case entity.DineModeTakeaway:
		return "A-EMPORTER"
	default:
		return defaultTableToken
	}
}

// OrderReference derives the short reference shown on the confirmation
// screen from the persisted id, so a reference always maps back to its order.
func OrderReference(orderID uint) string {
	return fmt.Sprintf("%c-%03d", 'A'+rune(orderID%26), orderID%1000)
}

// Submit snapshots the session's cart, persists it as an order and clears
// the cart. The cart is only cleared after the store commits; any store
// error leaves it untouched.
func (s *OrderService) Submit(sessionID string) (*SubmitOrderRes, error) {
	cart := s.Carts.Snapshot(sessionID)
	if len(cart.Items) == 0 {
		return nil, ErrCartEmpty
	}

	total := utils.CartTotal(cart.Items)
	order := entity.Order{
		TableNumber: TableToken(cart.DineMode),
		TotalAmount: total,
		Status:      entity.OrderStatusPending,
	}

	points := 0
	if cart.User != nil {
		uid := cart.User.ID
		order.UserID = &uid
		points = utils.LoyaltyPoints(total)
	}

	for _, it := range cart.Items {
		oi := entity.OrderItem{
			ProductID:   it.Product.ProductID,
			ProductName: it.Product.Name,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			LineTotal:   it.TotalPrice,
		}
		for _, sel := range it.SelectedOptions {
			oi.Selections = append(oi.Selections, entity.OrderItemSelection{
				OptionID:   sel.OptionID,
				Label:      sel.Label,
				PriceDelta: sel.PriceDelta,
			})
		}
		order.Items = append(order.Items, oi)
	}

	if err := s.Store.CreateOrder(&order, points); err != nil {
		return nil, err
	}

	s.Carts.Clear(sessionID)
	if s.Notifier != nil {
		s.Notifier.OrderPlaced(&order)
	}

	return &SubmitOrderRes{
		ID:          order.ID,
		Reference:   OrderReference(order.ID),
		TableNumber: order.TableNumber,
		Total:       order.TotalAmount,
	}, nil
}
