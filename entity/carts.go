package entity

import (
	"github.com/google/uuid"
)

type DineMode string

const (
	DineModeDineIn   DineMode = "dine-in"
	DineModeTakeaway DineMode = "takeaway"
)

// SelectedOption is the value snapshot of a product option captured at
// selection time. Catalog edits never retroactively change a cart line.
type SelectedOption struct {
	OptionID   uint    `json:"optionId"`
	Label      string  `json:"label"`
	PriceDelta float64 `json:"priceDelta"`
}

// ProductSnapshot carries the part of a product a cart line depends on.
type ProductSnapshot struct {
	ProductID uint    `json:"productId"`
	Name      string  `json:"name"`
	BasePrice float64 `json:"basePrice"`
}

type CartItem struct {
	ID              string           `json:"id"`
	Product         ProductSnapshot  `json:"product"`
	Quantity        int              `json:"quantity"`
	SelectedOptions []SelectedOption `json:"selectedOptions"`
	UnitPrice       float64          `json:"unitPrice"`
	TotalPrice      float64          `json:"totalPrice"`
}

// Cart is the per-session in-memory aggregate. It is never persisted;
// only the order produced at checkout is.
type Cart struct {
	Items    []CartItem `json:"items"`
	User     *User      `json:"user,omitempty"`
	DineMode DineMode   `json:"dineMode,omitempty"`
	IsOpen   bool       `json:"isOpen"`
}

func NewCart() *Cart {
	return &Cart{Items: []CartItem{}}
}

func unitPrice(basePrice float64, opts []SelectedOption) float64 {
	price := basePrice
	for _, o := range opts {
		price += o.PriceDelta
	}
	return price
}

// AddItem always appends a fresh line, even when an identical product/option
// combination is already in the cart. Each add stays independently removable.
func (c *Cart) AddItem(p ProductSnapshot, quantity int, opts []SelectedOption) CartItem {
	unit := unitPrice(p.BasePrice, opts)
	item := CartItem{
		ID:              uuid.NewString(),
		Product:         p,
		Quantity:        quantity,
		SelectedOptions: append([]SelectedOption(nil), opts...),
		UnitPrice:       unit,
		TotalPrice:      unit * float64(quantity),
	}
	c.Items = append(c.Items, item)
	return item
}

// RemoveItem deletes the line with the given id. Unknown ids are a no-op.
func (c *Cart) RemoveItem(itemID string) {
	kept := c.Items[:0]
	for _, it := range c.Items {
		if it.ID != itemID {
			kept = append(kept, it)
		}
	}
	c.Items = kept
}

// UpdateQuantity replaces a line's quantity and recomputes its total from
// the unit price fixed at add time. A quantity of zero or less removes the
// line entirely. Unknown ids are a no-op.
func (c *Cart) UpdateQuantity(itemID string, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(itemID)
		return
	}
	for i := range c.Items {
		if c.Items[i].ID == itemID {
			c.Items[i].Quantity = quantity
			c.Items[i].TotalPrice = c.Items[i].UnitPrice * float64(quantity)
			return
		}
	}
}

// Clear empties the lines but keeps the user and dine mode; a full session
// reset is the registry's job.
func (c *Cart) Clear() {
	c.Items = []CartItem{}
}

func (c *Cart) ItemCount() int {
	count := 0
	for _, it := range c.Items {
		count += it.Quantity
	}
	return count
}

func (c *Cart) Total() float64 {
	total := 0.0
	for _, it := range c.Items {
		total += it.TotalPrice
	}
	return total
}

func (c *Cart) SetUser(u *User) {
	c.User = u
}

func (c *Cart) SetDineMode(mode DineMode) {
	c.DineMode = mode
}

func (c *Cart) SetCartOpen(open bool) {
	c.IsOpen = open
}
