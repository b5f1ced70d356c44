package utils

import (
	"fmt"
	"math"

	"github.com/itsmelouis/kiosko/entity"
)

// UnitPrice is the base price plus the signed deltas of the selected
// options. No rounding happens here; display formatting is separate.
func UnitPrice(basePrice float64, selectedOptions []entity.SelectedOption) float64 {
	price := basePrice
	for _, opt := range selectedOptions {
		price += opt.PriceDelta
	}
	return price
}

// ItemTotal is the unit price times the quantity. Quantity is validated
// upstream (IsValidQuantity); non-positive values are undefined here.
func ItemTotal(basePrice float64, selectedOptions []entity.SelectedOption, quantity int) float64 {
	return UnitPrice(basePrice, selectedOptions) * float64(quantity)
}

// CartTotal sums the stored line totals. Empty carts total 0.
func CartTotal(items []entity.CartItem) float64 {
	total := 0.0
	for _, it := range items {
		total += it.TotalPrice
	}
	return total
}

// CartItemCount sums the quantities across lines.
func CartItemCount(items []entity.CartItem) int {
	count := 0
	for _, it := range items {
		count += it.Quantity
	}
	return count
}

// LoyaltyPoints awards one point per whole euro spent.
func LoyaltyPoints(totalAmount float64) int {
	return int(math.Floor(totalAmount))
}

// FormatPrice renders an amount as "12.50 €", rounding half-up at the
// second decimal.
func FormatPrice(amount float64) string {
	return fmt.Sprintf("%.2f €", math.Round(amount*100)/100)
}
