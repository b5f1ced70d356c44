package utils

import (
	"regexp"
	"strings"
)

// Table tokens: TABLE_1..TABLE_99 without leading zero, or one of the two
// special modes. Strict, no whitespace tolerance.
var tableNumberRegex = regexp.MustCompile(`^TABLE_([1-9]|[1-9][0-9])$`)

// Loyalty QR codes are textual UUID v4: version nibble 4, variant in 8/9/a/b.
// Kept as a regex rather than uuid.Parse, which also accepts braces, URNs
// and 32-hex forms the kiosk scanner never produces.
var loyaltyQRRegex = regexp.MustCompile(`^(?i)[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

func IsValidTableNumber(tableNumber string) bool {
	if tableNumber == "" {
		return false
	}
	if tableNumber == "A-EMPORTER" || tableNumber == "SUR-PLACE" {
		return true
	}
	return tableNumberRegex.MatchString(tableNumber)
}

func IsValidLoyaltyQR(qrCode string) bool {
	if strings.TrimSpace(qrCode) == "" {
		return false
	}
	return loyaltyQRRegex.MatchString(qrCode)
}

// IsValidQuantity accepts integers from 1 to 99.
func IsValidQuantity(quantity int) bool {
	return quantity >= 1 && quantity <= 99
}

// SanitizeString trims the input and collapses every inner whitespace run
// (tabs and newlines included) to a single space.
func SanitizeString(input string) string {
	return strings.Join(strings.Fields(input), " ")
}
