package services

import (
	"context"
	"math/rand"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

type PaymentResult struct {
	Success       bool   `json:"success"`
	TransactionID string `json:"transactionId,omitempty"`
	Error         string `json:"error,omitempty"`
}

// PaymentService is a mock authorizer standing in for the card terminal.
// A modeled decline (bad card, random failure) comes back as an
// unsuccessful PaymentResult, not an error; only transport problems
// (context cancelled) are errors.
type PaymentService struct {
	Delay       time.Duration
	FailureRate float64        // random decline probability
	Rand        func() float64 // injectable for tests
}

func NewPaymentService() *PaymentService {
	return &PaymentService{
		Delay:       time.Second,
		FailureRate: 0.1,
		Rand:        rand.Float64,
	}
}

// ProcessPayment simulates the terminal: cards ending in 0000 are always
// declined, plus a configurable random failure rate.
func (s *PaymentService) ProcessPayment(ctx context.Context, amount float64, cardNumber string) (*PaymentResult, error) {
	if s.Delay > 0 {
		t := time.NewTimer(s.Delay)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-t.C:
		}
	}

	cleaned := cleanCardNumber(cardNumber)
	if strings.HasSuffix(cleaned, "0000") {
		return &PaymentResult{
			Success: false,
			Error:   "Carte refusée. Veuillez réessayer avec une autre carte.",
		}, nil
	}
	if s.Rand != nil && s.Rand() < s.FailureRate {
		return &PaymentResult{
			Success: false,
			Error:   "Erreur de connexion. Veuillez réessayer.",
		}, nil
	}

	txn := "TXN-" + strconv.FormatInt(time.Now().UnixMilli(), 10) + "-" +
		strings.ToUpper(uuid.NewString()[:8])
	return &PaymentResult{Success: true, TransactionID: txn}, nil
}

var (
	cardNumberRegex = regexp.MustCompile(`^\d{16}$`)
	expiryRegex     = regexp.MustCompile(`^(\d{2})/(\d{2})$`)
	cvvRegex        = regexp.MustCompile(`^\d{3}$`)
)

func cleanCardNumber(cardNumber string) string {
	cleaned := strings.ReplaceAll(cardNumber, " ", "")
	return strings.ReplaceAll(cleaned, "-", "")
}

// ValidateCardNumber accepts 16 digits, spaces and dashes ignored.
func ValidateCardNumber(cardNumber string) bool {
	return cardNumberRegex.MatchString(cleanCardNumber(cardNumber))
}

// ValidateExpiryDate accepts MM/YY strictly in the future.
func ValidateExpiryDate(expiry string) bool {
	m := expiryRegex.FindStringSubmatch(expiry)
	if m == nil {
		return false
	}
	month, _ := strconv.Atoi(m[1])
	year, _ := strconv.Atoi(m[2])
	if month < 1 || month > 12 {
		return false
	}
	// the card is valid through the last day of its expiry month
	expiresAt := time.Date(2000+year, time.Month(month)+1, 1, 0, 0, 0, 0, time.Local)
	return expiresAt.After(time.Now())
}

func ValidateCVV(cvv string) bool {
	return cvvRegex.MatchString(cvv)
}
