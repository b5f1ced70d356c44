package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carried by kiosk session tokens and staff tokens. A kiosk token
// has SessionID set; a staff token has StaffID and Role.
type Claims struct {
	SessionID string `json:"sessionId,omitempty"`
	StaffID   uint   `json:"staffId,omitempty"`
	Role      string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// GenerateSessionToken mints the token a kiosk holds for the lifetime of
// one customer session. The session id keys the in-memory cart.
func GenerateSessionToken(sessionID, secret string, ttl time.Duration) (string, error) {
	claims := &Claims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// GenerateStaffToken mints a token for kitchen-display staff.
func GenerateStaffToken(staffID uint, role, secret string, ttl time.Duration) (string, error) {
	claims := &Claims{
		StaffID: staffID,
		Role:    role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
