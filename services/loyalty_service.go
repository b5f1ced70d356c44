package services

import (
	"github.com/itsmelouis/kiosko/entity"
	"github.com/itsmelouis/kiosko/repository"
	"github.com/itsmelouis/kiosko/utils"
)

// LoyaltyService is the identity provider: scanned QR code → customer.
type LoyaltyService struct {
	Repo *repository.UserRepository
}

func NewLoyaltyService(repo *repository.UserRepository) *LoyaltyService {
	return &LoyaltyService{Repo: repo}
}

// UserByQR returns (nil, nil) for unknown or malformed codes; a scan that
// matches nobody is not an error, the kiosk just keeps the guest flow.
func (s *LoyaltyService) UserByQR(qrCode string) (*entity.User, error) {
	code := utils.SanitizeString(qrCode)
	if !utils.IsValidLoyaltyQR(code) {
		return nil, nil
	}
	return s.Repo.GetByLoyaltyQR(code)
}
