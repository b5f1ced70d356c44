package repository

import (
	"errors"

	"github.com/itsmelouis/kiosko/entity"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

// GetByLoyaltyQR returns nil (no error) when no customer carries that code.
func (r *UserRepository) GetByLoyaltyQR(qrCode string) (*entity.User, error) {
	var u entity.User
	if err := r.DB.Where("loyalty_qr = ?", qrCode).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetByID(id uint) (*entity.User, error) {
	var u entity.User
	if err := r.DB.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetStaffByUsername(username string) (*entity.Staff, error) {
	var s entity.Staff
	if err := r.DB.Where("username = ?", username).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}
