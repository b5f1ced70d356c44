package services

import (
	"errors"
	"time"

	"github.com/itsmelouis/kiosko/repository"
	"github.com/itsmelouis/kiosko/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService signs kitchen staff in for the display screens.
type AuthService struct {
	Repo      *repository.UserRepository
	JWTSecret string
	JWTTTL    time.Duration
}

func NewAuthService(repo *repository.UserRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{Repo: repo, JWTSecret: secret, JWTTTL: ttl}
}

type LoginRes struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

func (s *AuthService) Login(username, password string) (*LoginRes, error) {
	staff, err := s.Repo.GetStaffByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(staff.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateStaffToken(staff.ID, staff.Role, s.JWTSecret, s.JWTTTL)
	if err != nil {
		return nil, err
	}
	return &LoginRes{Token: token, Username: staff.Username, Role: staff.Role}, nil
}
