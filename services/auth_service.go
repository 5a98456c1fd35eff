package services

import (
	"errors"
	"time"

	"github.com/carlossbezerra/SuperDelivery/entity"
	"github.com/carlossbezerra/SuperDelivery/repository"
	"github.com/carlossbezerra/SuperDelivery/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	UserRepo *repository.UserRepository
	CartSvc  *CartService

	JWTSecret string
	JWTTTL    time.Duration
}

func NewAuthService(ur *repository.UserRepository, cs *CartService, secret string, ttl time.Duration) *AuthService {
	return &AuthService{UserRepo: ur, CartSvc: cs, JWTSecret: secret, JWTTTL: ttl}
}

// Profiles lists the demo accounts for the profile selector screen.
func (s *AuthService) Profiles() ([]entity.User, error) {
	return s.UserRepo.ListProfiles()
}

// Login selects the session profile and issues the token that gates the
// matching dashboard.
func (s *AuthService) Login(email, password string) (*entity.User, string, error) {
	u, err := s.UserRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}
	token, err := utils.GenerateToken(u.ID, u.Role, s.JWTSecret, s.JWTTTL)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// Logout tears the session down. The customer's cart does not survive
// the session, so it is cleared here.
func (s *AuthService) Logout(userID uint, role string) error {
	if role == entity.RoleCustomer {
		return s.CartSvc.Clear(userID)
	}
	return nil
}
