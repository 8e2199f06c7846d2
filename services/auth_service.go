package services

import (
	"errors"
	"strings"
	"time"

	"product-catalog/models"
	"product-catalog/utils"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type AuthService struct {
	adminEmail   string
	passwordHash string
	jwtSecret    string
	jwtExpiry    time.Duration
}

func NewAuthService(adminEmail, passwordHash, jwtSecret string, jwtExpiry time.Duration) *AuthService {
	return &AuthService{
		adminEmail:   adminEmail,
		passwordHash: passwordHash,
		jwtSecret:    jwtSecret,
		jwtExpiry:    jwtExpiry,
	}
}

// Login checks the single catalog administrator account and issues a token.
func (s *AuthService) Login(req models.LoginRequest) (*models.LoginResponse, error) {
	if !strings.EqualFold(strings.TrimSpace(req.Email), s.adminEmail) {
		return nil, ErrInvalidCredentials
	}

	valid, err := utils.VerifyPassword(s.passwordHash, req.Password)
	if err != nil || !valid {
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := utils.GenerateToken(s.jwtSecret, s.adminEmail, utils.RoleAdmin, s.jwtExpiry)
	if err != nil {
		return nil, err
	}

	return &models.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt.Unix(),
	}, nil
}
