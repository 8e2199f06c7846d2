package services

import (
	"errors"
	"testing"
	"time"

	"product-catalog/models"
	"product-catalog/utils"
)

func TestAuthServiceLogin(t *testing.T) {
	hash, err := utils.HashPassword("let-me-in")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	svc := NewAuthService("admin@example.com", hash, "s3cret", time.Hour)

	resp, err := svc.Login(models.LoginRequest{Email: "Admin@Example.com", Password: "let-me-in"})
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	claims, err := utils.ValidateToken("s3cret", resp.Token)
	if err != nil {
		t.Fatalf("issued token does not validate: %v", err)
	}
	if claims.Role != utils.RoleAdmin {
		t.Errorf("role = %q, want admin", claims.Role)
	}

	for _, req := range []models.LoginRequest{
		{Email: "admin@example.com", Password: "wrong"},
		{Email: "someone@example.com", Password: "let-me-in"},
	} {
		if _, err := svc.Login(req); !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("Login(%+v) error = %v, want ErrInvalidCredentials", req, err)
		}
	}
}

func TestAuthServiceLoginWithoutConfiguredHash(t *testing.T) {
	svc := NewAuthService("admin@example.com", "", "s3cret", time.Hour)
	if _, err := svc.Login(models.LoginRequest{Email: "admin@example.com", Password: ""}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}
