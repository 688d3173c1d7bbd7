package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Dosada05/championship/models"
	"golang.org/x/crypto/bcrypt"
)

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthService interface {
	Login(ctx context.Context, input LoginInput) (*models.Admin, error)
}

type authService struct {
	adminEmail   string
	passwordHash []byte
}

// NewAuthService checks logins against the configured admin account. With no
// account configured every login fails.
func NewAuthService(adminEmail, passwordHash string) AuthService {
	return &authService{
		adminEmail:   strings.ToLower(strings.TrimSpace(adminEmail)),
		passwordHash: []byte(passwordHash),
	}
}

func (s *authService) Login(_ context.Context, input LoginInput) (*models.Admin, error) {
	if s.adminEmail == "" || len(s.passwordHash) == 0 {
		return nil, ErrInvalidCredentials
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email != s.adminEmail {
		// Compare anyway: response time must not depend on the address.
		_ = bcrypt.CompareHashAndPassword(s.passwordHash, []byte(input.Password))
		return nil, ErrInvalidCredentials
	}

	err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(input.Password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to compare password hash: %w", err)
	}

	return &models.Admin{Email: s.adminEmail, Role: models.RoleAdmin}, nil
}
