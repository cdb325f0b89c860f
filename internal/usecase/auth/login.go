package auth

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	domain "github.com/BruksfildServices01/trainer-marketplace/internal/domain/user"
	"github.com/BruksfildServices01/trainer-marketplace/internal/models"
)

type Login struct {
	users domain.Repository
}

func NewLogin(users domain.Repository) *Login {
	return &Login{users: users}
}

// Execute does not tell an unknown email apart from a wrong password.
func (uc *Login) Execute(
	ctx context.Context,
	email string,
	password string,
) (*models.User, error) {

	u, err := uc.users.GetByEmail(ctx, domain.NormalizeEmail(email))
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return u, nil
}
