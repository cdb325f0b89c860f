package user

import (
	"strings"

	"github.com/BruksfildServices01/trainer-marketplace/internal/models"
)

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func ParseRole(s string) (models.Role, error) {
	switch models.Role(s) {
	case models.RoleClient, models.RoleTrainer:
		return models.Role(s), nil
	}
	return "", ErrInvalidRole
}
