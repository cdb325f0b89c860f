package auth

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/trainer-marketplace/internal/audit"
	trainerdomain "github.com/BruksfildServices01/trainer-marketplace/internal/domain/trainer"
	domain "github.com/BruksfildServices01/trainer-marketplace/internal/domain/user"
	"github.com/BruksfildServices01/trainer-marketplace/internal/models"
)

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

type Register struct {
	users    domain.Repository
	trainers trainerdomain.Repository
	audit    *audit.Dispatcher

	// checkDomain is nil when email domains are not verified.
	checkDomain func(email string) bool
	cost        int
	now         func() time.Time
}

func NewRegister(
	users domain.Repository,
	trainers trainerdomain.Repository,
	audit *audit.Dispatcher,
	checkDomain func(email string) bool,
) *Register {
	return &Register{
		users:       users,
		trainers:    trainers,
		audit:       audit,
		checkDomain: checkDomain,
		cost:        bcrypt.DefaultCost,
		now:         time.Now,
	}
}

// Execute creates the user. A trainer also gets an empty public profile so
// it shows up in the catalog right away.
func (uc *Register) Execute(
	ctx context.Context,
	in RegisterInput,
) (*models.User, error) {

	role, err := domain.ParseRole(in.Role)
	if err != nil {
		return nil, err
	}

	email := domain.NormalizeEmail(in.Email)

	if uc.checkDomain != nil && !uc.checkDomain(email) {
		return nil, domain.ErrInvalidEmailDomain
	}

	_, err = uc.users.GetByEmail(ctx, email)
	if err == nil {
		return nil, domain.ErrEmailTaken
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), uc.cost)
	if err != nil {
		return nil, err
	}

	now := uc.now().UTC()
	u := &models.User{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(in.Name),
		Email:        email,
		PasswordHash: string(hashed),
		Role:         role,
		CreatedAt:    now,
	}

	if err := uc.users.Create(ctx, u); err != nil {
		return nil, err
	}

	if role == models.RoleTrainer {
		profile := &models.Trainer{
			UserID:      u.ID,
			Name:        u.Name,
			Specialties: []string{},
			UpdatedAt:   now,
		}
		if err := uc.trainers.Save(ctx, profile); err != nil {
			// without a profile the account is unusable and would block a retry
			if delErr := uc.users.Delete(ctx, u.ID); delErr != nil {
				slog.ErrorContext(ctx, "rolling back trainer registration",
					"userId", u.ID,
					"error", delErr,
				)
			}
			return nil, err
		}
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   u.ID,
		Action:   "registered",
		Entity:   "user",
		EntityID: u.ID,
		Metadata: map[string]any{
			"role": string(role),
		},
	})

	return u, nil
}
