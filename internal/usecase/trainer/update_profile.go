package trainer

import (
	"context"
	"errors"
	"time"

	"github.com/BruksfildServices01/trainer-marketplace/internal/audit"
	domain "github.com/BruksfildServices01/trainer-marketplace/internal/domain/trainer"
	userdomain "github.com/BruksfildServices01/trainer-marketplace/internal/domain/user"
	"github.com/BruksfildServices01/trainer-marketplace/internal/models"
)

type UpdateTrainerProfile struct {
	repo  domain.Repository
	users userdomain.Repository
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewUpdateTrainerProfile(
	repo domain.Repository,
	users userdomain.Repository,
	audit *audit.Dispatcher,
) *UpdateTrainerProfile {
	return &UpdateTrainerProfile{
		repo:  repo,
		users: users,
		audit: audit,
		now:   time.Now,
	}
}

// Execute upserts the profile of userID, who must be a trainer.
func (uc *UpdateTrainerProfile) Execute(
	ctx context.Context,
	userID string,
	in domain.Profile,
) (*models.Trainer, error) {

	u, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u.Role != models.RoleTrainer {
		return nil, domain.ErrNotTrainer
	}

	p := in.Normalize()
	if err := p.Validate(); err != nil {
		return nil, err
	}

	now := uc.now().UTC()
	t, err := uc.repo.Update(ctx, userID, func(t *models.Trainer) error {
		p.ApplyTo(t)
		t.UpdatedAt = now
		return nil
	})
	if errors.Is(err, domain.ErrNotFound) {
		t = &models.Trainer{UserID: userID, Name: u.Name, UpdatedAt: now}
		p.ApplyTo(t)
		err = uc.repo.Save(ctx, t)
	}
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   "profile_updated",
		Entity:   "trainer",
		EntityID: userID,
	})

	return t, nil
}
