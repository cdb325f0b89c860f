package trainer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/BruksfildServices01/trainer-marketplace/internal/audit"
	"github.com/BruksfildServices01/trainer-marketplace/internal/avatar"
	domain "github.com/BruksfildServices01/trainer-marketplace/internal/domain/trainer"
	"github.com/BruksfildServices01/trainer-marketplace/internal/models"
)

type UploadAvatar struct {
	repo  domain.Repository
	store avatar.Store
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewUploadAvatar(
	repo domain.Repository,
	store avatar.Store,
	audit *audit.Dispatcher,
) *UploadAvatar {
	return &UploadAvatar{
		repo:  repo,
		store: store,
		audit: audit,
		now:   time.Now,
	}
}

// Execute replaces the trainer's picture. The stored name is stable per
// trainer, so the URL carries a version query to defeat caches.
func (uc *UploadAvatar) Execute(
	ctx context.Context,
	userID string,
	r io.Reader,
) (*models.Trainer, error) {

	if _, err := uc.repo.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	data, err := avatar.Transcode(r)
	if errors.Is(err, avatar.ErrDecode) {
		return nil, domain.ErrInvalidImage
	}
	if err != nil {
		return nil, err
	}

	url, err := uc.store.Put(ctx, userID+".webp", data)
	if err != nil {
		return nil, err
	}

	now := uc.now().UTC()
	url = fmt.Sprintf("%s?v=%d", url, now.Unix())

	t, err := uc.repo.Update(ctx, userID, func(t *models.Trainer) error {
		t.AvatarURL = url
		t.UpdatedAt = now
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   "avatar_uploaded",
		Entity:   "trainer",
		EntityID: userID,
	})

	return t, nil
}
