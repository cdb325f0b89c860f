package message

import (
	"context"

	"github.com/BruksfildServices01/trainer-marketplace/internal/audit"
	domain "github.com/BruksfildServices01/trainer-marketplace/internal/domain/message"
	"github.com/BruksfildServices01/trainer-marketplace/internal/models"
)

type MarkMessageRead struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewMarkMessageRead(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *MarkMessageRead {
	return &MarkMessageRead{
		repo:  repo,
		audit: audit,
	}
}

// Execute flips read to true. Marking an already read message succeeds and
// changes nothing.
func (uc *MarkMessageRead) Execute(
	ctx context.Context,
	actorID string,
	messageID string,
) (*models.Message, error) {

	changed := false
	m, err := uc.repo.Update(ctx, messageID, func(m *models.Message) error {
		if m.ReceiverID != actorID {
			return domain.ErrForbidden
		}
		changed = !m.Read
		m.Read = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	if changed {
		uc.audit.Dispatch(audit.Event{
			UserID:   actorID,
			Action:   "read",
			Entity:   "message",
			EntityID: m.ID,
		})
	}

	return m, nil
}
