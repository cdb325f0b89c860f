package message

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/trainer-marketplace/internal/audit"
	domain "github.com/BruksfildServices01/trainer-marketplace/internal/domain/message"
	userdomain "github.com/BruksfildServices01/trainer-marketplace/internal/domain/user"
	"github.com/BruksfildServices01/trainer-marketplace/internal/models"
)

// CreateMessageInput names are snapshots. Blank names are resolved from the
// user store at send time.
type CreateMessageInput struct {
	SenderID   string
	SenderName string

	ReceiverID   string
	ReceiverName string

	Subject string
	Body    string
}

type CreateMessage struct {
	repo  domain.Repository
	users userdomain.Repository
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewCreateMessage(
	repo domain.Repository,
	users userdomain.Repository,
	audit *audit.Dispatcher,
) *CreateMessage {
	return &CreateMessage{
		repo:  repo,
		users: users,
		audit: audit,
		now:   time.Now,
	}
}

func (uc *CreateMessage) Execute(
	ctx context.Context,
	in CreateMessageInput,
) (*models.Message, error) {

	if err := domain.ValidateBody(in.Body); err != nil {
		return nil, err
	}
	if in.SenderID == in.ReceiverID {
		return nil, domain.ErrSelfMessage
	}

	receiver, err := uc.users.GetByID(ctx, in.ReceiverID)
	if errors.Is(err, userdomain.ErrNotFound) {
		return nil, domain.ErrUnknownRecipient
	}
	if err != nil {
		return nil, err
	}
	if in.ReceiverName == "" {
		in.ReceiverName = receiver.Name
	}

	if in.SenderName == "" {
		sender, err := uc.users.GetByID(ctx, in.SenderID)
		if err != nil {
			return nil, err
		}
		in.SenderName = sender.Name
	}

	m := &models.Message{
		ID:           uuid.NewString(),
		SenderID:     in.SenderID,
		SenderName:   in.SenderName,
		ReceiverID:   in.ReceiverID,
		ReceiverName: in.ReceiverName,
		Subject:      strings.TrimSpace(in.Subject),
		Body:         strings.TrimSpace(in.Body),
		Read:         false,
		CreatedAt:    uc.now().UTC(),
	}

	if err := uc.repo.Create(ctx, m); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   in.SenderID,
		Action:   "sent",
		Entity:   "message",
		EntityID: m.ID,
		Metadata: map[string]any{
			"receiver_id": m.ReceiverID,
		},
	})

	return m, nil
}
