package message

import (
	"context"

	domain "github.com/BruksfildServices01/trainer-marketplace/internal/domain/message"
	"github.com/BruksfildServices01/trainer-marketplace/internal/dto"
)

type ListMessagesForUser struct {
	repo domain.Repository
}

func NewListMessagesForUser(repo domain.Repository) *ListMessagesForUser {
	return &ListMessagesForUser{repo: repo}
}

func (uc *ListMessagesForUser) Execute(
	ctx context.Context,
	userID string,
	box string,
) (*dto.MessageListDTO, error) {

	all, err := uc.repo.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	b := domain.ParseBox(box)
	return &dto.MessageListDTO{
		Box:      string(b),
		Messages: domain.InBox(all, userID, b),
		Unread:   domain.CountUnread(all, userID),
	}, nil
}
