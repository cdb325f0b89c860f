package message

import (
	"strings"

	"github.com/BruksfildServices01/trainer-marketplace/internal/models"
)

const MaxBodyLength = 500

type Box string

const (
	BoxAll   Box = "all"
	BoxInbox Box = "inbox"
	BoxSent  Box = "sent"
)

// ParseBox falls back to BoxAll for unknown values.
func ParseBox(s string) Box {
	switch Box(s) {
	case BoxInbox, BoxSent:
		return Box(s)
	}
	return BoxAll
}

func ValidateBody(body string) error {
	trimmed := strings.TrimSpace(body)
	if trimmed == "" {
		return ErrEmptyBody
	}
	if len([]rune(trimmed)) > MaxBodyLength {
		return ErrBodyTooLong
	}
	return nil
}

// Involves reports whether userID sent or received m.
func Involves(m models.Message, userID string) bool {
	return m.SenderID == userID || m.ReceiverID == userID
}

// InBox filters msgs for userID keeping their order.
func InBox(msgs []models.Message, userID string, box Box) []models.Message {
	out := make([]models.Message, 0, len(msgs))
	for _, m := range msgs {
		switch box {
		case BoxInbox:
			if m.ReceiverID != userID {
				continue
			}
		case BoxSent:
			if m.SenderID != userID {
				continue
			}
		default:
			if !Involves(m, userID) {
				continue
			}
		}
		out = append(out, m)
	}
	return out
}

func CountUnread(msgs []models.Message, userID string) int {
	n := 0
	for _, m := range msgs {
		if m.ReceiverID == userID && !m.Read {
			n++
		}
	}
	return n
}
