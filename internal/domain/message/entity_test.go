package message

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/trainer-marketplace/internal/models"
)

func TestInBox(t *testing.T) {
	msgs := []models.Message{
		{ID: "1", SenderID: "a", ReceiverID: "b"},
		{ID: "2", SenderID: "b", ReceiverID: "a", Read: true},
		{ID: "3", SenderID: "c", ReceiverID: "a"},
		{ID: "4", SenderID: "b", ReceiverID: "c"},
	}

	ids := func(ms []models.Message) []string {
		out := []string{}
		for _, m := range ms {
			out = append(out, m.ID)
		}
		return out
	}

	assert.Equal(t, []string{"1", "2", "3"}, ids(InBox(msgs, "a", BoxAll)))
	assert.Equal(t, []string{"2", "3"}, ids(InBox(msgs, "a", BoxInbox)))
	assert.Equal(t, []string{"1"}, ids(InBox(msgs, "a", BoxSent)))
	assert.Equal(t, 1, CountUnread(msgs, "a"))
}

func TestValidateBody(t *testing.T) {
	assert.ErrorIs(t, ValidateBody("   "), ErrEmptyBody)
	assert.ErrorIs(t, ValidateBody(strings.Repeat("x", MaxBodyLength+1)), ErrBodyTooLong)
	assert.NoError(t, ValidateBody("See you on Monday"))
}

func TestParseBox(t *testing.T) {
	assert.Equal(t, BoxInbox, ParseBox("inbox"))
	assert.Equal(t, BoxSent, ParseBox("sent"))
	assert.Equal(t, BoxAll, ParseBox("whatever"))
}
