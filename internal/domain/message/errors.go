package message

import "github.com/BruksfildServices01/trainer-marketplace/internal/httperr"

var (
	ErrNotFound         = httperr.Register("message_not_found", httperr.KindNotFound)
	ErrForbidden        = httperr.Register("forbidden", httperr.KindForbidden)
	ErrEmptyBody        = httperr.Register("empty_message", httperr.KindValidation)
	ErrBodyTooLong      = httperr.Register("message_too_long", httperr.KindValidation)
	ErrSelfMessage      = httperr.Register("cannot_message_self", httperr.KindValidation)
	ErrUnknownRecipient = httperr.Register("recipient_not_found", httperr.KindNotFound)
)
