package booking

import "github.com/BruksfildServices01/trainer-marketplace/internal/httperr"

var (
	ErrNotFound          = httperr.Register("booking_not_found", httperr.KindNotFound)
	ErrForbidden         = httperr.Register("forbidden", httperr.KindForbidden)
	ErrInvalidTransition = httperr.Register("invalid_transition", httperr.KindConflict)
	ErrInvalidStatus     = httperr.Register("invalid_status", httperr.KindValidation)
	ErrInvalidDateTime   = httperr.Register("invalid_date_or_time", httperr.KindValidation)
	ErrInvalidSession    = httperr.Register("invalid_session_type", httperr.KindValidation)
	ErrNotesTooLong      = httperr.Register("notes_too_long", httperr.KindValidation)
	ErrInvalidPrice      = httperr.Register("invalid_price", httperr.KindValidation)
)
