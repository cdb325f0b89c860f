package user

import "github.com/BruksfildServices01/trainer-marketplace/internal/httperr"

var (
	ErrNotFound           = httperr.Register("user_not_found", httperr.KindNotFound)
	ErrEmailTaken         = httperr.Register("email_taken", httperr.KindConflict)
	ErrInvalidCredentials = httperr.Register("invalid_credentials", httperr.KindUnauthorized)
	ErrInvalidRole        = httperr.Register("invalid_role", httperr.KindValidation)
	ErrInvalidEmailDomain = httperr.Register("invalid_email_domain", httperr.KindValidation)
)
