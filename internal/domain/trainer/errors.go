package trainer

import "github.com/BruksfildServices01/trainer-marketplace/internal/httperr"

var (
	ErrNotFound     = httperr.Register("trainer_not_found", httperr.KindNotFound)
	ErrNotTrainer   = httperr.Register("forbidden", httperr.KindForbidden)
	ErrInvalidImage = httperr.Register("invalid_image", httperr.KindValidation)

	ErrInvalidSpecialties = httperr.Register("invalid_specialties", httperr.KindValidation)
	ErrInvalidPrice       = httperr.Register("invalid_price", httperr.KindValidation)
	ErrInvalidExperience  = httperr.Register("invalid_experience", httperr.KindValidation)
	ErrInvalidBio         = httperr.Register("invalid_bio", httperr.KindValidation)
	ErrInvalidLocation    = httperr.Register("invalid_location", httperr.KindValidation)
)
