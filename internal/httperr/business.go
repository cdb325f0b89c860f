package httperr

import "errors"

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

// Kind groups business codes by the HTTP status they map to.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindConflict
)

var kinds = map[string]Kind{}

// Register binds a business code to a Kind and returns the error value for it.
// Domain packages call it from their var blocks.
func Register(code string, kind Kind) error {
	kinds[code] = kind
	return BusinessError{Code: code}
}

func KindOf(err error) Kind {
	var be BusinessError
	if !errors.As(err, &be) {
		return KindInternal
	}
	if k, ok := kinds[be.Code]; ok {
		return k
	}
	return KindValidation
}
