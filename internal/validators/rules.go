package validators

import (
	"regexp"
	"unicode"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	personNameRe   = regexp.MustCompile(`^[\p{L}\s'-]+$`)
	personalDataRe = regexp.MustCompile(`(?i)(tel[eé]fono|email|correo|m[oó]vil|direcci[oó]n|address|phone)`)
	phoneLikeRe    = regexp.MustCompile(`\+?\d[\d\s-]{7,}\d`)
	emailLikeRe    = regexp.MustCompile(`[^\s@]+@[^\s@]+\.[^\s@]+`)
)

// Register adds the custom tags to gin's binding validator. It must run once
// before the router serves requests.
func Register() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return RegisterOn(v)
}

func RegisterOn(v *validator.Validate) error {
	rules := map[string]validator.Func{
		"strongpassword": func(fl validator.FieldLevel) bool {
			return IsStrongPassword(fl.Field().String())
		},
		"personname": func(fl validator.FieldLevel) bool {
			return personNameRe.MatchString(fl.Field().String())
		},
		"nopersonaldata": func(fl validator.FieldLevel) bool {
			return !ContainsPersonalData(fl.Field().String())
		},
	}

	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}
	return nil
}

// IsStrongPassword requires a lower case letter, an upper case letter and a
// digit. Length is checked by min/max tags.
func IsStrongPassword(s string) bool {
	var lower, upper, digit bool
	for _, r := range s {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return lower && upper && digit
}

// ContainsPersonalData flags text that mentions or contains contact details.
func ContainsPersonalData(s string) bool {
	return personalDataRe.MatchString(s) ||
		phoneLikeRe.MatchString(s) ||
		emailLikeRe.MatchString(s)
}
