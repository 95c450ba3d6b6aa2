package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"

	apperrors "garage/internal/errors"
)

// validate backs the syntactic email check; the rest of the rules are the
// explicit pipelines below.
var validate = validator.New()

var phonePattern = regexp.MustCompile(`^[0-9+\-\s]+$`)

const (
	maxClientNameLen = 50
	maxPhoneLen      = 20
	maxEmailLen      = 50
)

// ClientCreate is the payload for creating a client.
type ClientCreate struct {
	Name        string  `json:"name"`
	PhoneNumber string  `json:"phone_number"`
	Email       *string `json:"email"`
}

// Validate checks and normalizes the payload in place.
func (p *ClientCreate) Validate() error {
	var errs apperrors.ValidationErrors

	if _, ferr := RequiredString(p.Name, "name"); ferr != nil {
		errs = append(errs, *ferr)
	} else if ferr := MaxLen(p.Name, maxClientNameLen, "name"); ferr != nil {
		errs = append(errs, *ferr)
	}

	if ferr := validatePhone(p.PhoneNumber); ferr != nil {
		errs = append(errs, *ferr)
	}

	p.Email = OptionalString(p.Email)
	if ferr := validateEmail(p.Email); ferr != nil {
		errs = append(errs, *ferr)
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ClientUpdate is the payload for a partial client update; nil means
// "do not change".
type ClientUpdate struct {
	Name        *string `json:"name"`
	PhoneNumber *string `json:"phone_number"`
	Email       *string `json:"email"`
}

// Validate checks only the fields that are present.
func (p *ClientUpdate) Validate() error {
	var errs apperrors.ValidationErrors

	if p.Name != nil {
		if _, ferr := RequiredString(*p.Name, "name"); ferr != nil {
			errs = append(errs, *ferr)
		} else if ferr := MaxLen(*p.Name, maxClientNameLen, "name"); ferr != nil {
			errs = append(errs, *ferr)
		}
	}

	if p.PhoneNumber != nil {
		if ferr := validatePhone(*p.PhoneNumber); ferr != nil {
			errs = append(errs, *ferr)
		}
	}

	p.Email = OptionalString(p.Email)
	if ferr := validateEmail(p.Email); ferr != nil {
		errs = append(errs, *ferr)
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validatePhone(phone string) *apperrors.FieldError {
	if _, ferr := RequiredString(phone, "phone_number"); ferr != nil {
		return ferr
	}
	if ferr := MaxLen(phone, maxPhoneLen, "phone_number"); ferr != nil {
		return ferr
	}
	return MatchPattern(phone, phonePattern, "phone_number",
		"phone_number may only contain digits, spaces, + and -")
}

func validateEmail(email *string) *apperrors.FieldError {
	if email == nil {
		return nil
	}
	if ferr := MaxLen(*email, maxEmailLen, "email"); ferr != nil {
		return ferr
	}
	if err := validate.Var(*email, "email"); err != nil {
		return &apperrors.FieldError{Field: "email", Message: "email is not a valid address"}
	}
	return nil
}
