package validation

import (
	"regexp"
	"strings"
	"unicode"

	apperrors "garage/internal/errors"
	"garage/internal/model"
)

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)

var uppercasePattern = regexp.MustCompile(`[A-Z]`)

const (
	minUsernameLen = 3
	maxUsernameLen = 25
	minPasswordLen = 6

	passwordSpecials = `!@#$%^&*(),.?":{}|<>`
)

// UserCreate is the payload for creating a user. Role defaults to EMPLOYEE
// when absent.
type UserCreate struct {
	Username string     `json:"username"`
	Password string     `json:"password"`
	Role     model.Role `json:"role"`
}

// Validate checks the payload and applies the role default.
func (p *UserCreate) Validate() error {
	var errs apperrors.ValidationErrors

	if ferr := validateUsername(p.Username); ferr != nil {
		errs = append(errs, *ferr)
	}
	if ferr := validatePassword(p.Password); ferr != nil {
		errs = append(errs, *ferr)
	}

	if p.Role == "" {
		p.Role = model.RoleEmployee
	}
	if !p.Role.Valid() {
		errs = append(errs, apperrors.FieldError{
			Field:   "role",
			Message: "role must be ADMIN or EMPLOYEE",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UserUpdate is the payload for a partial user update; nil means
// "do not change".
type UserUpdate struct {
	Username *string     `json:"username"`
	Password *string     `json:"password"`
	Role     *model.Role `json:"role"`
}

// Validate checks only the fields that are present.
func (p *UserUpdate) Validate() error {
	var errs apperrors.ValidationErrors

	if p.Username != nil {
		if ferr := validateUsername(*p.Username); ferr != nil {
			errs = append(errs, *ferr)
		}
	}
	if p.Password != nil {
		if ferr := validatePassword(*p.Password); ferr != nil {
			errs = append(errs, *ferr)
		}
	}
	if p.Role != nil && !p.Role.Valid() {
		errs = append(errs, apperrors.FieldError{
			Field:   "role",
			Message: "role must be ADMIN or EMPLOYEE",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validateUsername(username string) *apperrors.FieldError {
	if _, ferr := RequiredString(username, "username"); ferr != nil {
		return ferr
	}
	if n := len([]rune(username)); n < minUsernameLen || n > maxUsernameLen {
		return &apperrors.FieldError{
			Field:   "username",
			Message: "username must be between 3 and 25 characters",
		}
	}
	return MatchPattern(username, usernamePattern, "username",
		"username may only contain letters, digits, underscores, dots and hyphens")
}

// validatePassword enforces the password policy: at least 6 characters, one
// uppercase letter, one special character, and no whitespace anywhere.
func validatePassword(password string) *apperrors.FieldError {
	fail := func(msg string) *apperrors.FieldError {
		return &apperrors.FieldError{Field: "password", Message: msg}
	}

	if len(password) < minPasswordLen {
		return fail("password must be at least 6 characters")
	}
	for _, r := range password {
		if unicode.IsSpace(r) {
			return fail("password cannot contain whitespace")
		}
	}
	if !uppercasePattern.MatchString(password) {
		return fail("password must contain at least one uppercase letter")
	}
	if !strings.ContainsAny(password, passwordSpecials) {
		return fail(`password must contain at least one special character (!@#$%^&*(),.?":{}|<>)`)
	}
	return nil
}
