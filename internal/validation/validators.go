// Package validation implements the input rules for every entity payload.
// Each rule pipeline checks presence first, then bounds, then patterns,
// then cross-field constraints, short-circuiting per field while
// accumulating errors across fields.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	apperrors "garage/internal/errors"
)

// RequiredString rejects empty or whitespace-only values. The value is
// returned unchanged, not trimmed.
func RequiredString(value, field string) (string, *apperrors.FieldError) {
	if strings.TrimSpace(value) == "" {
		return "", &apperrors.FieldError{
			Field:   field,
			Message: fmt.Sprintf("%s cannot be empty or spaces only", field),
		}
	}
	return value, nil
}

// OptionalString normalizes optional text: nil stays nil, whitespace-only
// becomes nil, anything else is trimmed.
func OptionalString(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// MatchPattern fails with message unless the entire value matches pattern.
// The pattern must be anchored by the caller; match is full-string, not search.
func MatchPattern(value string, pattern *regexp.Regexp, field, message string) *apperrors.FieldError {
	if !pattern.MatchString(value) {
		return &apperrors.FieldError{Field: field, Message: message}
	}
	return nil
}

// OptionalMatchPattern applies MatchPattern only when value is present.
func OptionalMatchPattern(value *string, pattern *regexp.Regexp, field, message string) *apperrors.FieldError {
	if value == nil {
		return nil
	}
	return MatchPattern(*value, pattern, field, message)
}

// MaxLen rejects values longer than max runes.
func MaxLen(value string, max int, field string) *apperrors.FieldError {
	if len([]rune(value)) > max {
		return &apperrors.FieldError{
			Field:   field,
			Message: fmt.Sprintf("%s must be at most %d characters", field, max),
		}
	}
	return nil
}

// MinInt rejects values below min.
func MinInt(value, min int, field string) *apperrors.FieldError {
	if value < min {
		return &apperrors.FieldError{
			Field:   field,
			Message: fmt.Sprintf("%s must be greater than or equal to %d", field, min),
		}
	}
	return nil
}

// OptionalMinInt applies MinInt only when value is present.
func OptionalMinInt(value *int, min int, field string) *apperrors.FieldError {
	if value == nil {
		return nil
	}
	return MinInt(*value, min, field)
}

// EgressNotBeforeEntry rejects an egress date earlier than the entry date.
// Either side missing passes; equal dates pass.
func EgressNotBeforeEntry(entry, egress *time.Time) *apperrors.FieldError {
	if entry != nil && egress != nil && egress.Before(*entry) {
		return &apperrors.FieldError{
			Field:   "egress_date",
			Message: "Egress date cannot be earlier than entry date",
		}
	}
	return nil
}
