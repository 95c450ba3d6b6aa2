package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrInvalidCredentials is returned when username or password is incorrect.
	// The same error covers "no such user" so login never leaks which part failed.
	ErrInvalidCredentials = errors.New("incorrect username or password")
	// ErrInvalidToken is returned for any token that fails verification:
	// bad signature, malformed structure, or expiry in the past.
	ErrInvalidToken = errors.New("could not validate credentials")
	// ErrInvalidRefreshToken is returned when a refresh token is invalid,
	// expired, of the wrong kind, or its subject no longer exists.
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	// ErrForbidden is returned when an authenticated user lacks the required role.
	ErrForbidden = errors.New("insufficient privileges")

	// ErrUserNotFound is returned when a user id does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrClientNotFound is returned when a client id does not exist.
	ErrClientNotFound = errors.New("client not found")
	// ErrVehicleNotFound is returned when a vehicle id does not exist.
	ErrVehicleNotFound = errors.New("vehicle not found")
	// ErrWorkOrderNotFound is returned when a work order id does not exist.
	ErrWorkOrderNotFound = errors.New("work order not found")
	// ErrOwnerNotFound is returned when a vehicle references a missing client.
	ErrOwnerNotFound = errors.New("owner not found")

	// ErrUsernameTaken is returned on a duplicate username.
	ErrUsernameTaken = errors.New("username already exists")
	// ErrPlateTaken is returned on a duplicate plate number.
	ErrPlateTaken = errors.New("plate number already registered")
	// ErrVehicleOwnerMismatch is returned when a work order references a
	// vehicle that does not belong to the claimed client.
	ErrVehicleOwnerMismatch = errors.New("vehicle does not belong to the given client")
)

// FieldError describes a single failed validation rule.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidationErrors collects field errors for one payload. Validation
// short-circuits per field but accumulates across fields.
type ValidationErrors []FieldError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	msg := e[0].Error()
	for _, fe := range e[1:] {
		msg += "; " + fe.Error()
	}
	return msg
}

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error  string       `json:"error"`
	Code   string       `json:"code"`
	Fields []FieldError `json:"fields,omitempty"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
	Fields     []FieldError
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error:  e.Message,
		Code:   e.Code,
		Fields: e.Fields,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Validation maps to 422,
// auth to 401, authz to 403, missing rows to 404 and conflicts to 400.
func MapErrorToHTTP(err error) *HTTPError {
	var verrs ValidationErrors
	if errors.As(err, &verrs) {
		return &HTTPError{
			StatusCode: http.StatusUnprocessableEntity,
			Message:    "validation failed",
			Code:       "VALIDATION_ERROR",
			Fields:     verrs,
		}
	}

	switch {
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrInvalidToken):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_TOKEN")
	case errors.Is(err, ErrInvalidRefreshToken):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_REFRESH_TOKEN")
	case errors.Is(err, ErrForbidden):
		return NewHTTPError(http.StatusForbidden, err.Error(), "FORBIDDEN")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrClientNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "CLIENT_NOT_FOUND")
	case errors.Is(err, ErrVehicleNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "VEHICLE_NOT_FOUND")
	case errors.Is(err, ErrWorkOrderNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "WORK_ORDER_NOT_FOUND")
	case errors.Is(err, ErrOwnerNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "OWNER_NOT_FOUND")
	case errors.Is(err, ErrUsernameTaken):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "USERNAME_TAKEN")
	case errors.Is(err, ErrPlateTaken):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "PLATE_TAKEN")
	case errors.Is(err, ErrVehicleOwnerMismatch):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "VEHICLE_OWNER_MISMATCH")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
