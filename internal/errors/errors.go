package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrEmailInUse is returned when signing up with an already registered email.
	ErrEmailInUse = errors.New("email already in use")
	// ErrUserNotFound is returned when a user record cannot be resolved.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidCredentials is returned when the password does not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrListingNotFound is returned when the referenced listing is absent.
	ErrListingNotFound = errors.New("listing not found")
	// ErrBookingNotFound is returned when the referenced booking is absent.
	ErrBookingNotFound = errors.New("booking not found")
	// ErrNotOwner is returned when the requester does not own the resource.
	ErrNotOwner = errors.New("unauthorized")
	// ErrMissingFields is returned when a booking request omits required fields.
	ErrMissingFields = errors.New("listingId, from, and to are required")
	// ErrInvalidStatus is returned for a booking status outside the allowed set.
	ErrInvalidStatus = errors.New("invalid status. Use 'confirmed' or 'cancelled'")
	// ErrInvalidDateRange is returned in strict mode when from is not before to.
	ErrInvalidDateRange = errors.New("'from' date must be before 'to' date")
	// ErrDatesUnavailable is returned in strict mode when the dates overlap an existing booking.
	ErrDatesUnavailable = errors.New("listing is already booked for the selected dates")
	// ErrBookingClosed is returned in strict mode when re-transitioning a terminal booking.
	ErrBookingClosed = errors.New("booking is already confirmed or cancelled")
	// ErrUnavailable is returned while the data store is unreachable.
	ErrUnavailable = errors.New("server is not available due to a database connection error")
)

// ValidationError carries itemized per-field complaints for a 400 response.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "validation failed"
}

// NewValidationError creates a ValidationError from field messages.
func NewValidationError(fields ...string) *ValidationError {
	return &ValidationError{Fields: fields}
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Message: message}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrListingNotFound),
		errors.Is(err, ErrBookingNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, ErrEmailInUse),
		errors.Is(err, ErrDatesUnavailable):
		return NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, ErrNotOwner):
		return NewHTTPError(http.StatusForbidden, err.Error())
	case errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrMissingFields),
		errors.Is(err, ErrInvalidStatus),
		errors.Is(err, ErrInvalidDateRange),
		errors.Is(err, ErrBookingClosed):
		return NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrUnavailable):
		return NewHTTPError(http.StatusServiceUnavailable, err.Error())
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}
