package handler

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"stayfinder/internal/errors"
)

// Envelope is the uniform response shape of every endpoint.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Errors  []string    `json:"errors,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func respondData(c echo.Context, status int, data interface{}) error {
	return c.JSON(status, Envelope{Success: true, Data: data})
}

func respondMessage(c echo.Context, status int, message string) error {
	return c.JSON(status, Envelope{Success: true, Message: message})
}

func respondDataMessage(c echo.Context, status int, data interface{}, message string) error {
	return c.JSON(status, Envelope{Success: true, Data: data, Message: message})
}

// fail renders a domain error as an envelope. Internal faults are returned
// as-is so the process-wide error handler can log them and decide how much
// detail to expose.
func fail(c echo.Context, err error) error {
	var ve *errors.ValidationError
	if stderrors.As(err, &ve) {
		return c.JSON(http.StatusBadRequest, Envelope{
			Success: false,
			Message: "Validation failed",
			Errors:  ve.Fields,
		})
	}

	httpErr := errors.MapErrorToHTTP(err)
	if httpErr.StatusCode == http.StatusInternalServerError {
		return err
	}
	return c.JSON(httpErr.StatusCode, Envelope{Success: false, Message: httpErr.Message})
}

// itemize flattens validator errors into per-field complaints.
func itemize(err error) []string {
	var ves validator.ValidationErrors
	if !stderrors.As(err, &ves) {
		return []string{err.Error()}
	}

	msgs := make([]string, 0, len(ves))
	for _, fe := range ves {
		field := fe.Field()
		field = strings.ToLower(field[:1]) + field[1:]
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, field+" is required")
		case "email":
			msgs = append(msgs, field+" must be a valid email address")
		case "min":
			msgs = append(msgs, fmt.Sprintf("%s must be at least %s characters", field, fe.Param()))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of: %s", field, fe.Param()))
		default:
			msgs = append(msgs, field+" is invalid")
		}
	}
	return msgs
}

// bindAndValidate binds the JSON body and runs struct validation, converting
// failures into itemized ValidationErrors.
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return errors.NewValidationError("invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return &errors.ValidationError{Fields: itemize(err)}
	}
	return nil
}
