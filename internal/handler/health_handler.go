package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"stayfinder/internal/errors"
	"stayfinder/internal/health"
)

// HealthHandler reports data store connectivity. Informational only.
type HealthHandler struct {
	checker *health.Checker
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(checker *health.Checker) *HealthHandler {
	return &HealthHandler{checker: checker}
}

// Health godoc
// @Summary Report database connectivity
// @Tags health
// @Produce json
// @Success 200 {object} Envelope
// @Failure 503 {object} Envelope
// @Router /health [get]
func (h *HealthHandler) Health(c echo.Context) error {
	if !h.checker.Healthy(c.Request().Context()) {
		return fail(c, errors.ErrUnavailable)
	}
	return respondData(c, http.StatusOK, map[string]string{"database": "connected"})
}
