package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"stayfinder/internal/auth"
	"stayfinder/internal/errors"
	"stayfinder/internal/model"
	"stayfinder/internal/service"
)

// BookingHandler handles booking endpoints.
type BookingHandler struct {
	bookingService service.BookingService
}

// NewBookingHandler creates a new booking handler.
func NewBookingHandler(bookingService service.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

// CreateBookingRequest represents a booking request. Dates are accepted as
// plain YYYY-MM-DD or full RFC 3339 timestamps.
type CreateBookingRequest struct {
	ListingID string `json:"listingId"`
	From      string `json:"from"`
	To        string `json:"to"`
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

// UpdateStatusRequest carries the host's decision on a booking.
type UpdateStatusRequest struct {
	Status model.BookingStatus `json:"status"`
}

// Create godoc
// @Summary Book a listing
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateBookingRequest true "Booking data"
// @Success 201 {object} Envelope
// @Failure 400 {object} Envelope
// @Failure 404 {object} Envelope
// @Router /bookings [post]
func (h *BookingHandler) Create(c echo.Context) error {
	var req CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, errors.NewValidationError("invalid request body"))
	}
	if req.ListingID == "" || req.From == "" || req.To == "" {
		return fail(c, errors.ErrMissingFields)
	}

	listingID, err := uuid.Parse(req.ListingID)
	if err != nil {
		return fail(c, errors.NewValidationError("invalid listing id"))
	}
	from, err := parseDate(req.From)
	if err != nil {
		return fail(c, errors.NewValidationError("from must be a date (YYYY-MM-DD or RFC 3339)"))
	}
	to, err := parseDate(req.To)
	if err != nil {
		return fail(c, errors.NewValidationError("to must be a date (YYYY-MM-DD or RFC 3339)"))
	}

	user := auth.CurrentUser(c)
	booking, err := h.bookingService.Create(c.Request().Context(), user.ID, listingID, from, to)
	if err != nil {
		return fail(c, err)
	}
	return respondData(c, http.StatusCreated, booking)
}

// GetUserBookings godoc
// @Summary List the authenticated user's bookings
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Envelope
// @Router /bookings/user [get]
func (h *BookingHandler) GetUserBookings(c echo.Context) error {
	user := auth.CurrentUser(c)
	bookings, err := h.bookingService.ListForUser(c.Request().Context(), user.ID)
	if err != nil {
		return fail(c, err)
	}
	return respondData(c, http.StatusOK, bookings)
}

// GetHostBookings godoc
// @Summary List bookings against the authenticated host's listings
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Envelope
// @Router /bookings/host [get]
func (h *BookingHandler) GetHostBookings(c echo.Context) error {
	host := auth.CurrentUser(c)
	bookings, err := h.bookingService.ListForHost(c.Request().Context(), host.ID)
	if err != nil {
		return fail(c, err)
	}
	return respondData(c, http.StatusOK, bookings)
}

// UpdateStatus godoc
// @Summary Confirm or cancel a booking (listing owner only)
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body UpdateStatusRequest true "New status"
// @Success 200 {object} Envelope
// @Failure 400 {object} Envelope
// @Failure 403 {object} Envelope
// @Failure 404 {object} Envelope
// @Router /bookings/{id}/status [put]
func (h *BookingHandler) UpdateStatus(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return fail(c, errors.NewValidationError("invalid booking id"))
	}

	var req UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, errors.NewValidationError("invalid request body"))
	}

	host := auth.CurrentUser(c)
	booking, err := h.bookingService.SetStatus(c.Request().Context(), id, host.ID, req.Status)
	if err != nil {
		return fail(c, err)
	}
	return respondDataMessage(c, http.StatusOK, booking, fmt.Sprintf("Booking %s successfully", booking.Status))
}
