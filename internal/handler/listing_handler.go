package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"stayfinder/internal/auth"
	"stayfinder/internal/errors"
	"stayfinder/internal/model"
	"stayfinder/internal/service"
)

// ListingHandler handles listing endpoints.
type ListingHandler struct {
	listingService service.ListingService
}

// NewListingHandler creates a new listing handler.
func NewListingHandler(listingService service.ListingService) *ListingHandler {
	return &ListingHandler{listingService: listingService}
}

// CreateListingRequest represents a new listing payload.
type CreateListingRequest struct {
	Title          string            `json:"title" validate:"required"`
	Location       string            `json:"location" validate:"required"`
	Description    string            `json:"description"`
	PricePerNight  decimal.Decimal   `json:"pricePerNight" validate:"required"`
	Images         []string          `json:"images"`
	AvailableDates []model.DateRange `json:"availableDates"`
}

// UpdateListingRequest is a partial listing patch; absent fields are untouched.
type UpdateListingRequest struct {
	Title          *string            `json:"title"`
	Location       *string            `json:"location"`
	Description    *string            `json:"description"`
	PricePerNight  *decimal.Decimal   `json:"pricePerNight"`
	Images         *[]string          `json:"images"`
	AvailableDates *[]model.DateRange `json:"availableDates"`
}

// GetAll godoc
// @Summary List all listings
// @Tags listings
// @Produce json
// @Success 200 {object} Envelope
// @Router /listings/all [get]
func (h *ListingHandler) GetAll(c echo.Context) error {
	listings, err := h.listingService.ListAll(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return respondData(c, http.StatusOK, listings)
}

// GetByID godoc
// @Summary Get a listing by id
// @Tags listings
// @Produce json
// @Param id path string true "Listing ID"
// @Success 200 {object} Envelope
// @Failure 404 {object} Envelope
// @Router /listings/view/{id} [get]
func (h *ListingHandler) GetByID(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return fail(c, errors.NewValidationError("invalid listing id"))
	}

	listing, err := h.listingService.GetByID(c.Request().Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return respondData(c, http.StatusOK, listing)
}

// Create godoc
// @Summary Create a listing
// @Tags listings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateListingRequest true "Listing fields"
// @Success 201 {object} Envelope
// @Failure 400 {object} Envelope
// @Failure 401 {object} Envelope
// @Router /listings/add [post]
func (h *ListingHandler) Create(c echo.Context) error {
	var req CreateListingRequest
	if err := bindAndValidate(c, &req); err != nil {
		return fail(c, err)
	}
	if !req.PricePerNight.IsPositive() {
		return fail(c, errors.NewValidationError("pricePerNight must be a positive number"))
	}

	host := auth.CurrentUser(c)
	listing, err := h.listingService.Create(c.Request().Context(), host.ID, service.CreateListingInput{
		Title:          req.Title,
		Location:       req.Location,
		Description:    req.Description,
		PricePerNight:  req.PricePerNight,
		Images:         req.Images,
		AvailableDates: req.AvailableDates,
	})
	if err != nil {
		return fail(c, err)
	}
	return respondData(c, http.StatusCreated, listing)
}

// Update godoc
// @Summary Update a listing (owner only)
// @Tags listings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Listing ID"
// @Param request body UpdateListingRequest true "Partial listing fields"
// @Success 200 {object} Envelope
// @Failure 403 {object} Envelope
// @Failure 404 {object} Envelope
// @Router /listings/update/{id} [put]
func (h *ListingHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return fail(c, errors.NewValidationError("invalid listing id"))
	}

	var req UpdateListingRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, errors.NewValidationError("invalid request body"))
	}
	if req.PricePerNight != nil && !req.PricePerNight.IsPositive() {
		return fail(c, errors.NewValidationError("pricePerNight must be a positive number"))
	}

	host := auth.CurrentUser(c)
	listing, err := h.listingService.Update(c.Request().Context(), id, host.ID, service.UpdateListingInput{
		Title:          req.Title,
		Location:       req.Location,
		Description:    req.Description,
		PricePerNight:  req.PricePerNight,
		Images:         req.Images,
		AvailableDates: req.AvailableDates,
	})
	if err != nil {
		return fail(c, err)
	}
	return respondData(c, http.StatusOK, listing)
}

// Delete godoc
// @Summary Delete a listing (owner only)
// @Tags listings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Listing ID"
// @Success 200 {object} Envelope
// @Failure 403 {object} Envelope
// @Failure 404 {object} Envelope
// @Router /listings/delete/{id} [delete]
func (h *ListingHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return fail(c, errors.NewValidationError("invalid listing id"))
	}

	host := auth.CurrentUser(c)
	if err := h.listingService.Delete(c.Request().Context(), id, host.ID); err != nil {
		return fail(c, err)
	}
	return respondMessage(c, http.StatusOK, "Listing deleted")
}
