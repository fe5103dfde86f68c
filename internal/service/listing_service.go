package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"stayfinder/internal/errors"
	"stayfinder/internal/model"
	"stayfinder/internal/repository"
)

// CreateListingInput carries the fields of a new listing.
type CreateListingInput struct {
	Title          string
	Location       string
	Description    string
	PricePerNight  decimal.Decimal
	Images         []string
	AvailableDates []model.DateRange
}

// UpdateListingInput is a partial patch; nil fields are left untouched.
type UpdateListingInput struct {
	Title          *string
	Location       *string
	Description    *string
	PricePerNight  *decimal.Decimal
	Images         *[]string
	AvailableDates *[]model.DateRange
}

func (in *UpdateListingInput) fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if in.Title != nil {
		fields["title"] = *in.Title
	}
	if in.Location != nil {
		fields["location"] = *in.Location
	}
	if in.Description != nil {
		fields["description"] = *in.Description
	}
	if in.PricePerNight != nil {
		fields["price_per_night"] = *in.PricePerNight
	}
	if in.Images != nil {
		fields["images"] = datatypes.NewJSONSlice(*in.Images)
	}
	if in.AvailableDates != nil {
		fields["available_dates"] = datatypes.NewJSONSlice(*in.AvailableDates)
	}
	return fields
}

// ListingService handles listing CRUD, with mutation scoped to the owning host.
type ListingService interface {
	ListAll(ctx context.Context) ([]model.Listing, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Listing, error)
	Create(ctx context.Context, hostID uuid.UUID, input CreateListingInput) (*model.Listing, error)
	Update(ctx context.Context, id, hostID uuid.UUID, input UpdateListingInput) (*model.Listing, error)
	Delete(ctx context.Context, id, hostID uuid.UUID) error
}

type listingService struct {
	listings repository.ListingRepository
}

// NewListingService creates a new listing service.
func NewListingService(listings repository.ListingRepository) ListingService {
	return &listingService{listings: listings}
}

// ListAll returns every listing with its host projected in. No server-side
// filtering; clients filter the full set themselves.
func (s *listingService) ListAll(ctx context.Context) ([]model.Listing, error) {
	listings, err := s.listings.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list listings: %w", err)
	}
	return listings, nil
}

// GetByID returns a single listing with its host projected in.
func (s *listingService) GetByID(ctx context.Context, id uuid.UUID) (*model.Listing, error) {
	listing, err := s.listings.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrListingNotFound
		}
		return nil, fmt.Errorf("find listing: %w", err)
	}
	return listing, nil
}

// Create persists a new listing owned by the given host.
func (s *listingService) Create(ctx context.Context, hostID uuid.UUID, input CreateListingInput) (*model.Listing, error) {
	listing := &model.Listing{
		Title:          input.Title,
		Location:       input.Location,
		Description:    input.Description,
		PricePerNight:  input.PricePerNight,
		Images:         datatypes.NewJSONSlice(input.Images),
		AvailableDates: datatypes.NewJSONSlice(input.AvailableDates),
		HostID:         hostID,
	}

	if err := s.listings.Create(ctx, listing); err != nil {
		return nil, fmt.Errorf("create listing: %w", err)
	}

	// Reload to project the host into the response.
	return s.GetByID(ctx, listing.ID)
}

// Update applies a partial patch after an ownership check and returns the
// merged record.
func (s *listingService) Update(ctx context.Context, id, hostID uuid.UUID, input UpdateListingInput) (*model.Listing, error) {
	listing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if listing.HostID != hostID {
		return nil, errors.ErrNotOwner
	}

	if fields := input.fields(); len(fields) > 0 {
		if err := s.listings.UpdateFields(ctx, id, fields); err != nil {
			return nil, fmt.Errorf("update listing: %w", err)
		}
	}

	return s.GetByID(ctx, id)
}

// Delete removes a listing after an ownership check. Bookings referencing the
// listing are left in place.
func (s *listingService) Delete(ctx context.Context, id, hostID uuid.UUID) error {
	listing, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if listing.HostID != hostID {
		return errors.ErrNotOwner
	}

	if err := s.listings.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete listing: %w", err)
	}
	return nil
}
