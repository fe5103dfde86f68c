package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"stayfinder/internal/errors"
	"stayfinder/internal/model"
	"stayfinder/internal/repository"
)

// BookingService handles the booking lifecycle: creation by guests, listing
// per guest or per host, and status decisions by the owning host.
type BookingService interface {
	Create(ctx context.Context, userID, listingID uuid.UUID, from, to time.Time) (*model.Booking, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]model.Booking, error)
	ListForHost(ctx context.Context, hostID uuid.UUID) ([]model.Booking, error)
	SetStatus(ctx context.Context, bookingID, requesterID uuid.UUID, status model.BookingStatus) (*model.Booking, error)
}

type bookingService struct {
	bookings repository.BookingRepository
	listings repository.ListingRepository
	// strict enables date-range and status-precondition checks; the default
	// lenient mode keeps the historical behavior, double-booking included.
	strict bool
}

// NewBookingService creates a new booking service.
func NewBookingService(bookings repository.BookingRepository, listings repository.ListingRepository, strict bool) BookingService {
	return &bookingService{
		bookings: bookings,
		listings: listings,
		strict:   strict,
	}
}

// Create books a listing for the given user. The booking starts in pending.
func (s *bookingService) Create(ctx context.Context, userID, listingID uuid.UUID, from, to time.Time) (*model.Booking, error) {
	if _, err := s.listings.FindByID(ctx, listingID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrListingNotFound
		}
		return nil, fmt.Errorf("find listing: %w", err)
	}

	if s.strict {
		if !from.Before(to) {
			return nil, errors.ErrInvalidDateRange
		}
		overlap, err := s.bookings.HasOverlap(ctx, listingID, from, to)
		if err != nil {
			return nil, fmt.Errorf("check overlap: %w", err)
		}
		if overlap {
			return nil, errors.ErrDatesUnavailable
		}
	}

	booking := &model.Booking{
		UserID:    userID,
		ListingID: listingID,
		From:      from,
		To:        to,
		Status:    model.BookingStatusPending,
	}

	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	return booking, nil
}

// ListForUser returns the user's own bookings with listing detail populated.
func (s *bookingService) ListForUser(ctx context.Context, userID uuid.UUID) ([]model.Booking, error) {
	bookings, err := s.bookings.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list user bookings: %w", err)
	}
	return bookings, nil
}

// ListForHost returns the bookings against every listing the host owns, with
// listing and guest populated.
func (s *bookingService) ListForHost(ctx context.Context, hostID uuid.UUID) ([]model.Booking, error) {
	listings, err := s.listings.FindByHost(ctx, hostID)
	if err != nil {
		return nil, fmt.Errorf("list host listings: %w", err)
	}

	listingIDs := make([]uuid.UUID, 0, len(listings))
	for _, listing := range listings {
		listingIDs = append(listingIDs, listing.ID)
	}

	bookings, err := s.bookings.FindByListings(ctx, listingIDs)
	if err != nil {
		return nil, fmt.Errorf("list host bookings: %w", err)
	}
	return bookings, nil
}

// SetStatus transitions a booking to confirmed or cancelled. Only the host
// owning the booked listing may decide the outcome.
func (s *bookingService) SetStatus(ctx context.Context, bookingID, requesterID uuid.UUID, status model.BookingStatus) (*model.Booking, error) {
	if status != model.BookingStatusConfirmed && status != model.BookingStatusCancelled {
		return nil, errors.ErrInvalidStatus
	}

	booking, err := s.bookings.FindByID(ctx, bookingID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrBookingNotFound
		}
		return nil, fmt.Errorf("find booking: %w", err)
	}

	// The listing may have been deleted out from under the booking.
	if booking.Listing == nil {
		return nil, errors.ErrListingNotFound
	}
	if booking.Listing.HostID != requesterID {
		return nil, errors.ErrNotOwner
	}

	if s.strict && booking.Status.Terminal() {
		return nil, errors.ErrBookingClosed
	}

	booking.Status = status
	if err := s.bookings.Update(ctx, booking); err != nil {
		return nil, fmt.Errorf("update booking: %w", err)
	}

	return booking, nil
}
