package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"stayfinder/internal/model"
)

// BookingRepository defines booking persistence operations.
type BookingRepository interface {
	Create(ctx context.Context, booking *model.Booking) error
	Update(ctx context.Context, booking *model.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Booking, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]model.Booking, error)
	FindByListings(ctx context.Context, listingIDs []uuid.UUID) ([]model.Booking, error)
	HasOverlap(ctx context.Context, listingID uuid.UUID, from, to time.Time) (bool, error)
}

type bookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository creates a new booking repository.
func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

// Create creates a new booking record.
func (r *bookingRepository) Create(ctx context.Context, booking *model.Booking) error {
	return r.db.WithContext(ctx).Create(booking).Error
}

// Update persists the booking record.
func (r *bookingRepository) Update(ctx context.Context, booking *model.Booking) error {
	return r.db.WithContext(ctx).Save(booking).Error
}

// FindByID finds a booking by ID with its listing preloaded.
func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Booking, error) {
	var booking model.Booking
	if err := r.db.WithContext(ctx).Preload("Listing").
		Where("id = ?", id).First(&booking).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

// FindByUser returns all bookings made by the given user, listing preloaded.
func (r *bookingRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]model.Booking, error) {
	var bookings []model.Booking
	if err := r.db.WithContext(ctx).Preload("Listing").
		Where("user_id = ?", userID).Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// FindByListings returns all bookings against the given listings, with the
// listing and the booking guest preloaded.
func (r *bookingRepository) FindByListings(ctx context.Context, listingIDs []uuid.UUID) ([]model.Booking, error) {
	if len(listingIDs) == 0 {
		return []model.Booking{}, nil
	}
	var bookings []model.Booking
	if err := r.db.WithContext(ctx).Preload("Listing").Preload("User").
		Where("listing_id IN ?", listingIDs).Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// HasOverlap reports whether a non-cancelled booking for the listing overlaps
// the [from, to) range. Used only in strict booking validation mode.
func (r *bookingRepository) HasOverlap(ctx context.Context, listingID uuid.UUID, from, to time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Booking{}).
		Where("listing_id = ?", listingID).
		Where("status <> ?", model.BookingStatusCancelled).
		Where("from_date < ? AND to_date > ?", to, from).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
