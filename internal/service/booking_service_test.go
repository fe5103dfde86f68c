package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"stayfinder/internal/errors"
	"stayfinder/internal/model"
)

var (
	bookFrom = time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	bookTo   = time.Date(2025, 7, 5, 0, 0, 0, 0, time.UTC)
)

func TestBookingService_Create(t *testing.T) {
	userID := uuid.New()
	listingID := uuid.New()

	t.Run("missing listing", func(t *testing.T) {
		bookings := new(MockBookingRepository)
		listings := new(MockListingRepository)
		listings.On("FindByID", mock.Anything, listingID).Return(nil, gorm.ErrRecordNotFound)

		svc := NewBookingService(bookings, listings, false)
		booking, err := svc.Create(context.Background(), userID, listingID, bookFrom, bookTo)

		assert.Nil(t, booking)
		assert.Equal(t, errors.ErrListingNotFound, err)
		bookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("new booking starts pending", func(t *testing.T) {
		bookings := new(MockBookingRepository)
		listings := new(MockListingRepository)
		listings.On("FindByID", mock.Anything, listingID).Return(&model.Listing{ID: listingID}, nil)
		bookings.On("Create", mock.Anything, mock.AnythingOfType("*model.Booking")).Return(nil)

		svc := NewBookingService(bookings, listings, false)
		booking, err := svc.Create(context.Background(), userID, listingID, bookFrom, bookTo)

		assert.NoError(t, err)
		assert.Equal(t, model.BookingStatusPending, booking.Status)
		assert.Equal(t, userID, booking.UserID)
		assert.Equal(t, listingID, booking.ListingID)
		bookings.AssertExpectations(t)
	})

	t.Run("lenient mode accepts an inverted date range", func(t *testing.T) {
		bookings := new(MockBookingRepository)
		listings := new(MockListingRepository)
		listings.On("FindByID", mock.Anything, listingID).Return(&model.Listing{ID: listingID}, nil)
		bookings.On("Create", mock.Anything, mock.AnythingOfType("*model.Booking")).Return(nil)

		svc := NewBookingService(bookings, listings, false)
		booking, err := svc.Create(context.Background(), userID, listingID, bookTo, bookFrom)

		assert.NoError(t, err)
		assert.NotNil(t, booking)
		bookings.AssertNotCalled(t, "HasOverlap", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("strict mode rejects an inverted date range", func(t *testing.T) {
		bookings := new(MockBookingRepository)
		listings := new(MockListingRepository)
		listings.On("FindByID", mock.Anything, listingID).Return(&model.Listing{ID: listingID}, nil)

		svc := NewBookingService(bookings, listings, true)
		booking, err := svc.Create(context.Background(), userID, listingID, bookTo, bookFrom)

		assert.Nil(t, booking)
		assert.Equal(t, errors.ErrInvalidDateRange, err)
		bookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("strict mode rejects overlapping dates", func(t *testing.T) {
		bookings := new(MockBookingRepository)
		listings := new(MockListingRepository)
		listings.On("FindByID", mock.Anything, listingID).Return(&model.Listing{ID: listingID}, nil)
		bookings.On("HasOverlap", mock.Anything, listingID, bookFrom, bookTo).Return(true, nil)

		svc := NewBookingService(bookings, listings, true)
		booking, err := svc.Create(context.Background(), userID, listingID, bookFrom, bookTo)

		assert.Nil(t, booking)
		assert.Equal(t, errors.ErrDatesUnavailable, err)
		bookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestBookingService_SetStatus(t *testing.T) {
	hostID := uuid.New()
	otherHost := uuid.New()
	bookingID := uuid.New()
	listingID := uuid.New()

	pendingBooking := func() *model.Booking {
		return &model.Booking{
			ID:        bookingID,
			ListingID: listingID,
			Status:    model.BookingStatusPending,
			Listing:   &model.Listing{ID: listingID, HostID: hostID},
		}
	}

	t.Run("invalid status", func(t *testing.T) {
		bookings := new(MockBookingRepository)
		listings := new(MockListingRepository)

		svc := NewBookingService(bookings, listings, false)
		booking, err := svc.SetStatus(context.Background(), bookingID, hostID, "approved")

		assert.Nil(t, booking)
		assert.Equal(t, errors.ErrInvalidStatus, err)
		bookings.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("missing booking", func(t *testing.T) {
		bookings := new(MockBookingRepository)
		listings := new(MockListingRepository)
		bookings.On("FindByID", mock.Anything, bookingID).Return(nil, gorm.ErrRecordNotFound)

		svc := NewBookingService(bookings, listings, false)
		booking, err := svc.SetStatus(context.Background(), bookingID, hostID, model.BookingStatusConfirmed)

		assert.Nil(t, booking)
		assert.Equal(t, errors.ErrBookingNotFound, err)
	})

	t.Run("non-owning host is rejected without a write", func(t *testing.T) {
		bookings := new(MockBookingRepository)
		listings := new(MockListingRepository)
		bookings.On("FindByID", mock.Anything, bookingID).Return(pendingBooking(), nil)

		svc := NewBookingService(bookings, listings, false)
		booking, err := svc.SetStatus(context.Background(), bookingID, otherHost, model.BookingStatusConfirmed)

		assert.Nil(t, booking)
		assert.Equal(t, errors.ErrNotOwner, err)
		bookings.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("owning host confirms", func(t *testing.T) {
		bookings := new(MockBookingRepository)
		listings := new(MockListingRepository)
		bookings.On("FindByID", mock.Anything, bookingID).Return(pendingBooking(), nil)
		bookings.On("Update", mock.Anything, mock.AnythingOfType("*model.Booking")).Return(nil)

		svc := NewBookingService(bookings, listings, false)
		booking, err := svc.SetStatus(context.Background(), bookingID, hostID, model.BookingStatusConfirmed)

		assert.NoError(t, err)
		assert.Equal(t, model.BookingStatusConfirmed, booking.Status)
		bookings.AssertExpectations(t)
	})

	t.Run("lenient mode re-sets a terminal booking", func(t *testing.T) {
		confirmed := pendingBooking()
		confirmed.Status = model.BookingStatusConfirmed

		bookings := new(MockBookingRepository)
		listings := new(MockListingRepository)
		bookings.On("FindByID", mock.Anything, bookingID).Return(confirmed, nil)
		bookings.On("Update", mock.Anything, mock.AnythingOfType("*model.Booking")).Return(nil)

		svc := NewBookingService(bookings, listings, false)
		booking, err := svc.SetStatus(context.Background(), bookingID, hostID, model.BookingStatusCancelled)

		assert.NoError(t, err)
		assert.Equal(t, model.BookingStatusCancelled, booking.Status)
	})

	t.Run("strict mode refuses to re-set a terminal booking", func(t *testing.T) {
		confirmed := pendingBooking()
		confirmed.Status = model.BookingStatusConfirmed

		bookings := new(MockBookingRepository)
		listings := new(MockListingRepository)
		bookings.On("FindByID", mock.Anything, bookingID).Return(confirmed, nil)

		svc := NewBookingService(bookings, listings, true)
		booking, err := svc.SetStatus(context.Background(), bookingID, hostID, model.BookingStatusCancelled)

		assert.Nil(t, booking)
		assert.Equal(t, errors.ErrBookingClosed, err)
		bookings.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestBookingService_ListForHost(t *testing.T) {
	hostID := uuid.New()
	listingA := uuid.New()
	listingB := uuid.New()

	bookings := new(MockBookingRepository)
	listings := new(MockListingRepository)
	listings.On("FindByHost", mock.Anything, hostID).Return([]model.Listing{
		{ID: listingA, HostID: hostID},
		{ID: listingB, HostID: hostID},
	}, nil)
	bookings.On("FindByListings", mock.Anything, []uuid.UUID{listingA, listingB}).Return([]model.Booking{
		{ListingID: listingA, Status: model.BookingStatusPending},
	}, nil)

	svc := NewBookingService(bookings, listings, false)
	result, err := svc.ListForHost(context.Background(), hostID)

	assert.NoError(t, err)
	assert.Len(t, result, 1)
	assert.Equal(t, listingA, result[0].ListingID)
	bookings.AssertExpectations(t)
	listings.AssertExpectations(t)
}
