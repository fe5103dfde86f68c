package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BookingStatus represents the lifecycle status of a booking.
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Terminal reports whether no further transition is expected from the status.
func (s BookingStatus) Terminal() bool {
	return s == BookingStatusConfirmed || s == BookingStatusCancelled
}

// Booking reserves a listing for a guest over a date range. Bookings are never
// deleted; deleting a listing leaves its bookings in place with a dangling
// reference.
type Booking struct {
	ID        uuid.UUID     `json:"id" gorm:"type:char(36);primaryKey"`
	UserID    uuid.UUID     `json:"-" gorm:"type:char(36);not null;index"`
	ListingID uuid.UUID     `json:"-" gorm:"type:char(36);not null;index"`
	From      time.Time     `json:"from" gorm:"column:from_date;not null"`
	To        time.Time     `json:"to" gorm:"column:to_date;not null"`
	Status    BookingStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`

	// Relations
	User    *User    `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Listing *Listing `json:"listing,omitempty" gorm:"foreignKey:ListingID"`
}

// BeforeCreate sets UUID before creating the record.
func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
