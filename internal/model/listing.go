package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// DateRange is an availability window on a listing.
type DateRange struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// Listing represents a rentable property owned by a host.
type Listing struct {
	ID             uuid.UUID                      `json:"id" gorm:"type:char(36);primaryKey"`
	Title          string                         `json:"title" gorm:"size:255;not null"`
	Location       string                         `json:"location" gorm:"size:255;not null;index"`
	Description    string                         `json:"description,omitempty" gorm:"type:text"`
	PricePerNight  decimal.Decimal                `json:"pricePerNight" gorm:"type:decimal(20,2);not null"`
	Images         datatypes.JSONSlice[string]    `json:"images"`
	AvailableDates datatypes.JSONSlice[DateRange] `json:"availableDates"`
	HostID         uuid.UUID                      `json:"-" gorm:"type:char(36);not null;index"`
	CreatedAt      time.Time                      `json:"createdAt"`
	UpdatedAt      time.Time                      `json:"updatedAt"`

	// Relations
	Host *User `json:"host,omitempty" gorm:"foreignKey:HostID"`
}

// BeforeCreate sets UUID before creating the record.
func (l *Listing) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
