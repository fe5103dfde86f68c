package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"stayfinder/internal/model"
)

// ListingRepository defines listing persistence operations.
type ListingRepository interface {
	Create(ctx context.Context, listing *model.Listing) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Listing, error)
	FindAll(ctx context.Context) ([]model.Listing, error)
	FindByHost(ctx context.Context, hostID uuid.UUID) ([]model.Listing, error)
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type listingRepository struct {
	db *gorm.DB
}

// NewListingRepository creates a new listing repository.
func NewListingRepository(db *gorm.DB) ListingRepository {
	return &listingRepository{db: db}
}

// Create creates a new listing record.
func (r *listingRepository) Create(ctx context.Context, listing *model.Listing) error {
	return r.db.WithContext(ctx).Create(listing).Error
}

// FindByID finds a listing by ID with the owning host preloaded.
func (r *listingRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Listing, error) {
	var listing model.Listing
	if err := r.db.WithContext(ctx).Preload("Host").
		Where("id = ?", id).First(&listing).Error; err != nil {
		return nil, err
	}
	return &listing, nil
}

// FindAll returns the full, unfiltered listing set with hosts preloaded.
// Filtering happens client-side; there are no server-side query parameters.
func (r *listingRepository) FindAll(ctx context.Context) ([]model.Listing, error) {
	var listings []model.Listing
	if err := r.db.WithContext(ctx).Preload("Host").Find(&listings).Error; err != nil {
		return nil, err
	}
	return listings, nil
}

// FindByHost returns all listings owned by the given host.
func (r *listingRepository) FindByHost(ctx context.Context, hostID uuid.UUID) ([]model.Listing, error) {
	var listings []model.Listing
	if err := r.db.WithContext(ctx).Where("host_id = ?", hostID).Find(&listings).Error; err != nil {
		return nil, err
	}
	return listings, nil
}

// UpdateFields applies a partial field patch to a listing.
func (r *listingRepository) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&model.Listing{}).
		Where("id = ?", id).
		Updates(fields).Error
}

// Delete removes a listing. Dependent bookings are left untouched.
func (r *listingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Listing{}).Error
}
