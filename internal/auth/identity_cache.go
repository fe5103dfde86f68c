package auth

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"stayfinder/internal/cache"
	"stayfinder/internal/model"
)

const (
	identityKeyPrefix = "identity:"
	identityTTL       = 5 * time.Minute
)

// IdentityCache keeps recently resolved user records in Redis so the guard
// does not hit the database on every authenticated request. User records are
// immutable after signup, so a short TTL is the only staleness bound needed.
type IdentityCache struct {
	cache *cache.Client
}

// NewIdentityCache creates a new identity cache.
func NewIdentityCache(cache *cache.Client) *IdentityCache {
	return &IdentityCache{cache: cache}
}

// Get returns the cached user or nil on a miss.
func (s *IdentityCache) Get(ctx context.Context, id uuid.UUID) *model.User {
	data, _ := s.cache.Get(ctx, identityKeyPrefix+id.String())
	if data == nil {
		return nil
	}
	var user model.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil
	}
	return &user
}

// Store caches a resolved user record.
func (s *IdentityCache) Store(ctx context.Context, user *model.User) {
	payload, err := json.Marshal(user)
	if err != nil {
		return
	}
	_ = s.cache.Set(ctx, identityKeyPrefix+user.ID.String(), payload, identityTTL)
}
