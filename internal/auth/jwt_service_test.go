package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"stayfinder/internal/model"
)

func TestJWTService_RoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret")
	userID := uuid.New()

	token, err := svc.GenerateToken(userID, model.RoleHost)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, model.RoleHost, claims.Role)

	// 30-day expiry, within a minute of tolerance.
	expected := time.Now().Add(TokenExpiry)
	assert.WithinDuration(t, expected, claims.ExpiresAt.Time, time.Minute)
}

func TestJWTService_WrongSecret(t *testing.T) {
	svc := NewJWTService("test-secret")
	token, err := svc.GenerateToken(uuid.New(), model.RoleUser)
	assert.NoError(t, err)

	other := NewJWTService("another-secret")
	claims, err := other.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc := NewJWTService("test-secret")

	claims := &Claims{
		UserID: uuid.New().String(),
		Role:   model.RoleUser,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	assert.NoError(t, err)

	parsed, err := svc.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, parsed)
}

func TestJWTService_Garbage(t *testing.T) {
	svc := NewJWTService("test-secret")
	claims, err := svc.ValidateToken("not-a-token")
	assert.Error(t, err)
	assert.Nil(t, claims)
}
