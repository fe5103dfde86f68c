package auth

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"stayfinder/internal/model"
	"stayfinder/internal/repository"
)

const currentUserKey = "currentUser"

// Middleware verifies the bearer token signature and expiry and binds the
// token claims into the request context.
func Middleware(secret string) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(secret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(Claims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
		},
	})
}

// RequireUser resolves the token subject to a live user record and exposes it
// to downstream handlers. The token is only a capability hint; identity is
// re-resolved from the store (through the identity cache) on every request.
func RequireUser(users repository.UserRepository, identities *IdentityCache) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := c.Get("user").(*jwt.Token)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			claims, ok := token.Claims.(*Claims)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token claims")
			}

			userID, err := uuid.Parse(claims.UserID)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token subject")
			}

			ctx := c.Request().Context()
			user := identities.Get(ctx, userID)
			if user == nil {
				user, err = users.FindByID(ctx, userID)
				if err != nil {
					if err == gorm.ErrRecordNotFound {
						return echo.NewHTTPError(http.StatusUnauthorized, "user not found")
					}
					return err
				}
				identities.Store(ctx, user)
			}

			c.Set(currentUserKey, user)
			return next(c)
		}
	}
}

// CurrentUser returns the authenticated user attached by RequireUser, or nil.
func CurrentUser(c echo.Context) *model.User {
	user, _ := c.Get(currentUserKey).(*model.User)
	return user
}
