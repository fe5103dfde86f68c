package router

import (
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"stayfinder/internal/auth"
	"stayfinder/internal/config"
	apperrors "stayfinder/internal/errors"
	"stayfinder/internal/handler"
	"stayfinder/internal/health"
	"stayfinder/internal/repository"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	users repository.UserRepository,
	identities *auth.IdentityCache,
	checker *health.Checker,
	userHandler *handler.UserHandler,
	listingHandler *handler.ListingHandler,
	bookingHandler *handler.BookingHandler,
	uploadHandler *handler.UploadHandler,
	healthHandler *handler.HealthHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.HTTPErrorHandler = errorHandler(cfg.IsProduction())
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/health", healthHandler.Health)
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.Static("/uploads", cfg.UploadDir)

	authn := auth.Middleware(cfg.JWTSecret)
	resolve := auth.RequireUser(users, identities)
	gate := unavailableGate(checker)

	userRoutes := e.Group("/users", gate)
	userRoutes.POST("/signup", userHandler.Signup)
	userRoutes.POST("/login", userHandler.Login)

	// Listing reads are public; mutation requires an authenticated owner.
	listingRoutes := e.Group("/listings", gate)
	listingRoutes.GET("/all", listingHandler.GetAll)
	listingRoutes.GET("/view/:id", listingHandler.GetByID)
	listingRoutes.POST("/add", listingHandler.Create, authn, resolve)
	listingRoutes.PUT("/update/:id", listingHandler.Update, authn, resolve)
	listingRoutes.DELETE("/delete/:id", listingHandler.Delete, authn, resolve)

	bookingRoutes := e.Group("/bookings", gate, authn, resolve)
	bookingRoutes.POST("", bookingHandler.Create)
	bookingRoutes.GET("/user", bookingHandler.GetUserBookings)
	bookingRoutes.GET("/host", bookingHandler.GetHostBookings)
	bookingRoutes.PUT("/:id/status", bookingHandler.UpdateStatus)

	uploadRoutes := e.Group("/upload", authn, resolve)
	uploadRoutes.POST("/image", uploadHandler.UploadImage)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// unavailableGate short-circuits data routes with a fixed 503 envelope while
// the data store is unreachable.
func unavailableGate(checker *health.Checker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !checker.Healthy(c.Request().Context()) {
				return apperrors.ErrUnavailable
			}
			return next(c)
		}
	}
}

// errorHandler renders every uncaught failure as the standard envelope. Error
// detail is attached only outside production.
func errorHandler(production bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		env := handler.Envelope{Success: false}
		status := http.StatusInternalServerError

		switch e := err.(type) {
		case *echo.HTTPError:
			status = e.Code
			env.Message = fmt.Sprintf("%v", e.Message)
		case *apperrors.ValidationError:
			status = http.StatusBadRequest
			env.Message = "Validation failed"
			env.Errors = e.Fields
		default:
			httpErr := apperrors.MapErrorToHTTP(err)
			status = httpErr.StatusCode
			env.Message = httpErr.Message
			if status == http.StatusInternalServerError {
				c.Logger().Error(err)
				if !production {
					env.Error = err.Error()
				}
			}
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(status)
			return
		}
		_ = c.JSON(status, env)
	}
}
