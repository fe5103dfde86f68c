package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"stayfinder/internal/model"
	"stayfinder/internal/service"
)

// UserHandler handles signup and login endpoints.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// SignupRequest represents a signup request.
type SignupRequest struct {
	FullName string     `json:"fullName" validate:"required"`
	Email    string     `json:"email" validate:"required,email"`
	Password string     `json:"password" validate:"required,min=6"`
	Role     model.Role `json:"role" validate:"omitempty,oneof=user host"`
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserSummary is the safe projection of a user returned at signup.
type UserSummary struct {
	ID       uuid.UUID  `json:"id"`
	FullName string     `json:"fullName"`
	Email    string     `json:"email"`
	Role     model.Role `json:"role"`
}

// LoginResponse carries the session token and profile returned at login.
type LoginResponse struct {
	Token    string     `json:"token"`
	FullName string     `json:"fullName"`
	Email    string     `json:"email"`
	Role     model.Role `json:"role"`
}

// Signup godoc
// @Summary Register a new account
// @Tags users
// @Accept json
// @Produce json
// @Param request body SignupRequest true "Signup data"
// @Success 201 {object} Envelope
// @Failure 400 {object} Envelope
// @Failure 409 {object} Envelope
// @Router /users/signup [post]
func (h *UserHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := bindAndValidate(c, &req); err != nil {
		return fail(c, err)
	}

	user, err := h.userService.Signup(c.Request().Context(), req.FullName, req.Email, req.Password, req.Role)
	if err != nil {
		return fail(c, err)
	}

	return respondDataMessage(c, http.StatusCreated, UserSummary{
		ID:       user.ID,
		FullName: user.FullName,
		Email:    user.Email,
		Role:     user.Role,
	}, "User registered successfully")
}

// Login godoc
// @Summary Authenticate and obtain a session token
// @Tags users
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} Envelope
// @Failure 400 {object} Envelope
// @Failure 404 {object} Envelope
// @Router /users/login [post]
func (h *UserHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return fail(c, err)
	}

	token, user, err := h.userService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return fail(c, err)
	}

	return respondDataMessage(c, http.StatusOK, LoginResponse{
		Token:    token,
		FullName: user.FullName,
		Email:    user.Email,
		Role:     user.Role,
	}, "Logged in successfully")
}
