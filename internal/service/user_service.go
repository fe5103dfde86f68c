package service

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"stayfinder/internal/auth"
	"stayfinder/internal/errors"
	"stayfinder/internal/model"
	"stayfinder/internal/repository"
)

const bcryptCost = 10

// UserService handles account registration and authentication.
type UserService interface {
	Signup(ctx context.Context, fullName, email, password string, role model.Role) (*model.User, error)
	Login(ctx context.Context, email, password string) (token string, user *model.User, err error)
}

type userService struct {
	users      repository.UserRepository
	jwtService *auth.JWTService
}

// NewUserService creates a new user service.
func NewUserService(users repository.UserRepository, jwtService *auth.JWTService) UserService {
	return &userService{
		users:      users,
		jwtService: jwtService,
	}
}

// Signup registers a new account with a hashed password. Role defaults to
// "user" when unspecified.
func (s *userService) Signup(ctx context.Context, fullName, email, password string, role model.Role) (*model.User, error) {
	existing, err := s.users.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, errors.ErrEmailInUse
	}
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("check user existence: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	if role == "" {
		role = model.RoleUser
	}

	user := &model.User{
		FullName:     fullName,
		Email:        email,
		PasswordHash: string(hashedPassword),
		Role:         role,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// Login authenticates an account and issues a session token.
func (s *userService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return "", nil, errors.ErrUserNotFound
		}
		return "", nil, fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, errors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user.ID, user.Role)
	if err != nil {
		return "", nil, fmt.Errorf("generate token: %w", err)
	}

	return token, user, nil
}
