package services

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/cinedesk/v2/internal/auth"
	"github.com/cinedesk/v2/internal/types"
)

// AuthService implements auth.Service over the REST API. Payloads are
// validated locally so obviously bad input never hits the network.
type AuthService struct {
	api      *ApiClient
	validate *validator.Validate
}

var _ auth.Service = (*AuthService)(nil)

// NewAuthService creates a new instance of AuthService.
func NewAuthService(api *ApiClient) *AuthService {
	return &AuthService{
		api:      api,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Login authenticates a user with their email and password.
func (s *AuthService) Login(ctx context.Context, creds types.Credentials) (*types.LoginResponse, error) {
	if err := s.validate.Struct(creds); err != nil {
		return nil, fmt.Errorf("email and password are required")
	}
	var resp types.LoginResponse
	if err := s.api.Post(ctx, "/api/auth/login", creds, &resp); err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}
	return &resp, nil
}

// Register creates an account and returns the resulting session.
func (s *AuthService) Register(ctx context.Context, req types.RegisterRequest) (*types.LoginResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid signup details: %w", err)
	}
	var resp types.LoginResponse
	if err := s.api.Post(ctx, "/api/auth/register", req, &resp); err != nil {
		return nil, fmt.Errorf("registration failed: %w", err)
	}
	return &resp, nil
}

// Me fetches the current user's profile.
func (s *AuthService) Me(ctx context.Context) (*types.User, error) {
	var user types.User
	if err := s.api.Get(ctx, "/api/users/me", &user); err != nil {
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}
	return &user, nil
}

// UpdateProfile saves edited profile fields and returns the updated user.
func (s *AuthService) UpdateProfile(ctx context.Context, req types.UpdateProfileRequest) (*types.User, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid profile details: %w", err)
	}
	var user types.User
	if err := s.api.Put(ctx, "/api/users/me", req, &user); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return &user, nil
}

// ChangePassword changes the account password.
func (s *AuthService) ChangePassword(ctx context.Context, req types.ChangePasswordRequest) error {
	if err := s.validate.Struct(req); err != nil {
		return fmt.Errorf("invalid password change request: %w", err)
	}
	if err := s.api.Put(ctx, "/api/users/me/password", req, nil); err != nil {
		return fmt.Errorf("failed to change password: %w", err)
	}
	return nil
}
