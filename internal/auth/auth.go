package auth

import (
	"context"

	"github.com/cinedesk/v2/internal/types"
)

// Service defines the authentication and profile operations the UI
// depends on.
type Service interface {
	Login(ctx context.Context, creds types.Credentials) (*types.LoginResponse, error)
	Register(ctx context.Context, req types.RegisterRequest) (*types.LoginResponse, error)
	Me(ctx context.Context) (*types.User, error)
	UpdateProfile(ctx context.Context, req types.UpdateProfileRequest) (*types.User, error)
	ChangePassword(ctx context.Context, req types.ChangePasswordRequest) error
}
