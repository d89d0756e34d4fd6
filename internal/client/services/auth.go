package services

import (
	"context"

	"github.com/avillagran/boletera/internal/client/models"
)

// AuthService wraps the backend's authentication endpoints.
//
// Contract:
//   - Login: exchange credentials for a bearer token plus the profile snapshot.
//   - Register: create the account; it does NOT authenticate — the caller
//     must log in afterwards to establish a session.
//   - ForgotPassword / ResetPassword: the e-mail based recovery pair.
//
// None of these endpoints require an existing session.
type AuthService interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
	Register(ctx context.Context, req models.RegisterRequest) (string, error)
	ForgotPassword(ctx context.Context, email string) (string, error)
	ResetPassword(ctx context.Context, token, newPassword string) (string, error)
}

type authService struct {
	api API
}

// NewAuthService constructs an AuthService over the given HTTP layer.
func NewAuthService(api API) AuthService {
	return &authService{api: api}
}

func (s *authService) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := s.api.Post(ctx, "/api/auth/login", req, false, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *authService) Register(ctx context.Context, req models.RegisterRequest) (string, error) {
	var resp models.MessageResponse
	if err := s.api.Post(ctx, "/api/auth/register", req, false, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

func (s *authService) ForgotPassword(ctx context.Context, email string) (string, error) {
	body := map[string]string{"email": email}
	var resp models.MessageResponse
	if err := s.api.Post(ctx, "/api/auth/forgot-password", body, false, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

func (s *authService) ResetPassword(ctx context.Context, token, newPassword string) (string, error) {
	body := map[string]string{"token": token, "newPassword": newPassword}
	var resp models.MessageResponse
	if err := s.api.Post(ctx, "/api/auth/reset-password", body, false, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}
