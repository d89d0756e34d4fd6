package services

import (
	"context"

	"github.com/avillagran/boletera/internal/client/models"
)

// UsersService wraps the authenticated profile endpoints.
type UsersService interface {
	// UpdateProfile replaces the caller's profile and returns the updated
	// User record as the backend now holds it.
	UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (*models.User, error)

	// ChangePassword changes the caller's password. Takes the current and
	// the new password as two positional arguments.
	ChangePassword(ctx context.Context, current, newPassword string) (string, error)
}

type usersService struct {
	api API
}

func NewUsersService(api API) UsersService {
	return &usersService{api: api}
}

func (s *usersService) UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (*models.User, error) {
	var user models.User
	if err := s.api.Put(ctx, "/api/user/profile", req, true, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *usersService) ChangePassword(ctx context.Context, current, newPassword string) (string, error) {
	body := map[string]string{
		"currentPassword": current,
		"newPassword":     newPassword,
	}
	var resp models.MessageResponse
	if err := s.api.Put(ctx, "/api/user/password", body, true, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}
