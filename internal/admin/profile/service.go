package profile

import (
	"context"
	"errors"
	"strings"

	"github.com/Hec8/aissia-security-sub000/internal/backend"
)

// ErrPasswordMismatch is returned when the confirmation does not match the
// new password.
var ErrPasswordMismatch = errors.New("password confirmation does not match")

// Service exposes the authenticated admin's identity and profile updates.
type Service interface {
	// Me returns the current admin, fetched once after login.
	Me(ctx context.Context, token string) (*backend.Admin, error)
	// Update saves profile changes; the password fields are optional.
	Update(ctx context.Context, token string, form Form) (*backend.Admin, error)
}

// Form carries the editable profile fields.
type Form struct {
	Name                 string
	Email                string
	Password             string
	PasswordConfirmation string
}

// Validate checks required fields and the password confirmation.
func (f Form) Validate() error {
	if strings.TrimSpace(f.Name) == "" || strings.TrimSpace(f.Email) == "" {
		return errors.New("name and email are required")
	}
	if f.Password != "" && f.Password != f.PasswordConfirmation {
		return ErrPasswordMismatch
	}
	return nil
}

func (f Form) payload() backend.ProfileUpdate {
	return backend.ProfileUpdate{
		Name:                 strings.TrimSpace(f.Name),
		Email:                strings.TrimSpace(f.Email),
		Password:             f.Password,
		PasswordConfirmation: f.PasswordConfirmation,
	}
}

// HTTPService implements Service through the backend gateway client.
type HTTPService struct {
	client *backend.Client
}

// NewHTTPService constructs a Service over the shared gateway client.
func NewHTTPService(client *backend.Client) *HTTPService {
	return &HTTPService{client: client}
}

// Me implements Service.
func (s *HTTPService) Me(ctx context.Context, token string) (*backend.Admin, error) {
	return s.client.Me(ctx, token)
}

// Update implements Service.
func (s *HTTPService) Update(ctx context.Context, token string, form Form) (*backend.Admin, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}
	return s.client.UpdateProfile(ctx, token, form.payload())
}

// StaticService is an in-memory Service for tests and local development.
type StaticService struct {
	Admin backend.Admin
	Err   error
}

// NewStaticService returns a StaticService with a default admin.
func NewStaticService() *StaticService {
	return &StaticService{
		Admin: backend.Admin{ID: 1, Name: "Admin AISSIA", Email: "admin@aissia-security.example"},
	}
}

// Me implements Service.
func (s *StaticService) Me(ctx context.Context, token string) (*backend.Admin, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	admin := s.Admin
	return &admin, nil
}

// Update implements Service.
func (s *StaticService) Update(ctx context.Context, token string, form Form) (*backend.Admin, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}
	if s.Err != nil {
		return nil, s.Err
	}
	s.Admin.Name = strings.TrimSpace(form.Name)
	s.Admin.Email = strings.TrimSpace(form.Email)
	admin := s.Admin
	return &admin, nil
}
