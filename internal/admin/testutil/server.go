package testutil

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Hec8/aissia-security-sub000/internal/admin/httpserver"
	"github.com/Hec8/aissia-security-sub000/internal/admin/joboffers"
	"github.com/Hec8/aissia-security-sub000/internal/admin/messages"
	"github.com/Hec8/aissia-security-sub000/internal/admin/newsletter"
	"github.com/Hec8/aissia-security-sub000/internal/admin/profile"
	"github.com/Hec8/aissia-security-sub000/internal/admin/quotes"
	"github.com/Hec8/aissia-security-sub000/internal/admin/session"
	"github.com/Hec8/aissia-security-sub000/internal/backend"
)

var errInvalidCredentials = &backend.APIError{
	Status:  http.StatusUnauthorized,
	Message: "Identifiants incorrects.",
}

// ServerOption customises the HTTP server configuration for tests.
type ServerOption func(*httpserver.Config)

// WithAuthenticator overrides the authenticator used by the admin server.
func WithAuthenticator(auth httpserver.Authenticator) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.Authenticator = auth
	}
}

// WithTokenStore overrides the session token store.
func WithTokenStore(store session.TokenStore) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.Tokens = store
	}
}

// WithBasePath sets a custom base path for the admin routes.
func WithBasePath(path string) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.BasePath = path
	}
}

// WithMessagesService wires a custom contact-messages service implementation.
func WithMessagesService(service messages.Service) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.Messages = service
	}
}

// WithOffersService wires a custom job-offers service implementation.
func WithOffersService(service joboffers.Service) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.Offers = service
	}
}

// WithProfileService wires a custom profile service implementation.
func WithProfileService(service profile.Service) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.Profile = service
	}
}

// StaticAuthenticator accepts a single credential pair and hands out a fixed
// token. The zero value rejects everything.
type StaticAuthenticator struct {
	Email    string
	Password string
	Token    string
	Err      error
}

func (a StaticAuthenticator) Login(_ context.Context, email, password string) (string, error) {
	if a.Err != nil {
		return "", a.Err
	}
	if email != a.Email || password != a.Password {
		return "", errInvalidCredentials
	}
	return a.Token, nil
}

// NewServer constructs an httptest server running the admin HTTP stack with
// static fixtures behind every screen.
func NewServer(t testing.TB, opts ...ServerOption) *httptest.Server {
	t.Helper()

	cfg := httpserver.Config{
		Address:   ":0",
		BasePath:  "/admin",
		LoginPath: "",
		Authenticator: StaticAuthenticator{
			Email:    "admin@aissia-security.com",
			Password: "secret",
			Token:    "test-token",
		},
		Tokens:     &session.MemoryStore{},
		Messages:   messages.NewStaticService(),
		Offers:     joboffers.NewStaticService(),
		Quotes:     quotes.NewStore(),
		Newsletter: newsletter.NewStore(),
		Profile:    profile.NewStaticService(),
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	srv := httpserver.New(cfg)
	ts := httptest.NewServer(srv.Handler)
	t.Cleanup(ts.Close)
	return ts
}
