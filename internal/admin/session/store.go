// Package session persists the backend bearer token between admin requests.
// The token is the only shared mutable state: login writes it, logout clears
// it, the auth middleware and every gateway call read it.
package session

import (
	"crypto/rand"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/securecookie"
)

const (
	defaultCookieName = "aissia_admin_token"
	defaultCookiePath = "/"
	defaultLifetime   = 12 * time.Hour
)

// ErrInvalidConfig indicates the store was initialised with invalid options.
var ErrInvalidConfig = errors.New("session: invalid config")

// TokenStore abstracts the persisted bearer token so handlers and middleware
// never touch cookie storage directly and tests can substitute a fake.
type TokenStore interface {
	// Token returns the stored bearer token, or "" when absent or invalid.
	Token(r *http.Request) string
	// SetToken persists the token on the response.
	SetToken(w http.ResponseWriter, token string)
	// ClearToken removes the persisted token.
	ClearToken(w http.ResponseWriter)
}

// Config controls cookie encoding and lifetime for the cookie-backed store.
type Config struct {
	CookieName   string
	CookiePath   string
	CookieSecure bool
	HashKey      []byte
	BlockKey     []byte
	Lifetime     time.Duration
}

// CookieStore implements TokenStore over a signed (and optionally encrypted)
// cookie.
type CookieStore struct {
	cfg   Config
	codec *securecookie.SecureCookie
}

// NewCookieStore constructs a CookieStore. An empty hash key is rejected;
// generate one with NewRandomKey for development setups.
func NewCookieStore(cfg Config) (*CookieStore, error) {
	if len(cfg.HashKey) == 0 {
		return nil, fmt.Errorf("%w: hash key is required", ErrInvalidConfig)
	}
	if cfg.CookieName == "" {
		cfg.CookieName = defaultCookieName
	}
	if cfg.CookiePath == "" {
		cfg.CookiePath = defaultCookiePath
	}
	if cfg.Lifetime <= 0 {
		cfg.Lifetime = defaultLifetime
	}
	return &CookieStore{
		cfg:   cfg,
		codec: securecookie.New(cfg.HashKey, cfg.BlockKey),
	}, nil
}

// Token implements TokenStore.
func (s *CookieStore) Token(r *http.Request) string {
	cookie, err := r.Cookie(s.cfg.CookieName)
	if err != nil {
		return ""
	}
	var token string
	if err := s.codec.Decode(s.cfg.CookieName, cookie.Value, &token); err != nil {
		return ""
	}
	return token
}

// SetToken implements TokenStore.
func (s *CookieStore) SetToken(w http.ResponseWriter, token string) {
	if token == "" {
		s.ClearToken(w)
		return
	}
	encoded, err := s.codec.Encode(s.cfg.CookieName, token)
	if err != nil {
		// An encoding failure leaves the caller logged out rather than
		// half-authenticated.
		s.ClearToken(w)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     s.cfg.CookieName,
		Value:    encoded,
		Path:     s.cfg.CookiePath,
		MaxAge:   int(s.cfg.Lifetime.Seconds()),
		Secure:   s.cfg.CookieSecure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearToken implements TokenStore.
func (s *CookieStore) ClearToken(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.cfg.CookieName,
		Value:    "",
		Path:     s.cfg.CookiePath,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		Secure:   s.cfg.CookieSecure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// NewRandomKey returns a random key suitable for hash or block use.
func NewRandomKey(length int) []byte {
	if length <= 0 {
		length = 32
	}
	key := make([]byte, length)
	if _, err := rand.Read(key); err != nil {
		panic(fmt.Errorf("session: generate key: %w", err))
	}
	return key
}

// MemoryStore is an in-process TokenStore for tests.
type MemoryStore struct {
	Stored string
}

// Token implements TokenStore.
func (s *MemoryStore) Token(*http.Request) string { return s.Stored }

// SetToken implements TokenStore.
func (s *MemoryStore) SetToken(_ http.ResponseWriter, token string) { s.Stored = token }

// ClearToken implements TokenStore.
func (s *MemoryStore) ClearToken(http.ResponseWriter) { s.Stored = "" }
