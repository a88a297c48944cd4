package middleware

import (
	"context"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/Hec8/aissia-security-sub000/internal/admin/session"
	"github.com/Hec8/aissia-security-sub000/internal/backend"
)

type authContextKey string

const tokenContextKey authContextKey = "auth.token"

// Auth gates admin pages on the persisted bearer token. The token is only
// checked for presence; validity is established lazily when a backend call
// answers 401 (see RedirectOnUnauthorized).
func Auth(store session.TokenStore, loginPath string) func(http.Handler) http.Handler {
	if loginPath == "" {
		loginPath = "/login"
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := store.Token(r)
			if strings.TrimSpace(token) == "" {
				redirectToLogin(w, r, loginPath, "")
				return
			}
			ctx := context.WithValue(r.Context(), tokenContextKey, token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// TokenFromContext returns the bearer token attached by Auth.
func TokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenContextKey).(string)
	return token
}

// RedirectOnUnauthorized centralizes the expired-token recovery: when err
// is a backend 401 the token cookie is cleared and the user is sent to the
// login page. It reports whether the response has been written.
func RedirectOnUnauthorized(w http.ResponseWriter, r *http.Request, store session.TokenStore, loginPath string, err error) bool {
	if !backend.IsUnauthorized(err) {
		return false
	}
	log.Printf("auth: backend rejected token: %v", err)
	store.ClearToken(w)
	redirectToLogin(w, r, loginPath, "expired")
	return true
}

func redirectToLogin(w http.ResponseWriter, r *http.Request, loginPath, reason string) {
	target := loginPath
	u, err := url.Parse(loginPath)
	if err == nil {
		q := u.Query()
		if reason != "" {
			q.Set("reason", reason)
		}
		if next := sanitizeNext(r); next != "" {
			q.Set("next", next)
		}
		u.RawQuery = q.Encode()
		target = u.String()
	}
	http.Redirect(w, r, target, http.StatusFound)
}

// sanitizeNext records the requested path for the post-login redirect,
// rejecting anything that is not a local absolute path.
func sanitizeNext(r *http.Request) string {
	if r.URL == nil || r.Method != http.MethodGet {
		return ""
	}
	p := r.URL.Path
	if !strings.HasPrefix(p, "/") || strings.HasPrefix(p, "//") {
		return ""
	}
	if r.URL.RawQuery != "" {
		p += "?" + r.URL.RawQuery
	}
	return p
}

// NoStore disables caching for authenticated admin pages.
func NoStore() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Cache-Control", "no-store")
			next.ServeHTTP(w, r)
		})
	}
}
