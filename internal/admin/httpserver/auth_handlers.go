package httpserver

import (
	"context"
	"errors"
	"log"
	"net/http"
	"net/url"
	"path"
	"strings"

	"github.com/Hec8/aissia-security-sub000/internal/admin/session"
	"github.com/Hec8/aissia-security-sub000/internal/admin/templates"
	"github.com/Hec8/aissia-security-sub000/internal/backend"
)

// Authenticator exchanges credentials for a backend bearer token.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (string, error)
}

type authHandlers struct {
	auth      Authenticator
	tokens    session.TokenStore
	basePath  string
	loginPath string
}

func newAuthHandlers(auth Authenticator, tokens session.TokenStore, basePath, loginPath string) *authHandlers {
	if auth == nil {
		panic("httpserver: authenticator is required")
	}
	if tokens == nil {
		panic("httpserver: token store is required")
	}
	return &authHandlers{
		auth:      auth,
		tokens:    tokens,
		basePath:  basePath,
		loginPath: loginPath,
	}
}

// LoginForm renders the login page; already-authenticated visitors are sent
// straight to the dashboard.
func (h *authHandlers) LoginForm(w http.ResponseWriter, r *http.Request) {
	if strings.TrimSpace(h.tokens.Token(r)) != "" {
		http.Redirect(w, r, h.redirectTarget(r.URL.Query().Get("next")), http.StatusFound)
		return
	}
	h.renderLogin(w, templates.LoginData{
		Shell:     templates.Shell{Title: "Connexion", BasePath: h.basePath},
		Next:      h.sanitizeNext(r.URL.Query().Get("next")),
		LoginPath: h.loginPath,
		Message:   messageForQuery(r.URL.Query()),
	}, http.StatusOK)
}

// LoginSubmit validates credentials against the backend. A failed login
// persists no token and shows the server-provided message.
func (h *authHandlers) LoginSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderLoginError(w, templates.LoginData{}, "L'envoi du formulaire a échoué. Veuillez réessayer.", http.StatusBadRequest)
		return
	}

	email := strings.TrimSpace(r.PostFormValue("email"))
	password := r.PostFormValue("password")
	next := h.sanitizeNext(r.PostFormValue("next"))

	data := templates.LoginData{
		Shell:     templates.Shell{Title: "Connexion", BasePath: h.basePath},
		Email:     email,
		Next:      next,
		LoginPath: h.loginPath,
	}

	if email == "" || password == "" {
		h.renderLoginError(w, data, "Email et mot de passe sont requis.", http.StatusBadRequest)
		return
	}

	token, err := h.auth.Login(r.Context(), email, password)
	if err != nil {
		log.Printf("login failed for %s: %v", email, err)
		h.renderLoginError(w, data, loginErrorMessage(err), http.StatusUnauthorized)
		return
	}

	h.tokens.SetToken(w, token)
	http.Redirect(w, r, h.redirectTarget(next), http.StatusSeeOther)
}

// Logout clears the persisted token and returns to the login page.
func (h *authHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	h.tokens.ClearToken(w)
	http.Redirect(w, r, h.loginPath+"?status=logged_out", http.StatusSeeOther)
}

func (h *authHandlers) renderLogin(w http.ResponseWriter, data templates.LoginData, status int) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if status != http.StatusOK {
		w.WriteHeader(status)
	}
	if err := templates.Render(w, "login", data); err != nil {
		log.Printf("render login: %v", err)
	}
}

func (h *authHandlers) renderLoginError(w http.ResponseWriter, data templates.LoginData, msg string, status int) {
	if data.LoginPath == "" {
		data.LoginPath = h.loginPath
	}
	if data.BasePath == "" {
		data.Shell = templates.Shell{Title: "Connexion", BasePath: h.basePath}
	}
	data.Error = msg
	h.renderLogin(w, data, status)
}

func (h *authHandlers) redirectTarget(next string) string {
	if sanitized := h.sanitizeNext(next); sanitized != "" {
		return sanitized
	}
	if h.basePath == "" {
		return "/"
	}
	return h.basePath
}

// sanitizeNext accepts only local absolute paths under the admin base so a
// crafted next parameter cannot bounce the user off-site.
func (h *authHandlers) sanitizeNext(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Scheme != "" || parsed.Host != "" {
		return ""
	}
	cleaned := path.Clean(parsed.Path)
	if !strings.HasPrefix(cleaned, "/") || strings.HasPrefix(cleaned, "//") {
		return ""
	}
	if h.basePath != "/" && h.basePath != "" {
		if cleaned != h.basePath && !strings.HasPrefix(cleaned, h.basePath+"/") {
			return ""
		}
	}
	if cleaned == h.loginPath {
		return ""
	}
	if parsed.RawQuery != "" {
		cleaned += "?" + parsed.RawQuery
	}
	return cleaned
}

func loginErrorMessage(err error) string {
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) && strings.TrimSpace(apiErr.Message) != "" {
		return apiErr.Message
	}
	if errors.As(err, &apiErr) {
		return "Identifiants incorrects."
	}
	return "Connexion impossible. Vérifiez votre réseau et réessayez."
}

func messageForQuery(q url.Values) string {
	switch {
	case q.Get("status") == "logged_out":
		return "Vous avez été déconnecté."
	case q.Get("reason") == "expired":
		return "Votre session a expiré. Veuillez vous reconnecter."
	default:
		return ""
	}
}
