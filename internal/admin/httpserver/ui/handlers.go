// Package ui contains the admin back-office page handlers. Every handler
// converts its own backend errors to inline page state; a 401 from the
// backend is the one exception, centrally redirected to the login page.
package ui

import (
	"log"
	"net/http"
	"strconv"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/Hec8/aissia-security-sub000/internal/admin/joboffers"
	"github.com/Hec8/aissia-security-sub000/internal/admin/messages"
	"github.com/Hec8/aissia-security-sub000/internal/admin/newsletter"
	"github.com/Hec8/aissia-security-sub000/internal/admin/profile"
	"github.com/Hec8/aissia-security-sub000/internal/admin/quotes"
	"github.com/Hec8/aissia-security-sub000/internal/admin/session"
	"github.com/Hec8/aissia-security-sub000/internal/admin/templates"
)

// Handlers groups the admin screens and their dependencies.
type Handlers struct {
	Messages   *messages.Board
	Offers     joboffers.Service
	Quotes     *quotes.Store
	Newsletter *newsletter.Store
	Profile    profile.Service
	Tokens     session.TokenStore
	BasePath   string
	LoginPath  string

	mu        sync.Mutex
	adminName string
}

func (h *Handlers) shell(title, active string) templates.Shell {
	h.mu.Lock()
	name := h.adminName
	h.mu.Unlock()
	if name == "" {
		name = "Admin"
	}
	return templates.Shell{
		Title:     title,
		BasePath:  h.BasePath,
		Active:    active,
		AdminName: name,
	}
}

func (h *Handlers) setAdminName(name string) {
	h.mu.Lock()
	h.adminName = name
	h.mu.Unlock()
}

func (h *Handlers) render(w http.ResponseWriter, page string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.Render(w, page, data); err != nil {
		log.Printf("ui: render %s: %v", page, err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// renderStatus renders a page with a non-200 status, used when a form is
// re-displayed with validation errors.
func (h *Handlers) renderStatus(w http.ResponseWriter, status int, page string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := templates.Render(w, page, data); err != nil {
		log.Printf("ui: render %s: %v", page, err)
	}
}

func pathString(r *http.Request) string {
	return chi.URLParam(r, "id")
}

func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// flashMessage maps the ?error= redirect codes to localized inline text.
func flashMessage(code string) string {
	switch code {
	case "delete":
		return "La suppression a échoué. L'élément a été restauré."
	case "save":
		return "L'enregistrement a échoué. Veuillez réessayer."
	case "load":
		return "Impossible de charger les données. Veuillez réessayer."
	default:
		return ""
	}
}
