// Package handlers contains the marketing site page and form handlers. Every
// handler converts backend errors into inline page state; the site stays up
// with an error banner when the backend is unreachable.
package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/Hec8/aissia-security-sub000/internal/backend"
	"github.com/Hec8/aissia-security-sub000/internal/i18n"
	"github.com/Hec8/aissia-security-sub000/internal/web/cms"
	"github.com/Hec8/aissia-security-sub000/internal/web/nav"
	"github.com/Hec8/aissia-security-sub000/internal/web/templates"
)

// Gateway is the slice of the backend client the public site consumes.
type Gateway interface {
	Services(ctx context.Context) ([]backend.Service, error)
	Products(ctx context.Context) ([]backend.Product, error)
	Trainings(ctx context.Context) ([]backend.Training, error)
	News(ctx context.Context) ([]backend.NewsItem, error)
	NewsItem(ctx context.Context, id int64) (*backend.NewsItem, error)
	Jobs(ctx context.Context) ([]backend.JobOffer, error)
	SubmitContact(ctx context.Context, payload backend.ContactRequest) error
	SubscribeNewsletter(ctx context.Context, email string) error
}

// Handlers groups the public pages and their dependencies.
type Handlers struct {
	Gateway Gateway
	Bundle  *i18n.Bundle
	Content *cms.Library

	// SiteBaseURL prefixes the hreflang alternate links; relative links are
	// emitted when empty.
	SiteBaseURL string
}

// localeKey carries the resolved locale through the request context.
type localeKey struct{}

// WithLocale stores the resolved locale on the request context.
func WithLocale(ctx context.Context, locale string) context.Context {
	return context.WithValue(ctx, localeKey{}, locale)
}

func (h *Handlers) locale(r *http.Request) string {
	if locale, ok := r.Context().Value(localeKey{}).(string); ok {
		return locale
	}
	return h.Bundle.Fallback()
}

// shell builds the layout view model shared by every page. path is the
// locale-relative path of the current page.
func (h *Handlers) shell(r *http.Request, titleKey, path string) templates.Shell {
	locale := h.locale(r)
	table := h.Bundle.Table(locale)

	alternates := make(map[string]string, len(h.Bundle.Supported()))
	for _, candidate := range h.Bundle.Supported() {
		alternates[candidate] = h.SiteBaseURL + nav.Href(candidate, path)
	}

	other := i18n.LocaleEN
	if locale == i18n.LocaleEN {
		other = i18n.LocaleFR
	}

	shell := templates.Shell{
		Title:            table[titleKey],
		Locale:           locale,
		Path:             path,
		Nav:              nav.Build(h.Bundle, locale, path),
		T:                table,
		SwitchHref:       h.Bundle.SwitchLocalePath(r.URL.Path, other),
		Alternates:       alternates,
		Year:             time.Now().Year(),
		NewsletterAction: nav.Href(locale, "/newsletter"),
	}

	switch r.URL.Query().Get("newsletter") {
	case "ok":
		shell.NewsletterSuccess = true
	case "invalid":
		shell.NewsletterError = table["newsletter.invalid"]
	case "error":
		shell.NewsletterError = table["form.error"]
	}
	return shell
}

func (h *Handlers) render(w http.ResponseWriter, page string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.Render(w, page, data); err != nil {
		log.Printf("web: render %s: %v", page, err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// loadError converts a backend failure into the localized inline banner text.
func (h *Handlers) loadError(r *http.Request, err error) string {
	log.Printf("web: backend: %v", err)
	return h.Bundle.T(h.locale(r), "error.load")
}

// NotFound renders the localized 404 page.
func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	data := templates.NotFoundData{Shell: h.shell(r, "error.not_found", r.URL.Path)}
	if err := templates.Render(w, "not_found", data); err != nil {
		log.Printf("web: render not_found: %v", err)
	}
}
