// Package httpserver assembles the public marketing site: locale-prefixed
// routes, Accept-Language negotiation on the bare root, and the form POST
// endpoints.
package httpserver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/Hec8/aissia-security-sub000/internal/i18n"
	"github.com/Hec8/aissia-security-sub000/internal/web/handlers"
)

// Config holds runtime options for the public HTTP server.
type Config struct {
	Address  string
	Bundle   *i18n.Bundle
	Handlers *handlers.Handlers

	// AllowedOrigins feeds the CORS policy on the form endpoints; empty
	// means same-origin only.
	AllowedOrigins []string
}

// New constructs the HTTP server with one route tree per supported locale.
func New(cfg Config) *http.Server {
	router := chi.NewRouter()
	router.Use(chimw.RequestID)
	router.Use(chimw.RealIP)
	router.Use(chimw.Logger)
	router.Use(chimw.Recoverer)
	router.Use(chimw.Compress(5))
	router.Use(chimw.Timeout(60 * time.Second))

	if len(cfg.AllowedOrigins) > 0 {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins: cfg.AllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		}))
	}

	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	// The bare root negotiates the visitor's locale once and redirects.
	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		locale := cfg.Bundle.Negotiate(r.Header.Get("Accept-Language"))
		http.Redirect(w, r, "/"+locale, http.StatusFound)
	})

	for _, locale := range cfg.Bundle.Supported() {
		mountLocale(router, cfg.Handlers, locale)
	}

	router.NotFound(withLocale(cfg.Bundle.Fallback(), cfg.Handlers.NotFound))

	return &http.Server{
		Addr:         cfg.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

func mountLocale(router chi.Router, h *handlers.Handlers, locale string) {
	router.Route("/"+locale, func(r chi.Router) {
		r.Use(localeMiddleware(locale))

		r.Get("/", h.Home)
		r.Get("/services", h.Services)
		r.Get("/produits", h.Products)
		r.Get("/formations", h.Trainings)
		r.Get("/technologies", h.Technologies)
		r.Get("/a-propos", h.About)
		r.Get("/actualites", h.News)
		r.Get("/actualites/{id}", h.NewsItem)
		r.Get("/recrutement", h.Recruitment)
		r.Get("/recrutement/{slug}", h.Offer)
		r.Get("/recrutement/{slug}/postuler", h.ApplyForm)
		r.Post("/recrutement/{slug}/postuler", h.ApplySubmit)
		r.Get("/contact", h.ContactForm)
		r.Post("/contact", h.ContactSubmit)
		r.Get("/devis", h.QuoteForm)
		r.Post("/devis", h.QuoteSubmit)
		r.Post("/newsletter", h.NewsletterSubscribe)
		r.Get("/pages/{slug}", h.ContentPage)

		r.NotFound(h.NotFound)
	})
}

// localeMiddleware pins the subtree's locale on the request context.
func localeMiddleware(locale string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(handlers.WithLocale(r.Context(), locale)))
		})
	}
}

func withLocale(locale string, fn http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fn(w, r.WithContext(handlers.WithLocale(r.Context(), locale)))
	}
}
