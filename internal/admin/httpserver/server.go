// Package httpserver assembles the back-office HTTP server: the public login
// flow and the authenticated admin screens behind the token middleware.
package httpserver

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	custommw "github.com/Hec8/aissia-security-sub000/internal/admin/httpserver/middleware"
	"github.com/Hec8/aissia-security-sub000/internal/admin/httpserver/ui"
	"github.com/Hec8/aissia-security-sub000/internal/admin/joboffers"
	"github.com/Hec8/aissia-security-sub000/internal/admin/messages"
	"github.com/Hec8/aissia-security-sub000/internal/admin/newsletter"
	"github.com/Hec8/aissia-security-sub000/internal/admin/profile"
	"github.com/Hec8/aissia-security-sub000/internal/admin/quotes"
	"github.com/Hec8/aissia-security-sub000/internal/admin/session"
)

// Config holds runtime options for the admin HTTP server.
type Config struct {
	Address   string
	BasePath  string
	LoginPath string

	Authenticator Authenticator
	Tokens        session.TokenStore

	Messages   messages.Service
	Offers     joboffers.Service
	Quotes     *quotes.Store
	Newsletter *newsletter.Store
	Profile    profile.Service
}

// New constructs the HTTP server with the middleware stack and all admin
// routes mounted under the base path.
func New(cfg Config) *http.Server {
	router := chi.NewRouter()
	router.Use(chimw.RequestID)
	router.Use(chimw.RealIP)
	router.Use(chimw.Logger)
	router.Use(chimw.Recoverer)
	router.Use(chimw.Timeout(60 * time.Second))

	basePath := normalizeBasePath(cfg.BasePath)
	loginPath := resolveLoginPath(basePath, cfg.LoginPath)

	auth := newAuthHandlers(cfg.Authenticator, cfg.Tokens, basePath, loginPath)
	pages := &ui.Handlers{
		Messages:   messages.NewBoard(cfg.Messages),
		Offers:     cfg.Offers,
		Quotes:     cfg.Quotes,
		Newsletter: cfg.Newsletter,
		Profile:    cfg.Profile,
		Tokens:     cfg.Tokens,
		BasePath:   basePath,
		LoginPath:  loginPath,
	}

	router.Get(loginPath, auth.LoginForm)
	router.Post(loginPath, auth.LoginSubmit)

	mountAdminRoutes(router, basePath, routeOptions{
		Tokens:    cfg.Tokens,
		LoginPath: loginPath,
		Auth:      auth,
		Pages:     pages,
	})

	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	return &http.Server{
		Addr:         cfg.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

type routeOptions struct {
	Tokens    session.TokenStore
	LoginPath string
	Auth      *authHandlers
	Pages     *ui.Handlers
}

func mountAdminRoutes(router chi.Router, base string, opts routeOptions) {
	router.Route(base, func(r chi.Router) {
		r.Use(custommw.NoStore())
		r.Use(custommw.Auth(opts.Tokens, opts.LoginPath))

		r.Get("/", opts.Pages.DashboardPage)
		r.Post("/logout", opts.Auth.Logout)

		r.Route("/messages", func(r chi.Router) {
			r.Get("/", opts.Pages.MessagesPage)
			r.Post("/{id}/delete", opts.Pages.MessageDelete)
			r.Post("/{id}/status", opts.Pages.MessageStatus)
			r.Get("/{id}/attachment", opts.Pages.MessageAttachment)
		})

		r.Route("/job-offers", func(r chi.Router) {
			r.Get("/", opts.Pages.OffersPage)
			r.Get("/new", opts.Pages.OfferNewForm)
			r.Post("/", opts.Pages.OfferCreate)
			r.Get("/{id}/edit", opts.Pages.OfferEditForm)
			r.Post("/{id}", opts.Pages.OfferUpdate)
			r.Post("/{id}/delete", opts.Pages.OfferDelete)
		})

		r.Route("/quotes", func(r chi.Router) {
			r.Get("/", opts.Pages.QuotesPage)
			r.Post("/{id}/status", opts.Pages.QuoteStatus)
			r.Post("/{id}/delete", opts.Pages.QuoteDelete)
		})

		r.Route("/newsletter", func(r chi.Router) {
			r.Get("/", opts.Pages.NewsletterPage)
			r.Get("/export", opts.Pages.NewsletterExport)
			r.Post("/{id}/status", opts.Pages.NewsletterStatus)
			r.Post("/{id}/delete", opts.Pages.NewsletterDelete)
		})

		r.Route("/profile", func(r chi.Router) {
			r.Get("/", opts.Pages.ProfilePage)
			r.Post("/", opts.Pages.ProfileUpdate)
		})
	})
}

func normalizeBasePath(path string) string {
	p := strings.TrimSpace(path)
	if p == "" {
		return "/admin"
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if len(p) > 1 && strings.HasSuffix(p, "/") {
		p = strings.TrimRight(p, "/")
	}
	if p == "" {
		return "/"
	}
	return p
}

func resolveLoginPath(base string, override string) string {
	if strings.TrimSpace(override) != "" {
		return override
	}
	if base == "/" {
		return "/login"
	}
	return base + "/login"
}
