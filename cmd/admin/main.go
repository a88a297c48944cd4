package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Hec8/aissia-security-sub000/internal/admin/httpserver"
	"github.com/Hec8/aissia-security-sub000/internal/admin/joboffers"
	"github.com/Hec8/aissia-security-sub000/internal/admin/messages"
	"github.com/Hec8/aissia-security-sub000/internal/admin/newsletter"
	"github.com/Hec8/aissia-security-sub000/internal/admin/profile"
	"github.com/Hec8/aissia-security-sub000/internal/admin/quotes"
	"github.com/Hec8/aissia-security-sub000/internal/admin/session"
	"github.com/Hec8/aissia-security-sub000/internal/backend"
	"github.com/Hec8/aissia-security-sub000/internal/config"
)

func main() {
	cfg := config.Load()

	client, err := backend.New(cfg.APIBaseURL, nil)
	if err != nil {
		log.Fatalf("backend client: %v", err)
	}

	tokens, err := session.NewCookieStore(session.Config{
		CookieSecure: cfg.CookieSecure,
		HashKey:      sessionHashKey(cfg),
		BlockKey:     cfg.SessionBlockKey,
	})
	if err != nil {
		log.Fatalf("session store: %v", err)
	}

	srv := httpserver.New(httpserver.Config{
		Address:       cfg.AdminAddr,
		BasePath:      getEnv("AISSIA_ADMIN_BASE_PATH", "/admin"),
		Authenticator: client,
		Tokens:        tokens,
		Messages:      messages.NewHTTPService(client),
		Offers:        joboffers.NewHTTPService(client),
		Quotes:        quotes.NewStore(),
		Newsletter:    newsletter.NewStore(),
		Profile:       profile.NewHTTPService(client),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("http server failed: %v", err)
		}
	}()

	log.Printf("admin server listening on %s (api %s)", cfg.AdminAddr, cfg.APIBaseURL)

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
		os.Exit(1)
	}
}

// sessionHashKey falls back to an ephemeral key so local setups work without
// configuration; sessions then reset on every restart.
func sessionHashKey(cfg config.Config) []byte {
	if len(cfg.SessionHashKey) > 0 {
		return cfg.SessionHashKey
	}
	log.Printf("AISSIA_SESSION_HASH_KEY not set; using an ephemeral key")
	return session.NewRandomKey(32)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
