package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Hec8/aissia-security-sub000/internal/backend"
	"github.com/Hec8/aissia-security-sub000/internal/config"
	"github.com/Hec8/aissia-security-sub000/internal/i18n"
	"github.com/Hec8/aissia-security-sub000/internal/web/cms"
	"github.com/Hec8/aissia-security-sub000/internal/web/handlers"
	"github.com/Hec8/aissia-security-sub000/internal/web/httpserver"
	"github.com/Hec8/aissia-security-sub000/internal/web/locales"
)

func main() {
	cfg := config.Load()

	gateway, err := backend.New(cfg.APIBaseURL, nil)
	if err != nil {
		log.Fatalf("backend client: %v", err)
	}

	bundle, err := i18n.Load(locales.FS(), i18n.LocaleFR, []string{i18n.LocaleFR, i18n.LocaleEN})
	if err != nil {
		log.Fatalf("load locales: %v", err)
	}

	srv := httpserver.New(httpserver.Config{
		Address:        cfg.WebAddr,
		AllowedOrigins: cfg.AllowedOrigins,
		Bundle:         bundle,
		Handlers: &handlers.Handlers{
			Gateway:     gateway,
			Bundle:      bundle,
			Content:     cms.NewLibrary(cms.DefaultContent(), i18n.LocaleFR),
			SiteBaseURL: cfg.SiteBaseURL,
		},
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("http server failed: %v", err)
		}
	}()

	log.Printf("web server listening on %s (api %s)", cfg.WebAddr, cfg.APIBaseURL)

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
		os.Exit(1)
	}
}
