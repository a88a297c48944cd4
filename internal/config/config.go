package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	// DefaultAPIBaseURL points at a local backend for development.
	DefaultAPIBaseURL = "http://localhost:8000/api"
	// DefaultSiteBaseURL is the public site origin used when building absolute links.
	DefaultSiteBaseURL = "http://localhost:3000"
)

// Config holds runtime settings shared by the web and admin binaries.
type Config struct {
	APIBaseURL  string
	SiteBaseURL string

	WebAddr   string
	AdminAddr string

	// AllowedOrigins feeds the CORS policy of the public form endpoints;
	// empty means same-origin only.
	AllowedOrigins []string

	// Cookie keys for the admin token cookie. HashKey is required in
	// production; a dev fallback is generated when empty.
	SessionHashKey  []byte
	SessionBlockKey []byte

	CookieSecure bool
}

// Load reads configuration from the environment, after sourcing an optional
// .env file. Missing values fall back to local-development defaults.
func Load() Config {
	// Ignore a missing .env; environments like Cloud Run inject vars directly.
	_ = godotenv.Load()

	cfg := Config{
		APIBaseURL:   getEnv("AISSIA_API_BASE_URL", DefaultAPIBaseURL),
		SiteBaseURL:  getEnv("AISSIA_SITE_BASE_URL", DefaultSiteBaseURL),
		WebAddr:      listenAddr("AISSIA_WEB_ADDR", "8080"),
		AdminAddr:    listenAddr("AISSIA_ADMIN_ADDR", "8081"),
		CookieSecure: getEnv("AISSIA_COOKIE_SECURE", "") != "",
	}

	if v := strings.TrimSpace(os.Getenv("AISSIA_ALLOWED_ORIGINS")); v != "" {
		for _, origin := range strings.Split(v, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, origin)
			}
		}
	}

	if v := os.Getenv("AISSIA_SESSION_HASH_KEY"); v != "" {
		cfg.SessionHashKey = []byte(v)
	}
	if v := os.Getenv("AISSIA_SESSION_BLOCK_KEY"); v != "" {
		cfg.SessionBlockKey = []byte(v)
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// listenAddr resolves a listen address, honouring PORT for Cloud Run style
// deployments when the dedicated variable is unset.
func listenAddr(key, fallbackPort string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if strings.Contains(v, ":") {
			return v
		}
		return ":" + v
	}
	if port := os.Getenv("PORT"); port != "" {
		return ":" + port
	}
	return ":" + fallbackPort
}
