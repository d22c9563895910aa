package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	// DefaultBackendURL is used when neither BACKEND_URL nor VITE_BACKEND_URL is set.
	DefaultBackendURL = "http://localhost:8000"

	// DefaultCarID is the car_id sent with leads from the sitewide form.
	DefaultCarID = "general"

	// SiteName is shown in the navbar, footer and page titles.
	SiteName = "Auto Trader"
)

// Config holds everything the site reads from the environment. It is loaded
// once in main and passed to the constructors that need it.
type Config struct {
	Env  string
	Port string

	BackendURL     string
	BackendTimeout time.Duration

	Locale      string
	PhoneRegion string

	RateLimitMax     int
	RateLimitExp     time.Duration
	LeadRateLimitMax int
	LeadRateLimitExp time.Duration

	ProbeCacheTTL time.Duration

	DiagDatabaseURL string

	TwilioAccountSID string
	TwilioAuthToken  string
	TwilioFromNumber string
	LeadAlertNumber  string

	TailwindCSSURL string
	HTMXURL        string
}

// Load reads .env (when present) and the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	backendTimeout, err := parseDuration("BACKEND_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}
	rateLimitExp, err := parseDuration("RATE_LIMIT_EXP", "1m")
	if err != nil {
		return nil, err
	}
	leadRateLimitExp, err := parseDuration("LEAD_RATE_LIMIT_EXP", "10m")
	if err != nil {
		return nil, err
	}
	probeCacheTTL, err := parseDuration("PROBE_CACHE_TTL", "15s")
	if err != nil {
		return nil, err
	}
	rateLimitMax, err := parseInt("RATE_LIMIT_MAX", "120")
	if err != nil {
		return nil, err
	}
	leadRateLimitMax, err := parseInt("LEAD_RATE_LIMIT_MAX", "10")
	if err != nil {
		return nil, err
	}

	backendURL := getEnv("BACKEND_URL", getEnv("VITE_BACKEND_URL", DefaultBackendURL))

	cfg := &Config{
		Env:              getEnv("APP_ENV", "development"),
		Port:             getEnv("PORT", "8080"),
		BackendURL:       strings.TrimRight(backendURL, "/"),
		BackendTimeout:   backendTimeout,
		Locale:           getEnv("LOCALE", "en-US"),
		PhoneRegion:      strings.ToUpper(getEnv("PHONE_REGION", "US")),
		RateLimitMax:     rateLimitMax,
		RateLimitExp:     rateLimitExp,
		LeadRateLimitMax: leadRateLimitMax,
		LeadRateLimitExp: leadRateLimitExp,
		ProbeCacheTTL:    probeCacheTTL,
		DiagDatabaseURL:  getEnv("DIAG_DATABASE_URL", "file:diagnostics.db"),
		TwilioAccountSID: getEnv("TWILIO_ACCOUNT_SID", ""),
		TwilioAuthToken:  getEnv("TWILIO_AUTH_TOKEN", ""),
		TwilioFromNumber: getEnv("TWILIO_FROM_NUMBER", ""),
		LeadAlertNumber:  getEnv("LEAD_ALERT_NUMBER", ""),
		TailwindCSSURL:   getEnv("TAILWIND_CSS_URL", "https://cdn.jsdelivr.net/npm/tailwindcss@2.2.19/dist/tailwind.min.css"),
		HTMXURL:          getEnv("HTMX_URL", "https://unpkg.com/htmx.org@2.0.4"),
	}

	if cfg.BackendURL == "" {
		return nil, fmt.Errorf("BACKEND_URL must not be empty")
	}

	return cfg, nil
}

// IsDevelopment reports whether the site runs in the development environment.
func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.Env, "development")
}

// LeadAlertsEnabled reports whether every Twilio setting needed for lead alerts is present.
func (c *Config) LeadAlertsEnabled() bool {
	return c.TwilioAccountSID != "" && c.TwilioAuthToken != "" &&
		c.TwilioFromNumber != "" && c.LeadAlertNumber != ""
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func parseDuration(key, fallback string) (time.Duration, error) {
	d, err := time.ParseDuration(getEnv(key, fallback))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func parseInt(key, fallback string) (int, error) {
	n, err := strconv.Atoi(getEnv(key, fallback))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}
