package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	PlaceholderAPIKey  = "YOUR_API_KEY_HERE"
	DefaultGeminiModel = "gemini-2.5-flash"
)

type Settings struct {
	Port         string
	GeminiAPIKey string
	GeminiModel  string
	DatabaseDSN  string
	CorsOrigins  []string
	CookieDomain string
	SessionTTL   time.Duration
	SessionLimit int
}

// Load reads the process environment. A missing API key is not fatal: the
// placeholder makes every remote call fail and the fallbacks take over.
func Load() Settings {
	apiKey := firstEnv("API_KEY", "GEMINI_API_KEY")
	if apiKey == "" {
		Logger.Warn("API_KEY environment variable not set. Using a placeholder; generated content will be unavailable.")
		apiKey = PlaceholderAPIKey
	}

	ttl, err := time.ParseDuration(envOr("SESSION_TTL", "2h"))
	if err != nil || ttl <= 0 {
		Logger.WithError(err).Warn("invalid SESSION_TTL, using 2h")
		ttl = 2 * time.Hour
	}

	limit, err := strconv.Atoi(envOr("SESSION_LIMIT", "5000"))
	if err != nil || limit <= 0 {
		Logger.WithError(err).Warn("invalid SESSION_LIMIT, using 5000")
		limit = 5000
	}

	return Settings{
		Port:         envOr("PORT", "8080"),
		GeminiAPIKey: apiKey,
		GeminiModel:  envOr("GEMINI_MODEL", DefaultGeminiModel),
		DatabaseDSN:  os.Getenv("DATABASE_DSN"),
		CorsOrigins:  csvOr("CORS_ORIGINS", "http://localhost:5173,http://localhost:3000"),
		CookieDomain: os.Getenv("COOKIE_DOMAIN"),
		SessionTTL:   ttl,
		SessionLimit: limit,
	}
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := strings.TrimSpace(os.Getenv(k)); v != "" {
			return v
		}
	}
	return ""
}

func csvOr(key, fallback string) []string {
	raw := envOr(key, fallback)
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
