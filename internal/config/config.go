package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

// Moderation defaults, overridable via environment.
const (
	DefaultKeywordCacheTTL   = 5 * time.Minute
	DefaultAutoHideThreshold = 3
	DefaultCommentMaxLength  = 2000
	DefaultCommentMinLength  = 2
	DefaultSessionCookieName = "sensiblenews_session"
)

type Config struct {
	Port          string
	DatabaseURL   string
	SessionSecret string

	// KeywordCacheTTL is how long a loaded keyword snapshot stays valid
	// before the next read triggers a reload.
	KeywordCacheTTL time.Duration

	// AutoHideThreshold is the report count at which a comment is hidden
	// automatically.
	AutoHideThreshold int

	// FailClosed controls what happens when the keyword store is
	// unreachable. Default is fail open (moderate with an empty rule set)
	// so an outage never blocks comment posting.
	FailClosed bool
}

// Load reads configuration from the environment, falling back to defaults.
// Call after godotenv has had a chance to populate the environment.
func Load() *Config {
	cfg := &Config{
		Port:              getEnv("PORT", "8080"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		SessionSecret:     getEnv("SESSION_SECRET", "secret_key_change_me"),
		KeywordCacheTTL:   getDuration("MOD_KEYWORD_CACHE_TTL", DefaultKeywordCacheTTL),
		AutoHideThreshold: getInt("MOD_AUTO_HIDE_THRESHOLD", DefaultAutoHideThreshold),
		FailClosed:        getBool("MOD_FAIL_CLOSED", false),
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("Invalid %s=%q, using default %d", key, v, fallback)
		return fallback
	}
	return n
}

func getBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("Invalid %s=%q, using default %v", key, v, fallback)
		return fallback
	}
	return b
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("Invalid %s=%q, using default %s", key, v, fallback)
		return fallback
	}
	return d
}
