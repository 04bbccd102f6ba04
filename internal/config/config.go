package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Port        string
	PostgresURL string

	AIProvider     string
	AIAPIKey       string
	AIModel        string
	RetryBaseDelay time.Duration

	JWTSecret string

	ShareStore    string
	RedisAddress  string
	RedisPassword string
	RedisDatabase int
	ShareTTL      time.Duration
	PublicBaseURL string

	PDFLogoPath        string
	RateLimitPerMinute int
}

// Load reads .env when present, then the environment. Missing values fall
// back to defaults.
func Load() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg("could not read .env file")
	}

	cfg := Config{
		Port:               getEnvWithDefault("PORT", "8080"),
		PostgresURL:        os.Getenv("POSTGRES_URL"),
		AIProvider:         strings.ToLower(getEnvWithDefault("AI_PROVIDER", "gemini")),
		RetryBaseDelay:     getDuration("RETRY_BASE_DELAY", time.Second),
		JWTSecret:          os.Getenv("JWT_SECRET"),
		ShareStore:         strings.ToLower(getEnvWithDefault("SHARE_STORE", "memory")),
		RedisAddress:       getEnvWithDefault("REDIS_ADDRESS", "localhost:6379"),
		RedisPassword:      os.Getenv("REDIS_PASSWORD"),
		RedisDatabase:      getInt("REDIS_DATABASE", 0),
		ShareTTL:           getDuration("SHARE_TTL", 7*24*time.Hour),
		PublicBaseURL:      strings.TrimRight(getEnvWithDefault("PUBLIC_BASE_URL", "http://localhost:8080"), "/"),
		PDFLogoPath:        os.Getenv("PDF_LOGO_PATH"),
		RateLimitPerMinute: getInt("RATE_LIMIT_PER_MINUTE", 10),
	}

	switch cfg.AIProvider {
	case "openai":
		cfg.AIAPIKey = os.Getenv("OPENAI_API_KEY")
		cfg.AIModel = getEnvWithDefault("OPENAI_MODEL", "gpt-4o-mini")
	default:
		cfg.AIAPIKey = os.Getenv("GEMINI_API_KEY")
		cfg.AIModel = getEnvWithDefault("GEMINI_MODEL", "gemini-1.5-flash")
	}

	return cfg
}

// SetupLogging points the global zerolog logger at a console writer unless
// LOG_FORMAT=JSON, and applies LOG_LEVEL.
func SetupLogging() {
	if os.Getenv("LOG_FORMAT") != "JSON" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	level, err := zerolog.ParseLevel(strings.ToLower(os.Getenv("LOG_LEVEL")))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Warn().Str("key", key).Str("value", value).Msg("not an integer, using default")
		return defaultValue
	}
	return n
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Warn().Str("key", key).Str("value", value).Msg("not a duration, using default")
		return defaultValue
	}
	return d
}
