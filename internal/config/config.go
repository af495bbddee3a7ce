package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultJWTSecret signs tokens when JWT_SECRET is unset. It is refused in
// production.
const DefaultJWTSecret = "checkout-dev-secret"

// Config groups every setting the server reads from the environment.
type Config struct {
	Port        string
	Env         string
	CORSOrigins string

	JWTSecret string
	TokenTTL  time.Duration

	LogLevel  string
	LogFormat string

	LoginDelay   time.Duration
	OAuthDelay   time.Duration
	PaymentDelay time.Duration

	MockTransactionCount int
	MockSeed             uint64
}

// LoadEnv loads variables from a .env file if present.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found", "error", err)
	}
}

// Load reads the configuration, falling back to development defaults.
func Load() Config {
	return Config{
		Port:        GetEnv("PORT", "3000"),
		Env:         GetEnv("ENV", "development"),
		CORSOrigins: GetEnv("CORS_ORIGINS", "http://localhost:5173"),

		JWTSecret: GetEnv("JWT_SECRET", DefaultJWTSecret),
		TokenTTL:  GetDurationEnv("TOKEN_TTL", 24*time.Hour),

		LogLevel:  GetEnv("LOG_LEVEL", "info"),
		LogFormat: strings.ToLower(GetEnv("LOG_FORMAT", "text")),

		LoginDelay:   GetDurationEnv("LOGIN_DELAY", 800*time.Millisecond),
		OAuthDelay:   GetDurationEnv("OAUTH_DELAY", time.Second),
		PaymentDelay: GetDurationEnv("PAYMENT_DELAY", 1500*time.Millisecond),

		MockTransactionCount: GetIntEnv("MOCK_TRANSACTION_COUNT", 20),
		MockSeed:             uint64(GetIntEnv("MOCK_SEED", 0)),
	}
}

// GetEnv returns an environment variable or a default value.
func GetEnv(key, defaultVal string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultVal
}

// GetIntEnv returns an int environment variable or a default value.
func GetIntEnv(key string, defaultVal int) int {
	if val, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

// GetDurationEnv parses values such as "800ms" or "1h".
func GetDurationEnv(key string, defaultVal time.Duration) time.Duration {
	if val, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(val); err == nil && d >= 0 {
			return d
		}
	}
	return defaultVal
}

// IsProduction checks if the app runs in production mode.
func (c Config) IsProduction() bool {
	return c.Env == "production"
}
