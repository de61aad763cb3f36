package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultJWTSecret is the signing key used when JWT_SECRET is unset. It is
// public, so tokens signed with it prove nothing.
const DefaultJWTSecret = "dev-secret-change"

type Config struct {
	Port                string
	DatabaseURL         string
	DBMaxConns          int
	JWTSecret           string
	JWTIssuer           string
	JWTTTLMinutes       int
	SaveTokenTTLMinutes int

	AdminUsername     string
	AdminPasswordHash string
	AdminPassword     string

	CatalogPath string
	UploadDir   string
	MaxUploadMB int

	NERProvider       string
	OpenRouterAPIKey  string
	OpenRouterBaseURL string
	OpenRouterModel   string

	LogLevel slog.Level
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:                getEnv("PORT", "8080"),
		DatabaseURL:         os.Getenv("DATABASE_URL"),
		DBMaxConns:          getEnvInt("DB_MAX_CONNS", 10),
		JWTSecret:           getEnv("JWT_SECRET", DefaultJWTSecret),
		JWTIssuer:           getEnv("JWT_ISSUER", "cooked"),
		JWTTTLMinutes:       getEnvInt("JWT_TTL_MINUTES", 60),
		SaveTokenTTLMinutes: getEnvInt("SAVE_TOKEN_TTL_MINUTES", 24*60),

		AdminUsername:     os.Getenv("ADMIN_USERNAME"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		AdminPassword:     os.Getenv("ADMIN_PASSWORD"),

		CatalogPath: os.Getenv("CATALOG_PATH"),
		UploadDir:   os.Getenv("UPLOAD_DIR"),
		MaxUploadMB: getEnvInt("MAX_UPLOAD_MB", 10),

		NERProvider:       strings.ToLower(getEnv("NER_PROVIDER", "prose")),
		OpenRouterAPIKey:  os.Getenv("OPENROUTER_API_KEY"),
		OpenRouterBaseURL: os.Getenv("OPENROUTER_BASE_URL"),
		OpenRouterModel:   os.Getenv("OPENROUTER_MODEL"),

		LogLevel: getEnvLevel("LOG_LEVEL", slog.LevelInfo),
	}
}

// MaxUploadBytes is MaxUploadMB in bytes.
func (c Config) MaxUploadBytes() int {
	if c.MaxUploadMB <= 0 {
		return 0
	}
	return c.MaxUploadMB << 20
}

// UsesDefaultJWTSecret reports whether tokens would be signed with the
// public fallback key.
func (c Config) UsesDefaultJWTSecret() bool {
	return c.JWTSecret == "" || c.JWTSecret == DefaultJWTSecret
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvLevel(key string, def slog.Level) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(os.Getenv(key))); err != nil {
		return def
	}
	return lvl
}
