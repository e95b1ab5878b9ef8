package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration, constructed once at startup
// and handed to each component's constructor.
type Config struct {
	ServerPort      int
	DatabasePath    string
	JWTSecret       string
	TokenTTL        time.Duration
	BcryptCost      int
	OpenAIKey       string
	OpenAIModel     string
	OpenAIBaseURL   string
	GenerateTimeout time.Duration
	CORSOrigins     []string
}

// Load loads configuration from the environment (including a local .env
// file when present) or sets defaults.
func Load() (*Config, error) {
	_ = godotenv.Load()

	port, err := strconv.Atoi(getEnv("PORT", "8080"))
	if err != nil {
		return nil, err
	}

	cost, err := strconv.Atoi(getEnv("BCRYPT_COST", "10"))
	if err != nil {
		return nil, err
	}

	genTimeout, err := strconv.Atoi(getEnv("GENERATE_TIMEOUT_SECONDS", "60"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		ServerPort:      port,
		DatabasePath:    getEnv("DATABASE_PATH", "./inkpost.db"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		TokenTTL:        7 * 24 * time.Hour,
		BcryptCost:      cost,
		OpenAIKey:       os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:     getEnv("OPENAI_MODEL", "gpt-3.5-turbo"),
		OpenAIBaseURL:   getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		GenerateTimeout: time.Duration(genTimeout) * time.Second,
		CORSOrigins:     splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
	}

	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}

	return cfg, nil
}

// Helper to get an environment variable with a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func splitCSV(input string) []string {
	var out []string
	for _, part := range strings.Split(input, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
