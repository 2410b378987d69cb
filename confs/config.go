package confs

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const defaultGeminiURL = "https://generativelanguage.googleapis.com/v1beta/models/gemini-pro:generateContent"

type Config struct {
	Port         string
	ClientURL    string
	JWTSecret    string
	TokenExpiry  time.Duration
	GeminiAPIKey string
	GeminiAPIURL string
}

// LoadConfig loads environment variables from a .env file if present
// and builds the runtime configuration.
func LoadConfig() (*Config, error) {
	// Load .env if it exists; ignore error if file not found
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("warning: could not load .env: %v", err)
		}
	}

	cfg := &Config{
		Port:         getEnv("PORT", "3000"),
		ClientURL:    getEnv("CLIENT_URL", "http://localhost:5173"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiAPIURL: getEnv("GEMINI_API_URL", defaultGeminiURL),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("missing required configuration: JWT_SECRET")
	}

	// Token lifetime in hours, default 7 days
	expireHours := 168
	if v := os.Getenv("JWT_EXPIRE_HOURS"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 {
			return nil, fmt.Errorf("invalid JWT_EXPIRE_HOURS: %q", v)
		}
		expireHours = parsed
	}
	cfg.TokenExpiry = time.Duration(expireHours) * time.Hour

	if cfg.GeminiAPIKey == "" {
		log.Println("warning: GEMINI_API_KEY not set, generation will use fallback content")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
