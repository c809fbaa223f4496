package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Supported language model providers
const (
	ProviderGemini   = "gemini"
	ProviderDeepSeek = "deepseek"
)

const (
	defaultServerPort       = "5000"
	defaultGeminiModel      = "gemini-2.5-flash"
	defaultDeepSeekModel    = "deepseek-chat"
	defaultDeepSeekURL      = "https://api.deepseek.com/v1/chat/completions"
	defaultUnsplashURL      = "https://api.unsplash.com/search/photos"
	defaultPlaceholderImage = "https://via.placeholder.com/300?text=No+Image"
	defaultImageTimeout     = 30 * time.Second
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerHost string
	ServerPort string
	GinMode    string

	// Language model configuration
	LLMProvider    string
	GeminiAPIKey   string
	GeminiModel    string
	DeepSeekAPIKey string
	DeepSeekAPIURL string
	DeepSeekModel  string

	// Image search configuration
	UnsplashAccessKey   string
	UnsplashAPIURL      string
	PlaceholderImageURL string
	ImageSearchTimeout  time.Duration
}

// LoadConfig creates a new Config instance with values from environment variables or secret files
func LoadConfig() (*Config, error) {
	env := GetEnvironment()

	// A missing .env file is fine; CI and production inject real variables
	if env == Development || env == Test {
		if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
			log.Printf("Warning: failed to load .env file: %v", err)
		}
	}

	cfg := &Config{
		ServerHost:          os.Getenv("SERVER_HOST"),
		ServerPort:          getEnv("SERVER_PORT", defaultServerPort),
		GinMode:             os.Getenv("GIN_MODE"),
		LLMProvider:         strings.ToLower(getEnv("LLM_PROVIDER", ProviderGemini)),
		GeminiModel:         getEnv("GEMINI_MODEL", defaultGeminiModel),
		DeepSeekAPIURL:      getEnv("DEEPSEEK_API_URL", defaultDeepSeekURL),
		DeepSeekModel:       getEnv("DEEPSEEK_MODEL", defaultDeepSeekModel),
		UnsplashAPIURL:      getEnv("UNSPLASH_API_URL", defaultUnsplashURL),
		PlaceholderImageURL: getEnv("PLACEHOLDER_IMAGE_URL", defaultPlaceholderImage),
		ImageSearchTimeout:  defaultImageTimeout,
	}

	if raw := os.Getenv("IMAGE_SEARCH_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid IMAGE_SEARCH_TIMEOUT %q: %w", raw, err)
		}
		cfg.ImageSearchTimeout = d
	}

	var err error
	if cfg.GeminiAPIKey, err = readSecret("GEMINI_API_KEY"); err != nil {
		return nil, err
	}
	if cfg.DeepSeekAPIKey, err = readSecret("DEEPSEEK_API_KEY"); err != nil {
		return nil, err
	}
	if cfg.UnsplashAccessKey, err = readSecret("UNSPLASH_ACCESS_KEY"); err != nil {
		return nil, err
	}

	if cfg.GinMode == "" && env == Production {
		cfg.GinMode = "release"
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Addr returns the listen address for the HTTP server
func (c *Config) Addr() string {
	return c.ServerHost + ":" + c.ServerPort
}

// readSecret reads a credential from NAME, falling back to the file named by NAME_FILE
func readSecret(name string) (string, error) {
	if value := strings.TrimSpace(os.Getenv(name)); value != "" {
		return value, nil
	}

	path := os.Getenv(name + "_FILE")
	if path == "" {
		return "", nil
	}

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return "", fmt.Errorf("failed to read %s_FILE: %w", name, err)
	}
	return strings.TrimSpace(string(data)), nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
