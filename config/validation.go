package config

import (
	"errors"
	"fmt"
	"net/url"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks that the credentials for the selected providers are present
// and that the configured endpoints are usable URLs
func ValidateConfig(cfg *Config) error {
	var errs []error

	switch cfg.LLMProvider {
	case ProviderGemini:
		if cfg.GeminiAPIKey == "" {
			errs = append(errs, ValidationError{"GEMINI_API_KEY", "GEMINI_API_KEY or GEMINI_API_KEY_FILE must be set"})
		}
		if cfg.GeminiModel == "" {
			errs = append(errs, ValidationError{"GEMINI_MODEL", "must not be empty"})
		}
	case ProviderDeepSeek:
		if cfg.DeepSeekAPIKey == "" {
			errs = append(errs, ValidationError{"DEEPSEEK_API_KEY", "DEEPSEEK_API_KEY or DEEPSEEK_API_KEY_FILE must be set"})
		}
		if !validURL(cfg.DeepSeekAPIURL) {
			errs = append(errs, ValidationError{"DEEPSEEK_API_URL", "must be an absolute http(s) URL"})
		}
	default:
		errs = append(errs, ValidationError{"LLM_PROVIDER", fmt.Sprintf("unknown provider %q", cfg.LLMProvider)})
	}

	if cfg.UnsplashAccessKey == "" {
		errs = append(errs, ValidationError{"UNSPLASH_ACCESS_KEY", "UNSPLASH_ACCESS_KEY or UNSPLASH_ACCESS_KEY_FILE must be set"})
	}
	if !validURL(cfg.UnsplashAPIURL) {
		errs = append(errs, ValidationError{"UNSPLASH_API_URL", "must be an absolute http(s) URL"})
	}
	if cfg.PlaceholderImageURL == "" {
		errs = append(errs, ValidationError{"PLACEHOLDER_IMAGE_URL", "must not be empty"})
	}
	if cfg.ImageSearchTimeout <= 0 {
		errs = append(errs, ValidationError{"IMAGE_SEARCH_TIMEOUT", "must be positive"})
	}
	if cfg.ServerPort == "" {
		errs = append(errs, ValidationError{"SERVER_PORT", "must not be empty"})
	}

	return errors.Join(errs...)
}

func validURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
