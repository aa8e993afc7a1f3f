package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// ErrMissingCredential is returned when the selected provider has no API
// key configured. Validation and routing never run a network call, but the
// credential check happens before client construction so a keyless setup
// fails before any remote work starts.
var ErrMissingCredential = errors.New("missing credential")

// APIKeys holds all API keys loaded from environment
type APIKeys struct {
	Gemini string
	OpenAI string
}

// LoadEnv loads environment variables from a .env file if one exists.
// Missing .env files are fine; keys may be set system-wide.
func LoadEnv() error {
	envPaths := []string{
		".env",
		".env.local",
		"../.env",
		"../../.env",
	}

	for _, envPath := range envPaths {
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return fmt.Errorf("error loading %s file: %w", envPath, err)
			}
			break
		}
	}

	return nil
}

// GetAPIKeys retrieves and format-checks API keys from environment
// variables. An empty key is allowed here; KeyFor enforces presence for the
// provider actually selected.
func GetAPIKeys() (*APIKeys, error) {
	apiKeys := &APIKeys{
		Gemini: strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
		OpenAI: strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
	}

	if apiKeys.Gemini != "" {
		if !strings.HasPrefix(apiKeys.Gemini, "AIza") {
			return nil, fmt.Errorf("invalid GEMINI_API_KEY format: must start with 'AIza'")
		}
		if len(apiKeys.Gemini) < 30 {
			return nil, fmt.Errorf("invalid GEMINI_API_KEY format: too short")
		}
	}

	if apiKeys.OpenAI != "" {
		if !strings.HasPrefix(apiKeys.OpenAI, "sk-") {
			return nil, fmt.Errorf("invalid OPENAI_API_KEY format: must start with 'sk-'")
		}
		if len(apiKeys.OpenAI) < 20 {
			return nil, fmt.Errorf("invalid OPENAI_API_KEY format: too short")
		}
	}

	return apiKeys, nil
}

// KeyFor returns the key for the named provider, or a wrapped
// ErrMissingCredential when it is not configured.
func (k *APIKeys) KeyFor(provider string) (string, error) {
	switch provider {
	case "gemini":
		if k.Gemini == "" {
			return "", fmt.Errorf("%w: set GEMINI_API_KEY in environment or .env file", ErrMissingCredential)
		}
		return k.Gemini, nil
	case "openai":
		if k.OpenAI == "" {
			return "", fmt.Errorf("%w: set OPENAI_API_KEY in environment or .env file", ErrMissingCredential)
		}
		return k.OpenAI, nil
	default:
		return "", fmt.Errorf("no credential mapping for provider %q", provider)
	}
}

// InitializeConfig loads the environment and returns the parsed API keys.
func InitializeConfig() (*APIKeys, error) {
	if err := LoadEnv(); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	apiKeys, err := GetAPIKeys()
	if err != nil {
		return nil, fmt.Errorf("failed to get API keys: %w", err)
	}

	return apiKeys, nil
}
