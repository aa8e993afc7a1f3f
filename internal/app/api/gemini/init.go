package gemini

import (
	"context"
	"os"

	"memomaker/internal/app/api"
	"memomaker/internal/config"
)

func init() {
	api.RegisterProvider("gemini", createGeminiClient)
}

func createGeminiClient(ctx context.Context, keys *config.APIKeys) (api.InferenceClient, error) {
	apiKey, err := keys.KeyFor("gemini")
	if err != nil {
		return nil, err
	}

	model := os.Getenv("GEMINI_MODEL")
	return NewClient(ctx, apiKey, model)
}
