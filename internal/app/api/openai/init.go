package openai

import (
	"context"
	"os"

	"memomaker/internal/app/api"
	"memomaker/internal/config"
)

func init() {
	api.RegisterProvider("openai", createOpenAIClient)
}

func createOpenAIClient(_ context.Context, keys *config.APIKeys) (api.InferenceClient, error) {
	apiKey, err := keys.KeyFor("openai")
	if err != nil {
		return nil, err
	}

	chatModel := os.Getenv("OPENAI_CHAT_MODEL")
	return NewClient(apiKey, chatModel), nil
}
