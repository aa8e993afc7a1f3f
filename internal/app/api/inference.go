package api

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"memomaker/internal/app/model"
	"memomaker/internal/config"
)

// GenerateResult is one remote call's output: the generated text plus the
// token usage metadata the service reported for it.
type GenerateResult struct {
	Text  string
	Usage model.UsageStats
}

// InferenceClient abstracts the hosted generative-AI endpoint. Inline
// submissions go through GenerateFromBytes; upload submissions call
// UploadFile for an opaque handle and then GenerateFromHandle. Memo
// generation over an existing transcript uses GenerateFromText.
//
// Every method is a single blocking remote call; implementations must not
// retry internally.
type InferenceClient interface {
	Name() string

	GenerateFromBytes(ctx context.Context, prompt string, data []byte, mimeType string) (*GenerateResult, error)

	UploadFile(ctx context.Context, path string, mimeType string) (handle string, err error)

	GenerateFromHandle(ctx context.Context, prompt string, handle string, mimeType string) (*GenerateResult, error)

	GenerateFromText(ctx context.Context, prompt string, text string) (*GenerateResult, error)
}

// Factory builds a client from the configured API keys.
type Factory func(ctx context.Context, keys *config.APIKeys) (InferenceClient, error)

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Factory)
)

// RegisterProvider registers a client factory under a provider name.
// Called from provider package init functions.
func RegisterProvider(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = factory
}

// NewClient instantiates the named provider.
func NewClient(ctx context.Context, name string, keys *config.APIKeys) (InferenceClient, error) {
	registryMu.RLock()
	factory, ok := registry[name]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown inference provider %q (available: %v)", name, AvailableProviders())
	}
	return factory(ctx, keys)
}

// AvailableProviders lists registered provider names, sorted.
func AvailableProviders() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
