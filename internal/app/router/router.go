package router

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"memomaker/internal/app/api"
	"memomaker/internal/app/model"
)

// Config carries the size policy for the submission router. It is passed in
// at construction so tests can pin thresholds without touching globals.
type Config struct {
	MinFileSize     int64 `validate:"gt=0"`
	MaxFileSize     int64 `validate:"gtfield=MinFileSize"`
	InlineThreshold int64 `validate:"gt=0"`
}

// DefaultConfig returns the production size policy.
func DefaultConfig() Config {
	return Config{
		MinFileSize:     DefaultMinFileSize,
		MaxFileSize:     DefaultMaxFileSize,
		InlineThreshold: DefaultInlineThreshold,
	}
}

// Router decides how to present a local audio file to the remote inference
// endpoint, validates it first, and reports progress milestones. It assumes
// at most one in-flight submission at a time.
type Router struct {
	client      api.InferenceClient
	cfg         Config
	logger      *zap.Logger
	onMilestone MilestoneFunc
}

// NewRouter builds a Router over the given inference client.
func NewRouter(client api.InferenceClient, cfg Config, logger *zap.Logger) (*Router, error) {
	if client == nil {
		return nil, fmt.Errorf("router requires an inference client")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid router config: %w", err)
	}
	return &Router{client: client, cfg: cfg, logger: logger}, nil
}

// Client exposes the underlying inference client for follow-up text calls
// (memo generation) that do not involve the audio file.
func (r *Router) Client() api.InferenceClient {
	return r.client
}

// Submit sends the validated submission to the remote endpoint using the
// given method and returns the generated transcript plus usage stats.
// Upload performs the handle-returning call first and references the handle
// in the generation request; inline embeds the raw bytes. One attempt only:
// remote failures come back as *RemoteServiceError with the provider's
// message, and the caller decides whether to re-invoke.
func (r *Router) Submit(ctx context.Context, sub *model.AudioSubmission, method Method, prompt string) (string, *model.UsageStats, error) {
	if sub.State.IsTerminal() {
		return "", nil, fmt.Errorf("submission for %s is already in terminal state %s", sub.Path, sub.State)
	}

	resolved := r.ResolveMethod(sub.SizeBytes, method)
	r.logger.Info("submitting audio",
		zap.String("file", sub.Path),
		zap.Int64("size_bytes", sub.SizeBytes),
		zap.String("method", string(resolved)),
		zap.String("provider", r.client.Name()),
	)

	start := time.Now()
	var (
		result *api.GenerateResult
		err    error
	)

	switch resolved {
	case MethodUpload:
		sub.State = model.StateUploadingHandle
		var handle string
		handle, err = r.client.UploadFile(ctx, sub.Path, sub.MimeType)
		if err != nil {
			sub.State = model.StateFailed
			return "", nil, &RemoteServiceError{Provider: r.client.Name(), Err: err}
		}
		r.notify(MilestoneUploadComplete)

		sub.State = model.StateGenerating
		result, err = r.client.GenerateFromHandle(ctx, prompt, handle, sub.MimeType)

	case MethodInline:
		var data []byte
		data, err = os.ReadFile(sub.Path)
		if err != nil {
			sub.State = model.StateFailed
			return "", nil, fmt.Errorf("reading %s: %w", sub.Path, err)
		}

		sub.State = model.StateGenerating
		result, err = r.client.GenerateFromBytes(ctx, prompt, data, sub.MimeType)

	default:
		return "", nil, fmt.Errorf("unresolved processing method %q", resolved)
	}

	if err != nil {
		sub.State = model.StateFailed
		return "", nil, &RemoteServiceError{Provider: r.client.Name(), Err: err}
	}
	r.notify(MilestoneGenerationComplete)

	usage := result.Usage
	usage.Elapsed = time.Since(start)
	sub.State = model.StateCompleted

	r.logger.Info("generation complete",
		zap.String("file", sub.Path),
		zap.Int32("total_tokens", usage.TotalTokens),
		zap.Duration("elapsed", usage.Elapsed),
	)
	return result.Text, &usage, nil
}
