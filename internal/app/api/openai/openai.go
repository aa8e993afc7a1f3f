package openai

import (
	"bytes"
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"

	"memomaker/internal/app/api"
	"memomaker/internal/app/model"
)

const DefaultChatModel = openai.GPT4oMini

var extByMime = map[string]string{
	"audio/mpeg": ".mp3",
	"audio/wav":  ".wav",
	"audio/mp4":  ".m4a",
	"audio/ogg":  ".ogg",
	"audio/flac": ".flac",
	"audio/aac":  ".aac",
}

// Client implements api.InferenceClient over the OpenAI API: Whisper for
// audio transcription, chat completions for memo generation. The API has no
// handle-returning upload call, so the upload method is rejected outright
// rather than silently downgraded to inline.
type Client struct {
	client    *openai.Client
	chatModel string
}

// NewClient creates an OpenAI-backed inference client.
func NewClient(apiKey string, chatModel string) *Client {
	if chatModel == "" {
		chatModel = DefaultChatModel
	}
	return &Client{
		client:    openai.NewClient(apiKey),
		chatModel: chatModel,
	}
}

func (c *Client) Name() string {
	return "openai"
}

func (c *Client) GenerateFromBytes(ctx context.Context, prompt string, data []byte, mimeType string) (*api.GenerateResult, error) {
	ext, ok := extByMime[mimeType]
	if !ok {
		ext = ".mp3"
	}

	req := openai.AudioRequest{
		Model:    openai.Whisper1,
		FilePath: "audio" + ext,
		Reader:   bytes.NewReader(data),
		Prompt:   prompt,
	}
	resp, err := c.client.CreateTranscription(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("createTranscription failed: %w", err)
	}

	// Whisper reports no token usage; the stats stay zero for this call.
	return &api.GenerateResult{Text: resp.Text}, nil
}

func (c *Client) UploadFile(ctx context.Context, path string, mimeType string) (string, error) {
	return "", fmt.Errorf("the openai provider does not support the upload method; use inline")
}

func (c *Client) GenerateFromHandle(ctx context.Context, prompt string, handle string, mimeType string) (*api.GenerateResult, error) {
	return nil, fmt.Errorf("the openai provider does not support handle-based generation; use inline")
}

func (c *Client) GenerateFromText(ctx context.Context, prompt string, text string) (*api.GenerateResult, error) {
	req := openai.ChatCompletionRequest{
		Model: c.chatModel,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt + "\n\n" + text,
			},
		},
	}
	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("createChatCompletion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("empty response from OpenAI")
	}

	return &api.GenerateResult{
		Text: resp.Choices[0].Message.Content,
		Usage: model.UsageStats{
			InputTokens:  int32(resp.Usage.PromptTokens),
			OutputTokens: int32(resp.Usage.CompletionTokens),
			TotalTokens:  int32(resp.Usage.TotalTokens),
		},
	}, nil
}
