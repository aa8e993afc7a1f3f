package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"memomaker/internal/app/api"
	"memomaker/internal/app/model"
)

const DefaultModel = "gemini-flash-latest"

// Client implements api.InferenceClient over the Gemini API. Inline
// submissions ride as blob parts next to the prompt; upload submissions go
// through the Files API, which returns a URI the generation request
// references instead of raw bytes.
type Client struct {
	client *genai.Client
	model  string
}

// NewClient creates a Gemini-backed inference client.
func NewClient(ctx context.Context, apiKey string, model string) (*Client, error) {
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &Client{client: client, model: model}, nil
}

func (c *Client) Name() string {
	return "gemini"
}

func (c *Client) GenerateFromBytes(ctx context.Context, prompt string, data []byte, mimeType string) (*api.GenerateResult, error) {
	parts := []*genai.Part{
		genai.NewPartFromText(prompt),
		{InlineData: &genai.Blob{MIMEType: mimeType, Data: data}},
	}
	return c.generate(ctx, parts)
}

func (c *Client) UploadFile(ctx context.Context, path string, mimeType string) (string, error) {
	file, err := c.client.Files.UploadFromPath(ctx, path, &genai.UploadFileConfig{
		MIMEType: mimeType,
	})
	if err != nil {
		return "", fmt.Errorf("upload file: %w", err)
	}
	return file.URI, nil
}

func (c *Client) GenerateFromHandle(ctx context.Context, prompt string, handle string, mimeType string) (*api.GenerateResult, error) {
	parts := []*genai.Part{
		genai.NewPartFromText(prompt),
		genai.NewPartFromURI(handle, mimeType),
	}
	return c.generate(ctx, parts)
}

func (c *Client) GenerateFromText(ctx context.Context, prompt string, text string) (*api.GenerateResult, error) {
	parts := []*genai.Part{
		genai.NewPartFromText(prompt),
		genai.NewPartFromText(text),
	}
	return c.generate(ctx, parts)
}

func (c *Client) generate(ctx context.Context, parts []*genai.Part) (*api.GenerateResult, error) {
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, nil)
	if err != nil {
		return nil, fmt.Errorf("generate content: %w", err)
	}

	text := collectText(resp)
	if text == "" {
		return nil, fmt.Errorf("empty response from Gemini")
	}

	return &api.GenerateResult{
		Text:  text,
		Usage: usageFrom(resp),
	}, nil
}

func collectText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var text string
	for _, part := range resp.Candidates[0].Content.Parts {
		if part.Text != "" {
			text += part.Text
		}
	}
	return text
}

func usageFrom(resp *genai.GenerateContentResponse) model.UsageStats {
	if resp == nil || resp.UsageMetadata == nil {
		return model.UsageStats{}
	}
	return model.UsageStats{
		InputTokens:  resp.UsageMetadata.PromptTokenCount,
		OutputTokens: resp.UsageMetadata.CandidatesTokenCount,
		TotalTokens:  resp.UsageMetadata.TotalTokenCount,
	}
}
