package service

import (
	"context"
	"fmt"
	"strings"

	"resume-parser-api/internal/domain"
	apperrors "resume-parser-api/pkg/errors"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiCompleter implements domain.Completer using the Gemini API. The
// response is returned as raw text; cleaning and schema recovery belong to
// the response parser.
type GeminiCompleter struct {
	client *genai.Client
	model  string
}

// NewGeminiCompleter creates a Gemini-backed completer from configuration
func NewGeminiCompleter(config domain.Config) (*GeminiCompleter, error) {
	apiKey := config.GetGeminiAPIKey()
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required")
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiCompleter{
		client: client,
		model:  config.GetGeminiModel(),
	}, nil
}

// Complete sends the prompt and returns the concatenated text parts of the
// first candidate.
func (c *GeminiCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	model := c.client.GenerativeModel(c.model)
	model.SetTemperature(0.1) // Low temperature for consistent output

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", apperrors.NewExternalError("completion request failed", err)
	}

	if len(resp.Candidates) == 0 {
		return "", apperrors.NewExternalError("no candidates in completion response", nil)
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", apperrors.NewExternalError("no content in completion response", nil)
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}
	if len(parts) == 0 {
		return "", apperrors.NewExternalError("no text parts in completion response", nil)
	}

	return strings.Join(parts, ""), nil
}

// Close releases the underlying API client.
func (c *GeminiCompleter) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}
