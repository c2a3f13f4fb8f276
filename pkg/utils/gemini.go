package utils

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiClient implements SummarizerClient on Google's free-tier models.
type GeminiClient struct {
	client *genai.Client
	model  string
}

func NewGeminiClient(apiKey, model string) (*GeminiClient, error) {
	if model == "" {
		model = "gemini-1.5-flash"
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{client: client, model: model}, nil
}

func (c *GeminiClient) Summarize(ctx context.Context, city, state, rawText string) (json.RawMessage, error) {
	m := c.client.GenerativeModel(c.model)
	m.ResponseMIMEType = "application/json"
	m.SetTemperature(0.2)

	prompt := fmt.Sprintf("%s\n\nHere is the Wikipedia article for %s, %s: %s\n\nReturn JSON only. No comments, no markdown.",
		summaryPrompt, city, state, rawText)

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("gemini: no content")
	}

	content := []byte(fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]))
	if !json.Valid(content) {
		return nil, fmt.Errorf("gemini: response is not valid JSON")
	}
	return content, nil
}
