package utils

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pgvector/pgvector-go"
	openai "github.com/sashabaranov/go-openai"
)

// SummarizerClient turns raw city text into the structured facts payload
// cached on Location rows. Implemented by OpenAI and Gemini clients.
type SummarizerClient interface {
	Summarize(ctx context.Context, city, state, rawText string) (json.RawMessage, error)
}

// EmbeddingClient produces the vector stored alongside a location's facts.
type EmbeddingClient interface {
	GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error)
}

const summaryPrompt = `You are YourTour, an AI that gives road-trippers engaging, factual information about the cities they pass through. Your source is the Wikipedia article provided by the user plus your general knowledge. Highlight history, culture, landmarks and notable features; include lesser-known trivia; be concise; do not falsify information. Generate content proportional to the size of the city. If there is not enough information for a key, return an empty array for it.

Your response must be a JSON object with the keys:
- "title": the title of the city.
- "description": a short description of the city.
- "facts": a list of interesting facts.
- "trivia": a list of fun, lesser-known trivia.
- "landmarks": a list of natural landmarks (lakes, rivers, parks).
- "attractions": a list of man-made attractions (museums, historical sites).
- "activities": a list of activities to do in the city.
- "history": a list of historical notes.
- "food": a list of culinary specialties unique to the city.
- "tips": a list of tips for visitors.`

type OpenAIClient struct {
	client *openai.Client
}

func NewOpenAIClient(apiKey string) *OpenAIClient {
	return &OpenAIClient{client: openai.NewClient(apiKey)}
}

func (c *OpenAIClient) Summarize(ctx context.Context, city, state, rawText string) (json.RawMessage, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: openai.GPT4o,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: summaryPrompt},
			{Role: openai.ChatMessageRoleUser, Content: fmt.Sprintf("Here is the Wikipedia article for %s, %s: %s", city, state, rawText)},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("openai: empty response")
	}

	content := []byte(resp.Choices[0].Message.Content)
	if !json.Valid(content) {
		return nil, fmt.Errorf("openai: response is not valid JSON")
	}
	return content, nil
}

func (c *OpenAIClient) GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error) {
	resp, err := c.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: []string{text},
		Model: openai.SmallEmbedding3,
	})
	if err != nil {
		return pgvector.Vector{}, fmt.Errorf("openai embeddings: %w", err)
	}
	if len(resp.Data) == 0 {
		return pgvector.Vector{}, fmt.Errorf("openai embeddings: empty response")
	}
	return pgvector.NewVector(resp.Data[0].Embedding), nil
}
