package facts_fx

import (
	"log"
	"os"

	"go.uber.org/fx"
	"yourtour/internal/services"
	"yourtour/pkg/utils"
)

var Module = fx.Provide(
	provideSummarizer, provideEmbeddingClient, provideFactsService)

// provideSummarizer prefers Gemini when GEMINI_API_KEY is set, since its
// free tier covers the summarization load, and falls back to OpenAI.
func provideSummarizer() utils.SummarizerClient {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		client, err := utils.NewGeminiClient(key, os.Getenv("GEMINI_MODEL"))
		if err != nil {
			log.Fatalf("Failed to create Gemini client: %v", err)
		}
		return client
	}
	return utils.NewOpenAIClient(os.Getenv("OPENAI_API_KEY"))
}

func provideEmbeddingClient() utils.EmbeddingClient {
	return utils.NewOpenAIClient(os.Getenv("OPENAI_API_KEY"))
}

func provideFactsService(summarizer utils.SummarizerClient) services.FactsServiceInterface {
	return services.NewFactsService(summarizer)
}
