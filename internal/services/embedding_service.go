package services

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"yourtour/internal/models/db_models"
	"yourtour/internal/models/response_models"
	"yourtour/internal/repositories"
	"yourtour/pkg/utils"
)

type EmbeddingServiceInterface interface {
	// IndexLocation embeds the location's facts summary. Best effort: a
	// failure is logged, never surfaced, since the visit already committed.
	IndexLocation(ctx context.Context, location *db_models.Location)
	SimilarLocations(ctx context.Context, locationID string) ([]response_models.SimilarLocationResponse, error)
}

type EmbeddingService struct {
	embeddingRepo repositories.LocationEmbeddingRepository
	client        utils.EmbeddingClient
}

func NewEmbeddingService(embeddingRepo repositories.LocationEmbeddingRepository, client utils.EmbeddingClient) EmbeddingServiceInterface {
	return &EmbeddingService{
		embeddingRepo: embeddingRepo,
		client:        client,
	}
}

// factsDigest is the subset of the facts payload worth embedding.
type factsDigest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Facts       []string `json:"facts"`
}

func (e *EmbeddingService) IndexLocation(ctx context.Context, location *db_models.Location) {
	var digest factsDigest
	if err := json.Unmarshal(location.Facts, &digest); err != nil {
		log.Printf("embedding skipped for %s, %s: unreadable facts: %v", location.City, location.State, err)
		return
	}

	text := strings.TrimSpace(digest.Title + " " + digest.Description + " " + strings.Join(digest.Facts, " "))
	if text == "" {
		return
	}

	vector, err := e.client.GetEmbedding(ctx, text)
	if err != nil {
		log.Printf("embedding failed for %s, %s: %v", location.City, location.State, err)
		return
	}

	highlights := digest.Facts
	if len(highlights) > 5 {
		highlights = highlights[:5]
	}

	err = e.embeddingRepo.Upsert(ctx, db_models.LocationEmbedding{
		LocationID: location.ID.String(),
		City:       location.City,
		State:      location.State,
		Highlights: highlights,
		Embedding:  vector,
	})
	if err != nil {
		log.Printf("embedding upsert failed for %s, %s: %v", location.City, location.State, err)
	}
}

func (e *EmbeddingService) SimilarLocations(ctx context.Context, locationID string) ([]response_models.SimilarLocationResponse, error) {
	embedding, err := e.embeddingRepo.FindByLocationId(ctx, locationID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if embedding == nil {
		return nil, utils.ErrLocationNotFound
	}

	similar, err := e.embeddingRepo.FindSimilar(ctx, embedding.Embedding, locationID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.SimilarLocationResponse, 0, len(similar))
	for _, row := range similar {
		out = append(out, response_models.SimilarLocationResponse{
			LocationID: row.LocationID,
			City:       row.City,
			State:      row.State,
			Highlights: row.Highlights,
		})
	}
	return out, nil
}
