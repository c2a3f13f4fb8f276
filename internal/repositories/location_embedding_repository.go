package repositories

import (
	"context"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"yourtour/internal/models/db_models"
)

type LocationEmbeddingRepository interface {
	Upsert(ctx context.Context, embedding db_models.LocationEmbedding) error
	FindByLocationId(ctx context.Context, locationID string) (*db_models.LocationEmbedding, error)
	// FindSimilar returns nearby locations by cosine distance against the
	// stored facts vectors.
	FindSimilar(ctx context.Context, vector pgvector.Vector, excludeLocationID string) ([]db_models.LocationEmbedding, error)
}

type locationEmbeddingRepository struct {
	db *gorm.DB
}

func NewLocationEmbeddingRepository(db *gorm.DB) LocationEmbeddingRepository {
	return &locationEmbeddingRepository{db: db}
}

func (r *locationEmbeddingRepository) Upsert(ctx context.Context, embedding db_models.LocationEmbedding) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "location_id"}},
			UpdateAll: true,
		}).
		Create(&embedding).Error
}

func (r *locationEmbeddingRepository) FindByLocationId(ctx context.Context, locationID string) (*db_models.LocationEmbedding, error) {
	var embedding db_models.LocationEmbedding
	err := r.db.WithContext(ctx).
		First(&embedding, "location_id = ?", locationID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &embedding, nil
}

func (r *locationEmbeddingRepository) FindSimilar(ctx context.Context, vector pgvector.Vector, excludeLocationID string) ([]db_models.LocationEmbedding, error) {
	var results []db_models.LocationEmbedding

	query := `
        SELECT *, (1 - (embedding <=> $1)) as similarity
        FROM location_embeddings
        WHERE (1 - (embedding <=> $1)) > 0.7
          AND location_id <> $2
        ORDER BY embedding <=> $1
        LIMIT 15
    `

	err := r.db.WithContext(ctx).Raw(query, vector.String(), excludeLocationID).Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}
