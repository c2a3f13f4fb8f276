package db_models

import (
	"time"

	"github.com/lib/pq"
	"github.com/pgvector/pgvector-go"
)

// LocationEmbedding stores a vector of the location's facts summary so
// "similar locations" lookups can run as a cosine-distance query.
type LocationEmbedding struct {
	LocationID string `gorm:"primaryKey;column:location_id"`
	City       string
	State      string
	Highlights pq.StringArray  `gorm:"type:text[]"`
	Embedding  pgvector.Vector `gorm:"type:vector(1536)"`
	CreatedAt  time.Time       `gorm:"autoCreateTime"`
}
