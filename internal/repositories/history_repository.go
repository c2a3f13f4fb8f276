package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"yourtour/internal/models/db_models"
)

type HistoryRepository interface {
	// ListTripLocations returns the visit rows for one trip, newest first,
	// with the visited Location preloaded.
	ListTripLocations(ctx context.Context, tripID string, userID uuid.UUID) ([]db_models.History, error)
	FindLocationById(ctx context.Context, id string) (*db_models.Location, error)
}

type historyRepository struct {
	db *gorm.DB
}

func NewHistoryRepository(db *gorm.DB) HistoryRepository {
	return &historyRepository{db: db}
}

func (r *historyRepository) ListTripLocations(ctx context.Context, tripID string, userID uuid.UUID) ([]db_models.History, error) {
	var entries []db_models.History
	err := r.db.WithContext(ctx).
		Where("trip_id = ? AND user_id = ?", tripID, userID).
		Order("created_at DESC").
		Preload("Location").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *historyRepository) FindLocationById(ctx context.Context, id string) (*db_models.Location, error) {
	var location db_models.Location
	err := r.db.WithContext(ctx).First(&location, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &location, nil
}
