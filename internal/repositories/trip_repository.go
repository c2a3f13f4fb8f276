package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"yourtour/internal/models/db_models"
)

type TripRepository interface {
	InsertTx(trip *db_models.Trip, ctx context.Context) error
	// ListByUser returns the user's most recent trips, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]db_models.Trip, error)
	// FindByIdForUser enforces ownership; nil, nil when the trip does not
	// exist or belongs to someone else.
	FindByIdForUser(ctx context.Context, tripID string, userID uuid.UUID) (*db_models.Trip, error)
}

type tripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) TripRepository {
	return &tripRepository{db: db}
}

func (r *tripRepository) InsertTx(trip *db_models.Trip, ctx context.Context) error {
	return r.db.WithContext(ctx).Create(trip).Error
}

func (r *tripRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]db_models.Trip, error) {
	var trips []db_models.Trip
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&trips).Error
	if err != nil {
		return nil, err
	}
	return trips, nil
}

func (r *tripRepository) FindByIdForUser(ctx context.Context, tripID string, userID uuid.UUID) (*db_models.Trip, error) {
	var trip db_models.Trip
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", tripID, userID).
		First(&trip).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &trip, nil
}
