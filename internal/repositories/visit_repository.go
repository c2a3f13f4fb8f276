package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"yourtour/internal/achievements"
	"yourtour/internal/models/db_models"
)

// VisitStore is the storage surface one visit-recording transaction runs
// against. It embeds achievements.Store so grant evaluation happens inside
// the same transaction as the History insert.
type VisitStore interface {
	achievements.Store

	GetOrCreateLocation(ctx context.Context, city, state string, facts datatypes.JSON, isGem bool) (*db_models.Location, error)
	InsertHistory(ctx context.Context, userID, tripID, locationID uuid.UUID) error

	CountDistinctCities(ctx context.Context, userID uuid.UUID) (int, error)
	CountDistinctStates(ctx context.Context, userID uuid.UUID) (int, error)
	CountWildVisits(ctx context.Context, userID uuid.UUID) (int, error)

	FindGem(ctx context.Context, city, state string) (*db_models.Gem, error)
	// GrantGem inserts a discovery record if absent; false means the gem was
	// already held (or a concurrent insert won), which is success.
	GrantGem(ctx context.Context, userID, gemID uuid.UUID) (bool, error)
	CountUserGems(ctx context.Context, userID uuid.UUID) (int, error)
	SetGemsFound(ctx context.Context, userID uuid.UUID, count int) error
}

// VisitRepository runs a visit-recording unit of work atomically: a rolled
// back transaction leaves no Location, History or grant rows behind.
type VisitRepository interface {
	InTransaction(ctx context.Context, fn func(store VisitStore) error) error
	// FindLocation reads outside any transaction so the recorder can decide
	// whether facts need generating before it opens one.
	FindLocation(ctx context.Context, city, state string) (*db_models.Location, error)
	IsGemLocation(ctx context.Context, city, state string) (bool, error)
}

type visitRepository struct {
	db *gorm.DB
}

func NewVisitRepository(db *gorm.DB) VisitRepository {
	return &visitRepository{db: db}
}

func (r *visitRepository) InTransaction(ctx context.Context, fn func(store VisitStore) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&visitStore{db: tx})
	})
}

func (r *visitRepository) FindLocation(ctx context.Context, city, state string) (*db_models.Location, error) {
	var location db_models.Location
	err := r.db.WithContext(ctx).
		Where("city = ? AND state = ?", city, state).
		First(&location).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &location, nil
}

func (r *visitRepository) IsGemLocation(ctx context.Context, city, state string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Gem{}).
		Where("city = ? AND state = ?", city, state).
		Count(&count).Error
	return count > 0, err
}

// visitStore wraps the transaction handle. Every method sees the same
// uncommitted state, so counts read here stay consistent with the History
// row appended in the same unit of work.
type visitStore struct {
	db *gorm.DB
}

func (s *visitStore) GetOrCreateLocation(ctx context.Context, city, state string, facts datatypes.JSON, isGem bool) (*db_models.Location, error) {
	var location db_models.Location
	err := s.db.WithContext(ctx).
		Where("city = ? AND state = ?", city, state).
		First(&location).Error
	if err == nil {
		return &location, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	created := db_models.Location{City: city, State: state, Facts: facts, IsGem: isGem}
	if err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&created).Error; err != nil {
		return nil, err
	}

	// Re-read so a concurrent insert that won the conflict still resolves to
	// the single canonical row for this (city, state).
	if err := s.db.WithContext(ctx).
		Where("city = ? AND state = ?", city, state).
		First(&location).Error; err != nil {
		return nil, err
	}
	return &location, nil
}

func (s *visitStore) InsertHistory(ctx context.Context, userID, tripID, locationID uuid.UUID) error {
	entry := db_models.History{UserID: userID, TripID: tripID, LocationID: locationID}
	return s.db.WithContext(ctx).Create(&entry).Error
}

func (s *visitStore) CountDistinctCities(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int
	err := s.db.WithContext(ctx).Raw(`
		SELECT COUNT(DISTINCT l.city || ', ' || l.state)
		FROM histories h
		JOIN locations l ON h.location_id = l.id
		WHERE h.user_id = ?
	`, userID).Scan(&count).Error
	return count, err
}

func (s *visitStore) CountDistinctStates(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int
	err := s.db.WithContext(ctx).Raw(`
		SELECT COUNT(DISTINCT l.state)
		FROM histories h
		JOIN locations l ON h.location_id = l.id
		WHERE h.user_id = ?
	`, userID).Scan(&count).Error
	return count, err
}

func (s *visitStore) CountWildVisits(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int
	err := s.db.WithContext(ctx).Raw(`
		SELECT COUNT(DISTINCT h.location_id)
		FROM histories h
		JOIN locations l ON h.location_id = l.id
		WHERE h.user_id = ? AND (l.facts IS NULL OR l.facts::text = '{}')
	`, userID).Scan(&count).Error
	return count, err
}

func (s *visitStore) FindGem(ctx context.Context, city, state string) (*db_models.Gem, error) {
	var gem db_models.Gem
	err := s.db.WithContext(ctx).
		Where("city = ? AND state = ?", city, state).
		First(&gem).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &gem, nil
}

func (s *visitStore) GrantGem(ctx context.Context, userID, gemID uuid.UUID) (bool, error) {
	grant := db_models.UserGem{UserID: userID, GemID: gemID}
	result := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&grant)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (s *visitStore) CountUserGems(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&db_models.UserGem{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return int(count), err
}

func (s *visitStore) SetGemsFound(ctx context.Context, userID uuid.UUID, count int) error {
	return s.db.WithContext(ctx).
		Model(&db_models.User{}).
		Where("id = ?", userID).
		Update("gems_found", count).Error
}

func (s *visitStore) HeldBadges(ctx context.Context, userID uuid.UUID) (map[string]bool, error) {
	var names []string
	err := s.db.WithContext(ctx).Raw(`
		SELECT b.name
		FROM user_badges ub
		JOIN badges b ON ub.badge_id = b.id
		WHERE ub.user_id = ?
	`, userID).Scan(&names).Error
	if err != nil {
		return nil, err
	}

	held := make(map[string]bool, len(names))
	for _, name := range names {
		held[name] = true
	}
	return held, nil
}

func (s *visitStore) GrantBadge(ctx context.Context, userID uuid.UUID, badge string) (bool, error) {
	var catalog db_models.Badge
	err := s.db.WithContext(ctx).First(&catalog, "name = ?", badge).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, fmt.Errorf("badge %q missing from catalog", badge)
		}
		return false, err
	}

	grant := db_models.UserBadge{UserID: userID, BadgeID: catalog.ID}
	result := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&grant)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
