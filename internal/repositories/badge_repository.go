package repositories

import (
	"context"

	"gorm.io/gorm"
	"yourtour/internal/models/db_models"
)

type BadgeRepository interface {
	ListAll(ctx context.Context) ([]db_models.Badge, error)
	FindByNames(ctx context.Context, names []string) ([]db_models.Badge, error)
}

type badgeRepository struct {
	db *gorm.DB
}

func NewBadgeRepository(db *gorm.DB) BadgeRepository {
	return &badgeRepository{db: db}
}

func (r *badgeRepository) ListAll(ctx context.Context) ([]db_models.Badge, error) {
	var badges []db_models.Badge
	if err := r.db.WithContext(ctx).Order("name").Find(&badges).Error; err != nil {
		return nil, err
	}
	return badges, nil
}

func (r *badgeRepository) FindByNames(ctx context.Context, names []string) ([]db_models.Badge, error) {
	if len(names) == 0 {
		return nil, nil
	}

	var badges []db_models.Badge
	if err := r.db.WithContext(ctx).Where("name IN ?", names).Find(&badges).Error; err != nil {
		return nil, err
	}
	return badges, nil
}
