package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"yourtour/internal/models/db_models"
)

type AccountRepository interface {
	InsertTx(user *db_models.User, ctx context.Context) error
	FindById(ctx context.Context, id string) (*db_models.User, error)
	FindByEmail(ctx context.Context, email string) (*db_models.User, error)
	Update(ctx context.Context, user *db_models.User) error

	// GetProfile loads the user with badge, gem and interest grants attached.
	GetProfile(ctx context.Context, id string) (*db_models.User, error)
	ReplaceInterests(ctx context.Context, id string, names []string) error
	CountDistinctCities(ctx context.Context, id string) (int64, error)
	CountDistinctStates(ctx context.Context, id string) (int64, error)
}

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{
		db: db,
	}
}

func (a *accountRepository) InsertTx(user *db_models.User, ctx context.Context) error {
	return a.db.WithContext(ctx).Create(user).Error
}

func (a *accountRepository) FindById(ctx context.Context, id string) (*db_models.User, error) {
	var user db_models.User
	err := a.db.WithContext(ctx).First(&user, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}

func (a *accountRepository) FindByEmail(ctx context.Context, email string) (*db_models.User, error) {
	var user db_models.User
	err := a.db.WithContext(ctx).First(&user, "email = ?", email).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}

func (a *accountRepository) Update(ctx context.Context, user *db_models.User) error {
	return a.db.WithContext(ctx).Save(user).Error
}

func (a *accountRepository) GetProfile(ctx context.Context, id string) (*db_models.User, error) {
	var user db_models.User
	err := a.db.WithContext(ctx).
		Preload("Badges.Badge").
		Preload("Gems.Gem").
		Preload("Interests").
		First(&user, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}

func (a *accountRepository) ReplaceInterests(ctx context.Context, id string, names []string) error {
	return a.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var interests []db_models.Interest
		if len(names) > 0 {
			if err := tx.Where("name IN ?", names).Find(&interests).Error; err != nil {
				return err
			}
		}

		user := db_models.User{}
		if err := tx.First(&user, "id = ?", id).Error; err != nil {
			return err
		}

		return tx.Model(&user).Association("Interests").Replace(interests)
	})
}

func (a *accountRepository) CountDistinctCities(ctx context.Context, id string) (int64, error) {
	var count int64
	err := a.db.WithContext(ctx).Raw(`
		SELECT COUNT(DISTINCT l.city || ', ' || l.state)
		FROM histories h
		JOIN locations l ON h.location_id = l.id
		WHERE h.user_id = ?
	`, id).Scan(&count).Error
	return count, err
}

func (a *accountRepository) CountDistinctStates(ctx context.Context, id string) (int64, error) {
	var count int64
	err := a.db.WithContext(ctx).Raw(`
		SELECT COUNT(DISTINCT l.state)
		FROM histories h
		JOIN locations l ON h.location_id = l.id
		WHERE h.user_id = ?
	`, id).Scan(&count).Error
	return count, err
}
