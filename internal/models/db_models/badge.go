package db_models

import "github.com/google/uuid"

// Badge is pre-seeded catalog data.
type Badge struct {
	BaseModel
	Name           string `gorm:"uniqueIndex"`
	Description    string
	StaticImageURL string
}

// UserBadge is a grant record. The composite unique index makes the
// evaluator's insert-on-crossing-threshold idempotent under retries and races.
type UserBadge struct {
	BaseModel
	UserID  uuid.UUID `gorm:"uniqueIndex:idx_user_badges_user_badge"`
	BadgeID uuid.UUID `gorm:"uniqueIndex:idx_user_badges_user_badge"`

	Badge Badge `gorm:"foreignKey:BadgeID"`
}
