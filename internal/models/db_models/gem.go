package db_models

import "github.com/google/uuid"

// Gem is curated reference data, seeded once from the static catalog.
type Gem struct {
	BaseModel
	City        string `gorm:"uniqueIndex:idx_gems_city_state"`
	State       string `gorm:"uniqueIndex:idx_gems_city_state"`
	Description string
}

// UserGem records a discovered gem, at most once per (user, gem).
type UserGem struct {
	BaseModel
	UserID uuid.UUID `gorm:"uniqueIndex:idx_user_gems_user_gem"`
	GemID  uuid.UUID `gorm:"uniqueIndex:idx_user_gems_user_gem"`

	Gem Gem `gorm:"foreignKey:GemID"`
}
