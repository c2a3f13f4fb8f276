package db_models

import "github.com/google/uuid"

// Trip is one directions request. Immutable after creation.
type Trip struct {
	BaseModel
	UserID       uuid.UUID `gorm:"index"`
	StartingTown string
	EndingTown   string

	History []History
}
