package db_models

import "github.com/google/uuid"

// History is the append-only visit ledger; one row per visit event.
// CreatedAt (BaseModel) is the server-assigned visit timestamp.
type History struct {
	BaseModel
	UserID     uuid.UUID `gorm:"index"`
	TripID     uuid.UUID `gorm:"index"`
	LocationID uuid.UUID `gorm:"index"`

	User     User     `gorm:"foreignKey:UserID"`
	Trip     Trip     `gorm:"foreignKey:TripID"`
	Location Location `gorm:"foreignKey:LocationID"`
}
