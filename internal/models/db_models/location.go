package db_models

import (
	"gorm.io/datatypes"
)

// Location is a (city, state) pair, created lazily on first visit. Facts is
// the cached summarizer payload; an empty payload marks a city "in the wild".
type Location struct {
	BaseModel
	City  string         `gorm:"uniqueIndex:idx_locations_city_state"`
	State string         `gorm:"uniqueIndex:idx_locations_city_state"`
	Facts datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
	IsGem bool           `gorm:"default:false"`

	History []History
}
