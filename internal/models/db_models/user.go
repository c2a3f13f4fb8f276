package db_models

type User struct {
	BaseModel
	Username     string `gorm:"uniqueIndex"`
	Name         string
	Email        string `gorm:"uniqueIndex"`
	PasswordHash string
	Phone        string
	HomeState    string
	// Derived from UserGems inside the visit transaction; kept on the row so
	// the profile endpoint can read it without a join.
	GemsFound int `gorm:"default:0"`

	Trips     []Trip
	History   []History
	Badges    []UserBadge
	Gems      []UserGem
	Interests []Interest `gorm:"many2many:user_interests"`
}
