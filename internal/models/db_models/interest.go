package db_models

type Interest struct {
	BaseModel
	Name  string `gorm:"uniqueIndex"`
	Users []User `gorm:"many2many:user_interests"`
}
