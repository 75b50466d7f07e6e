package db_models

type Rating struct {
	BaseModel
	Score   float64 `gorm:"not null"`
	Comment string  `gorm:"type:text"`

	POIID  uint `gorm:"column:poi_id;not null;index"`
	UserID uint `gorm:"not null;index"`

	POI  *POI  `gorm:"foreignKey:POIID"`
	User *User `gorm:"foreignKey:UserID"`
}
