package db_models

type City struct {
	BaseModel
	Name        string   `gorm:"uniqueIndex;not null"`
	Description string   `gorm:"type:text;not null"`
	Latitude    *float64 `gorm:"column:lat"`
	Longitude   *float64 `gorm:"column:lon"`

	POIs  []POI  `gorm:"foreignKey:CityID;constraint:OnDelete:CASCADE"`
	Users []User `gorm:"foreignKey:CityID;constraint:OnDelete:CASCADE"`
}
