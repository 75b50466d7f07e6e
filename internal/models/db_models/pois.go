package db_models

type POI struct {
	BaseModel
	Name        string `gorm:"not null"`
	Description string `gorm:"type:text"`
	Address     string
	PostalCode  string
	Latitude    *float64
	Longitude   *float64
	Images      ImageRefs

	CityID     uint `gorm:"not null;index"`
	CategoryID uint `gorm:"not null;index"`

	City     *City     `gorm:"foreignKey:CityID"`
	Category *Category `gorm:"foreignKey:CategoryID"`
	Ratings  []Rating  `gorm:"foreignKey:POIID;constraint:OnDelete:CASCADE"`
}

func (POI) TableName() string {
	return "pois"
}
