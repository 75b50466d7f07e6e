package db_models

type User struct {
	BaseModel
	Email          string `gorm:"uniqueIndex;not null"`
	FirstName      string `gorm:"not null"`
	LastName       string `gorm:"not null"`
	HashedPassword string `gorm:"not null"`
	Role           Role   `gorm:"type:varchar(16);not null;default:USER"`
	CityID         *uint  `gorm:"index"`

	City    *City    `gorm:"foreignKey:CityID"`
	Ratings []Rating `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
