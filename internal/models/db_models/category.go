package db_models

// Category groups POIs. Name is stored normalized (trimmed, lowercased) so the
// unique index makes uniqueness case-insensitive.
type Category struct {
	BaseModel
	Name string `gorm:"uniqueIndex;not null"`
	POIs []POI  `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
}
