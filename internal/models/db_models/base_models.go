package db_models

import (
	"time"

	"gorm.io/gorm"
)

// BaseModel carries the numeric identity and unix-second timestamps shared by
// every catalog table. There is deliberately no DeletedAt: rows are removed
// for real and cascades run in the repositories.
type BaseModel struct {
	ID        uint  `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt int64 `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt int64 `gorm:"autoUpdateTime" json:"updated_at"`
}

// Hooks to manage int64 timestamps
func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	now := time.Now().Unix()
	b.CreatedAt = now
	b.UpdatedAt = now
	return nil
}

func (b *BaseModel) BeforeUpdate(tx *gorm.DB) error {
	b.UpdatedAt = time.Now().Unix()
	return nil
}
