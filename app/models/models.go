// Package models holds shared model fields
package models

import (
	"time"

	"gorm.io/gorm"
)

// BaseModel common primary key field
type BaseModel struct {
	ID uint64 `gorm:"primaryKey;autoIncrement" json:"id,omitempty"`
}

// CommonTimestampsField created/updated timestamps
type CommonTimestampsField struct {
	CreatedAt time.Time `gorm:"column:created_at;index" json:"created_at,omitempty"`
	UpdatedAt time.Time `gorm:"column:updated_at;index" json:"updated_at,omitempty"`
}

// SoftDeletes soft delete support
type SoftDeletes struct {
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}
