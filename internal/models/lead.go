package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Lead struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	Name   string `gorm:"size:100;not null" json:"name"`
	Phone  string `gorm:"size:20;not null" json:"phone"`
	Email  string `gorm:"size:100" json:"email"`
	Source string `gorm:"size:50" json:"source"`
	Status string `gorm:"size:20;default:'new'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
}

func (l *Lead) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}
