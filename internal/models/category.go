package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Categoria financeira (receita ou despesa)
type Category struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	Name        string `gorm:"size:100;not null" json:"name"`
	Type        string `gorm:"size:10;not null" json:"type"` // income | expense
	Description string `gorm:"size:255" json:"description"`
	Active      bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
