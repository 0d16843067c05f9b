package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Collaborator struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	Name     string `gorm:"size:100;not null" json:"name"`
	Email    string `gorm:"size:100;not null" json:"email"`
	Phone    string `gorm:"size:20" json:"phone"`
	Role     string `gorm:"size:50" json:"role"`
	PhotoURL string `gorm:"size:255" json:"photo_url"`
	Active   bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Collaborator) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
