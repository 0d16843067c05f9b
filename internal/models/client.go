package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Cliente da clínica, sem login próprio
type Client struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	Name      string     `gorm:"size:100;not null" json:"name"`
	Phone     string     `gorm:"size:20;not null" json:"phone"`
	Email     string     `gorm:"size:100" json:"email"`
	TaxID     string     `gorm:"size:14" json:"tax_id"`
	BirthDate *time.Time `gorm:"type:date" json:"birth_date"`
	Address   string     `gorm:"size:255" json:"address"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Client) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
