package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Transaction struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	Type        string  `gorm:"size:10;not null" json:"type"` // income | expense
	Description string  `gorm:"size:255;not null" json:"description"`
	Amount      float64 `gorm:"not null" json:"amount"`

	CategoryID     string  `gorm:"type:uuid;not null" json:"category_id"`
	ClientID       *string `gorm:"type:uuid" json:"client_id"`
	CollaboratorID *string `gorm:"type:uuid" json:"collaborator_id"`
	AgendaItemID   *string `gorm:"type:uuid" json:"agenda_item_id"`

	Date          time.Time `gorm:"type:date;not null;index" json:"date"`
	PaymentMethod string    `gorm:"size:30" json:"payment_method"`
	Status        string    `gorm:"size:20;default:'pending'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
