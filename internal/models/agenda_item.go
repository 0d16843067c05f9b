package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AgendaItem é um atendimento marcado. StartTime/EndTime são horários de
// parede "HH:MM" no fuso da clínica; EndTime é sempre derivado da duração do
// serviço, nunca aceito do cliente.
type AgendaItem struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	ClientID       string `gorm:"type:uuid;not null;index" json:"client_id"`
	CollaboratorID string `gorm:"type:uuid;not null;index" json:"collaborator_id"`
	ServiceID      string `gorm:"type:uuid;not null" json:"service_id"`

	Date      time.Time `gorm:"type:date;not null;index" json:"date"`
	StartTime string    `gorm:"size:5;not null" json:"start_time"`
	EndTime   string    `gorm:"size:5;not null" json:"end_time"`

	Status string `gorm:"size:20;default:'scheduled'" json:"status"`

	Notes         string   `gorm:"size:255" json:"notes"`
	AmountPaid    *float64 `json:"amount_paid"`
	PaymentMethod string   `gorm:"size:30" json:"payment_method"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *AgendaItem) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
