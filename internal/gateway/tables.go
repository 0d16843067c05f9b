package gateway

import (
	"gorm.io/gorm"

	"github.com/esteticapro/clinic-manager/internal/models"
)

// Tables agrupa as coleções do gateway, uma por tipo de entidade.
type Tables struct {
	Clients       Collection[models.Client]
	Collaborators Collection[models.Collaborator]
	Services      Collection[models.Service]
	Leads         Collection[models.Lead]
	Agenda        Collection[models.AgendaItem]
	Transactions  Collection[models.Transaction]
	Categories    Collection[models.Category]
}

func NewTables(db *gorm.DB) Tables {
	return Tables{
		Clients:       NewCollection[models.Client](db),
		Collaborators: NewCollection[models.Collaborator](db),
		Services:      NewCollection[models.Service](db),
		Leads:         NewCollection[models.Lead](db),
		Agenda:        NewCollection[models.AgendaItem](db),
		Transactions:  NewCollection[models.Transaction](db),
		Categories:    NewCollection[models.Category](db),
	}
}
