package store

import (
	"context"
	"sync"

	"github.com/esteticapro/clinic-manager/internal/gateway"
	"github.com/esteticapro/clinic-manager/internal/logger"
	"github.com/esteticapro/clinic-manager/internal/models"
)

// ======================================================
// STORE
// ======================================================
//
// O Store é o cache de processo das coleções do gateway. Ele nunca é a
// fonte da verdade: toda ação de escrita é seguida de um reload completo
// da coleção, e nenhuma mutação local otimista é aplicada. Em caso de
// falha a coleção anterior permanece intacta e o erro fica registrado no
// status daquele tipo de entidade (status é por tipo, não global, para
// que ações concorrentes em tipos diferentes não se atropelem).

type Kind string

const (
	KindClients       Kind = "clients"
	KindCollaborators Kind = "collaborators"
	KindServices      Kind = "services"
	KindLeads         Kind = "leads"
	KindAgenda        Kind = "agenda"
	KindTransactions  Kind = "transactions"
	KindCategories    Kind = "categories"
)

// Status é o par loading/erro de um tipo de entidade.
type Status struct {
	Loading bool
	Err     error
}

type collection[T any] struct {
	table  gateway.Collection[T]
	sort   gateway.Sort
	items  []T
	status Status
}

type Store struct {
	mu  sync.RWMutex
	log logger.Logger

	clients       collection[models.Client]
	collaborators collection[models.Collaborator]
	services      collection[models.Service]
	leads         collection[models.Lead]
	agenda        collection[models.AgendaItem]
	transactions  collection[models.Transaction]
	categories    collection[models.Category]
}

func New(t gateway.Tables, log logger.Logger) *Store {
	return &Store{
		log: log,

		clients:       collection[models.Client]{table: t.Clients, sort: gateway.Asc("name")},
		collaborators: collection[models.Collaborator]{table: t.Collaborators, sort: gateway.Asc("name")},
		services:      collection[models.Service]{table: t.Services, sort: gateway.Asc("name")},
		leads:         collection[models.Lead]{table: t.Leads, sort: gateway.Desc("created_at")},
		agenda:        collection[models.AgendaItem]{table: t.Agenda, sort: gateway.Asc("date")},
		transactions:  collection[models.Transaction]{table: t.Transactions, sort: gateway.Desc("date")},
		categories:    collection[models.Category]{table: t.Categories, sort: gateway.Asc("name")},
	}
}

// ======================================================
// AÇÕES GENÉRICAS
// ======================================================

func fetch[T any](ctx context.Context, s *Store, kind Kind, c *collection[T]) error {
	s.mu.Lock()
	c.status = Status{Loading: true}
	s.mu.Unlock()

	rows, err := c.table.Select(ctx, gateway.Query{Sort: c.sort})

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		// coleção anterior fica como está
		c.status = Status{Err: err}
		s.log.Error("store: fetch failed", err)
		return err
	}

	c.items = rows
	c.status = Status{}
	s.log.Debug("store: fetched", map[string]any{"kind": string(kind), "rows": len(rows)})
	return nil
}

func create[T any](ctx context.Context, s *Store, kind Kind, c *collection[T], row *T) error {
	s.mu.Lock()
	c.status = Status{Loading: true}
	s.mu.Unlock()

	if err := c.table.Insert(ctx, row); err != nil {
		s.mu.Lock()
		c.status = Status{Err: err}
		s.mu.Unlock()
		s.log.Error("store: create failed", err)
		return err
	}

	// o payload enviado é descartado: a verdade vem do reload
	return fetch(ctx, s, kind, c)
}

func update[T any](ctx context.Context, s *Store, kind Kind, c *collection[T], id string, patch map[string]any) error {
	s.mu.Lock()
	c.status = Status{Loading: true}
	s.mu.Unlock()

	if err := c.table.Update(ctx, id, patch); err != nil {
		s.mu.Lock()
		c.status = Status{Err: err}
		s.mu.Unlock()
		s.log.Error("store: update failed", err)
		return err
	}

	return fetch(ctx, s, kind, c)
}

func remove[T any](ctx context.Context, s *Store, kind Kind, c *collection[T], id string) error {
	s.mu.Lock()
	c.status = Status{Loading: true}
	s.mu.Unlock()

	if err := c.table.Delete(ctx, id); err != nil {
		s.mu.Lock()
		c.status = Status{Err: err}
		s.mu.Unlock()
		s.log.Error("store: delete failed", err)
		return err
	}

	return fetch(ctx, s, kind, c)
}

func snapshot[T any](s *Store, c *collection[T]) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// ======================================================
// STATUS
// ======================================================

func (s *Store) Status(kind Kind) Status {
	s.mu.RLock()
	defer s.mu.RUnlock()

	switch kind {
	case KindClients:
		return s.clients.status
	case KindCollaborators:
		return s.collaborators.status
	case KindServices:
		return s.services.status
	case KindLeads:
		return s.leads.status
	case KindAgenda:
		return s.agenda.status
	case KindTransactions:
		return s.transactions.status
	case KindCategories:
		return s.categories.status
	}
	return Status{}
}
