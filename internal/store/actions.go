package store

import (
	"context"

	"github.com/esteticapro/clinic-manager/internal/models"
)

// Uma quadra fetch/create/update/delete por tipo de entidade, espelhando o
// contrato do gateway. A ordem de cada coleção é a que o gateway devolveu.

// ======================================================
// CLIENTS
// ======================================================

func (s *Store) FetchClients(ctx context.Context) error {
	return fetch(ctx, s, KindClients, &s.clients)
}

func (s *Store) CreateClient(ctx context.Context, row *models.Client) error {
	return create(ctx, s, KindClients, &s.clients, row)
}

func (s *Store) UpdateClient(ctx context.Context, id string, patch map[string]any) error {
	return update(ctx, s, KindClients, &s.clients, id, patch)
}

func (s *Store) DeleteClient(ctx context.Context, id string) error {
	return remove(ctx, s, KindClients, &s.clients, id)
}

func (s *Store) Clients() []models.Client {
	return snapshot(s, &s.clients)
}

// ======================================================
// COLLABORATORS
// ======================================================

func (s *Store) FetchCollaborators(ctx context.Context) error {
	return fetch(ctx, s, KindCollaborators, &s.collaborators)
}

func (s *Store) CreateCollaborator(ctx context.Context, row *models.Collaborator) error {
	return create(ctx, s, KindCollaborators, &s.collaborators, row)
}

func (s *Store) UpdateCollaborator(ctx context.Context, id string, patch map[string]any) error {
	return update(ctx, s, KindCollaborators, &s.collaborators, id, patch)
}

func (s *Store) DeleteCollaborator(ctx context.Context, id string) error {
	return remove(ctx, s, KindCollaborators, &s.collaborators, id)
}

func (s *Store) Collaborators() []models.Collaborator {
	return snapshot(s, &s.collaborators)
}

// ======================================================
// SERVICES
// ======================================================

func (s *Store) FetchServices(ctx context.Context) error {
	return fetch(ctx, s, KindServices, &s.services)
}

func (s *Store) CreateService(ctx context.Context, row *models.Service) error {
	return create(ctx, s, KindServices, &s.services, row)
}

func (s *Store) UpdateService(ctx context.Context, id string, patch map[string]any) error {
	return update(ctx, s, KindServices, &s.services, id, patch)
}

func (s *Store) DeleteService(ctx context.Context, id string) error {
	return remove(ctx, s, KindServices, &s.services, id)
}

func (s *Store) Services() []models.Service {
	return snapshot(s, &s.services)
}

// ======================================================
// LEADS
// ======================================================

func (s *Store) FetchLeads(ctx context.Context) error {
	return fetch(ctx, s, KindLeads, &s.leads)
}

func (s *Store) CreateLead(ctx context.Context, row *models.Lead) error {
	return create(ctx, s, KindLeads, &s.leads, row)
}

func (s *Store) UpdateLead(ctx context.Context, id string, patch map[string]any) error {
	return update(ctx, s, KindLeads, &s.leads, id, patch)
}

func (s *Store) DeleteLead(ctx context.Context, id string) error {
	return remove(ctx, s, KindLeads, &s.leads, id)
}

func (s *Store) Leads() []models.Lead {
	return snapshot(s, &s.leads)
}

// ======================================================
// AGENDA
// ======================================================

func (s *Store) FetchAgenda(ctx context.Context) error {
	return fetch(ctx, s, KindAgenda, &s.agenda)
}

func (s *Store) CreateAgendaItem(ctx context.Context, row *models.AgendaItem) error {
	return create(ctx, s, KindAgenda, &s.agenda, row)
}

func (s *Store) UpdateAgendaItem(ctx context.Context, id string, patch map[string]any) error {
	return update(ctx, s, KindAgenda, &s.agenda, id, patch)
}

func (s *Store) DeleteAgendaItem(ctx context.Context, id string) error {
	return remove(ctx, s, KindAgenda, &s.agenda, id)
}

func (s *Store) Agenda() []models.AgendaItem {
	return snapshot(s, &s.agenda)
}

// ======================================================
// TRANSACTIONS
// ======================================================

func (s *Store) FetchTransactions(ctx context.Context) error {
	return fetch(ctx, s, KindTransactions, &s.transactions)
}

func (s *Store) CreateTransaction(ctx context.Context, row *models.Transaction) error {
	return create(ctx, s, KindTransactions, &s.transactions, row)
}

func (s *Store) UpdateTransaction(ctx context.Context, id string, patch map[string]any) error {
	return update(ctx, s, KindTransactions, &s.transactions, id, patch)
}

func (s *Store) DeleteTransaction(ctx context.Context, id string) error {
	return remove(ctx, s, KindTransactions, &s.transactions, id)
}

func (s *Store) Transactions() []models.Transaction {
	return snapshot(s, &s.transactions)
}

// ======================================================
// CATEGORIES
// ======================================================

func (s *Store) FetchCategories(ctx context.Context) error {
	return fetch(ctx, s, KindCategories, &s.categories)
}

func (s *Store) CreateCategory(ctx context.Context, row *models.Category) error {
	return create(ctx, s, KindCategories, &s.categories, row)
}

func (s *Store) UpdateCategory(ctx context.Context, id string, patch map[string]any) error {
	return update(ctx, s, KindCategories, &s.categories, id, patch)
}

func (s *Store) DeleteCategory(ctx context.Context, id string) error {
	return remove(ctx, s, KindCategories, &s.categories, id)
}

func (s *Store) Categories() []models.Category {
	return snapshot(s, &s.categories)
}
