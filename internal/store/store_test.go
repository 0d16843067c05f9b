package store_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/esteticapro/clinic-manager/internal/gateway"
	"github.com/esteticapro/clinic-manager/internal/logger"
	"github.com/esteticapro/clinic-manager/internal/models"
	"github.com/esteticapro/clinic-manager/internal/store"
)

// fakeCollection simula o gateway em memória. O conteúdo de rows é a
// "verdade" remota: o Store só deve enxergá-la através de reloads.
type fakeCollection[T any] struct {
	rows []T

	selectErr error
	insertErr error
	updateErr error
	deleteErr error

	onInsert func(row *T)
	onUpdate func(id string, patch map[string]any)
	onDelete func(id string)
}

func (f *fakeCollection[T]) Select(_ context.Context, _ gateway.Query) ([]T, error) {
	if f.selectErr != nil {
		return nil, f.selectErr
	}
	out := make([]T, len(f.rows))
	copy(out, f.rows)
	return out, nil
}

func (f *fakeCollection[T]) Insert(_ context.Context, row *T) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	if f.onInsert != nil {
		f.onInsert(row)
	}
	f.rows = append(f.rows, *row)
	return nil
}

func (f *fakeCollection[T]) Update(_ context.Context, id string, patch map[string]any) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	if f.onUpdate != nil {
		f.onUpdate(id, patch)
	}
	return nil
}

func (f *fakeCollection[T]) Delete(_ context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	if f.onDelete != nil {
		f.onDelete(id)
	}
	return nil
}

var _ gateway.Collection[models.Client] = (*fakeCollection[models.Client])(nil)

type fixture struct {
	store   *store.Store
	clients *fakeCollection[models.Client]
	leads   *fakeCollection[models.Lead]
}

func newFixture() *fixture {
	clients := &fakeCollection[models.Client]{}
	leads := &fakeCollection[models.Lead]{}

	tables := gateway.Tables{
		Clients:       clients,
		Collaborators: &fakeCollection[models.Collaborator]{},
		Services:      &fakeCollection[models.Service]{},
		Leads:         leads,
		Agenda:        &fakeCollection[models.AgendaItem]{},
		Transactions:  &fakeCollection[models.Transaction]{},
		Categories:    &fakeCollection[models.Category]{},
	}

	return &fixture{
		store:   store.New(tables, logger.New("error")),
		clients: clients,
		leads:   leads,
	}
}

func TestFetchReplacesSnapshot(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.clients.rows = []models.Client{{ID: "c1", Name: "Ana"}}
	require.NoError(t, f.store.FetchClients(ctx))
	require.Len(t, f.store.Clients(), 1)

	f.clients.rows = []models.Client{
		{ID: "c2", Name: "Bia"},
		{ID: "c3", Name: "Caio"},
	}
	require.NoError(t, f.store.FetchClients(ctx))

	got := f.store.Clients()
	require.Len(t, got, 2)
	assert.Equal(t, "c2", got[0].ID)

	st := f.store.Status(store.KindClients)
	assert.False(t, st.Loading)
	assert.NoError(t, st.Err)
}

func TestFetchFailureKeepsPreviousSnapshot(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.clients.rows = []models.Client{{ID: "c1", Name: "Ana"}}
	require.NoError(t, f.store.FetchClients(ctx))

	boom := errors.New("connection reset")
	f.clients.selectErr = boom

	err := f.store.FetchClients(ctx)
	require.Error(t, err)

	// coleção anterior permanece disponível
	got := f.store.Clients()
	require.Len(t, got, 1)
	assert.Equal(t, "Ana", got[0].Name)

	st := f.store.Status(store.KindClients)
	assert.ErrorIs(t, st.Err, boom)
	assert.False(t, st.Loading)
}

func TestCreateReloadsFromGateway(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	// o id vem do gateway, nunca de quem chama
	f.clients.onInsert = func(row *models.Client) {
		row.ID = "server-id"
	}

	row := models.Client{Name: "Ana", Phone: "11999990000"}
	require.NoError(t, f.store.CreateClient(ctx, &row))

	got := f.store.Clients()
	require.Len(t, got, 1)
	assert.Equal(t, "server-id", got[0].ID)
	assert.Equal(t, "Ana", got[0].Name)
}

func TestCreateFailureSetsErrorStatus(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	boom := errors.New("unique violation")
	f.clients.insertErr = boom

	row := models.Client{Name: "Ana"}
	require.Error(t, f.store.CreateClient(ctx, &row))

	assert.Empty(t, f.store.Clients())
	assert.ErrorIs(t, f.store.Status(store.KindClients).Err, boom)
}

func TestUpdateReloadsFromGateway(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.clients.rows = []models.Client{{ID: "c1", Name: "Ana"}}
	f.clients.onUpdate = func(id string, patch map[string]any) {
		if id == "c1" {
			f.clients.rows[0].Name = patch["name"].(string)
		}
	}

	require.NoError(t, f.store.UpdateClient(ctx, "c1", map[string]any{"name": "Ana Paula"}))

	got := f.store.Clients()
	require.Len(t, got, 1)
	assert.Equal(t, "Ana Paula", got[0].Name)
}

func TestDeleteReloadsFromGateway(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.clients.rows = []models.Client{{ID: "c1"}, {ID: "c2"}}
	f.clients.onDelete = func(id string) {
		var kept []models.Client
		for _, r := range f.clients.rows {
			if r.ID != id {
				kept = append(kept, r)
			}
		}
		f.clients.rows = kept
	}

	require.NoError(t, f.store.DeleteClient(ctx, "c1"))

	got := f.store.Clients()
	require.Len(t, got, 1)
	assert.Equal(t, "c2", got[0].ID)
}

func TestStatusIsPerEntityKind(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.clients.rows = []models.Client{{ID: "c1"}}
	f.leads.selectErr = errors.New("timeout")

	require.NoError(t, f.store.FetchClients(ctx))
	require.Error(t, f.store.FetchLeads(ctx))

	// a falha em leads não contamina o status de clientes
	assert.NoError(t, f.store.Status(store.KindClients).Err)
	assert.Error(t, f.store.Status(store.KindLeads).Err)
}

func TestSnapshotIsACopy(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.clients.rows = []models.Client{{ID: "c1", Name: "Ana"}}
	require.NoError(t, f.store.FetchClients(ctx))

	got := f.store.Clients()
	got[0].Name = "mutado"

	again := f.store.Clients()
	assert.Equal(t, "Ana", again[0].Name)
}
