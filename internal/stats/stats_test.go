package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/esteticapro/clinic-manager/internal/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func amount(v float64) *float64 { return &v }

func TestLeads(t *testing.T) {
	leads := []models.Lead{
		{Status: "new"},
		{Status: "converted"},
		{Status: "contacted"},
		{Status: "converted"},
		{Status: "scheduled"},
		{Status: "converted"},
	}

	got := Leads(leads)
	assert.Equal(t, 6, got.Total)
	assert.Equal(t, 3, got.Converted)
	assert.Equal(t, 50, got.ConversionRate)
}

func TestLeadsRounding(t *testing.T) {
	leads := []models.Lead{
		{Status: "converted"},
		{Status: "new"},
		{Status: "new"},
	}
	// 1/3 → 33,33% → 33
	assert.Equal(t, 33, Leads(leads).ConversionRate)
}

func TestLeadsEmpty(t *testing.T) {
	got := Leads(nil)
	assert.Zero(t, got.Total)
	assert.Zero(t, got.ConversionRate)
}

func TestAppointmentsOn(t *testing.T) {
	target := date(2024, time.June, 10)
	items := []models.AgendaItem{
		{Date: target},
		{Date: date(2024, time.June, 11)},
		{Date: target},
	}
	assert.Equal(t, 2, AppointmentsOn(items, target))
}

func TestPaidIncome(t *testing.T) {
	txs := []models.Transaction{
		{Type: models.TypeIncome, Status: "paid", Amount: 100},
		{Type: models.TypeIncome, Status: "pending", Amount: 50},
		{Type: models.TypeExpense, Status: "paid", Amount: 30},
		{Type: models.TypeIncome, Status: "paid", Amount: 70},
		{Type: models.TypeIncome, Status: "cancelled", Amount: 999},
	}
	assert.Equal(t, 170.0, PaidIncome(txs))
}

func TestFilterByPeriod(t *testing.T) {
	txs := []models.Transaction{
		{ID: "a", Date: date(2024, time.May, 31)},
		{ID: "b", Date: date(2024, time.June, 1)},
		{ID: "c", Date: date(2024, time.June, 30)},
		{ID: "d", Date: date(2024, time.July, 1)},
	}

	got := FilterByPeriod(txs, date(2024, time.June, 1), date(2024, time.June, 30))
	require.Len(t, got, 2)
	assert.Equal(t, "b", got[0].ID)
	assert.Equal(t, "c", got[1].ID)
}

func TestFilterByPeriodOpenEnded(t *testing.T) {
	txs := []models.Transaction{
		{ID: "a", Date: date(2024, time.May, 31)},
		{ID: "b", Date: date(2024, time.June, 15)},
	}

	// limite zero não restringe aquele lado
	assert.Len(t, FilterByPeriod(txs, time.Time{}, time.Time{}), 2)
	assert.Len(t, FilterByPeriod(txs, date(2024, time.June, 1), time.Time{}), 1)
	assert.Len(t, FilterByPeriod(txs, time.Time{}, date(2024, time.June, 1)), 1)
}

func TestSummarize(t *testing.T) {
	txs := []models.Transaction{
		{Type: models.TypeIncome, Amount: 200, Date: date(2024, time.June, 5)},
		{Type: models.TypeExpense, Amount: 80, Date: date(2024, time.June, 10)},
		{Type: models.TypeIncome, Amount: 50, Date: date(2024, time.July, 1)}, // fora do período
	}

	got := Summarize(txs, date(2024, time.June, 1), date(2024, time.June, 30))
	assert.Equal(t, 200.0, got.Income)
	assert.Equal(t, 80.0, got.Expense)
	assert.Equal(t, 120.0, got.Balance)
}

func TestRankCollaborators(t *testing.T) {
	collaborators := []models.Collaborator{
		{ID: "co1", Name: "Marta"},
		{ID: "co2", Name: "Paula"},
		{ID: "co3", Name: "Rita"},
	}
	items := []models.AgendaItem{
		{CollaboratorID: "co1", Status: "completed", AmountPaid: amount(100), Date: date(2024, time.June, 5)},
		{CollaboratorID: "co2", Status: "completed", AmountPaid: amount(250), Date: date(2024, time.June, 6)},
		{CollaboratorID: "co1", Status: "completed", AmountPaid: amount(90), Date: date(2024, time.June, 7)},
		{CollaboratorID: "co2", Status: "cancelled", AmountPaid: amount(500), Date: date(2024, time.June, 8)},
		{CollaboratorID: "co1", Status: "completed", AmountPaid: amount(999), Date: date(2024, time.July, 8)}, // fora do período
	}

	got := RankCollaborators(collaborators, items, date(2024, time.June, 1), date(2024, time.June, 30))
	require.Len(t, got, 3)

	assert.Equal(t, "Paula", got[0].Name)
	assert.Equal(t, 250.0, got[0].Revenue)
	assert.Equal(t, 1, got[0].Appointments)

	assert.Equal(t, "Marta", got[1].Name)
	assert.Equal(t, 190.0, got[1].Revenue)
	assert.Equal(t, 2, got[1].Appointments)

	assert.Equal(t, "Rita", got[2].Name)
	assert.Zero(t, got[2].Revenue)
}

func TestRankCollaboratorsIgnoresUnpaid(t *testing.T) {
	collaborators := []models.Collaborator{{ID: "co1", Name: "Marta"}}
	items := []models.AgendaItem{
		{CollaboratorID: "co1", Status: "completed", Date: date(2024, time.June, 5)},
	}

	got := RankCollaborators(collaborators, items, time.Time{}, time.Time{})
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].Appointments)
	assert.Zero(t, got[0].Revenue)
}
