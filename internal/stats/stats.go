package stats

import (
	"math"
	"sort"
	"time"

	"github.com/esteticapro/clinic-manager/internal/models"
	"github.com/esteticapro/clinic-manager/internal/schedule"
)

// Funções puras sobre os snapshots do store. Nada aqui acessa o gateway.

// ======================================================
// LEADS
// ======================================================

type LeadTotals struct {
	Total          int `json:"total"`
	Converted      int `json:"converted"`
	ConversionRate int `json:"conversion_rate"` // percentual arredondado
}

func Leads(leads []models.Lead) LeadTotals {
	t := LeadTotals{Total: len(leads)}
	for _, l := range leads {
		if l.Status == "converted" {
			t.Converted++
		}
	}
	if t.Total > 0 {
		t.ConversionRate = int(math.Round(float64(t.Converted) / float64(t.Total) * 100))
	}
	return t
}

// ======================================================
// AGENDA
// ======================================================

func AppointmentsOn(items []models.AgendaItem, day time.Time) int {
	return len(schedule.ItemsForDay(items, day))
}

// ======================================================
// FINANCEIRO
// ======================================================

// PaidIncome soma as receitas com status pago.
func PaidIncome(txs []models.Transaction) float64 {
	var sum float64
	for _, t := range txs {
		if t.Type == models.TypeIncome && models.TransactionStatus(t.Status) == models.TransactionPaid {
			sum += t.Amount
		}
	}
	return sum
}

type Summary struct {
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Balance float64 `json:"balance"`
}

// FilterByPeriod devolve as transações dentro do período, inclusivo nas
// duas pontas. Limite zero significa "sem limite" daquele lado.
func FilterByPeriod(txs []models.Transaction, from, to time.Time) []models.Transaction {
	var out []models.Transaction
	for _, t := range txs {
		if !from.IsZero() && t.Date.Before(from) {
			continue
		}
		if !to.IsZero() && t.Date.After(to) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// Summarize calcula receita, despesa e saldo do período.
func Summarize(txs []models.Transaction, from, to time.Time) Summary {
	var s Summary
	for _, t := range FilterByPeriod(txs, from, to) {
		switch t.Type {
		case models.TypeIncome:
			s.Income += t.Amount
		case models.TypeExpense:
			s.Expense += t.Amount
		}
	}
	s.Balance = s.Income - s.Expense
	return s
}

// ======================================================
// RANKING DE COLABORADORES
// ======================================================

type CollaboratorRank struct {
	CollaboratorID string  `json:"collaborator_id"`
	Name           string  `json:"name"`
	Revenue        float64 `json:"revenue"`
	Appointments   int     `json:"appointments"`
}

// RankCollaborators ordena os colaboradores pela receita de atendimentos
// concluídos no período (valor pago registrado no atendimento).
func RankCollaborators(
	collaborators []models.Collaborator,
	items []models.AgendaItem,
	from, to time.Time,
) []CollaboratorRank {

	byID := make(map[string]*CollaboratorRank, len(collaborators))
	ranks := make([]CollaboratorRank, 0, len(collaborators))
	for _, c := range collaborators {
		ranks = append(ranks, CollaboratorRank{CollaboratorID: c.ID, Name: c.Name})
	}
	for i := range ranks {
		byID[ranks[i].CollaboratorID] = &ranks[i]
	}

	for _, it := range items {
		if models.AgendaStatus(it.Status) != models.AgendaCompleted {
			continue
		}
		if !from.IsZero() && it.Date.Before(from) {
			continue
		}
		if !to.IsZero() && it.Date.After(to) {
			continue
		}

		r, ok := byID[it.CollaboratorID]
		if !ok {
			continue
		}
		r.Appointments++
		if it.AmountPaid != nil {
			r.Revenue += *it.AmountPaid
		}
	}

	sort.SliceStable(ranks, func(i, j int) bool {
		return ranks[i].Revenue > ranks[j].Revenue
	})
	return ranks
}
