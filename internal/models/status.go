package models

import "github.com/esteticapro/clinic-manager/internal/httperr"

// ===============================
// Agenda Status
// ===============================

type AgendaStatus string

const (
	AgendaScheduled AgendaStatus = "scheduled"
	AgendaConfirmed AgendaStatus = "confirmed"
	AgendaCompleted AgendaStatus = "completed"
	AgendaCancelled AgendaStatus = "cancelled"
	AgendaNoShow    AgendaStatus = "no_show"
)

func IsAgendaStatus(s string) bool {
	switch AgendaStatus(s) {
	case AgendaScheduled, AgendaConfirmed, AgendaCompleted, AgendaCancelled, AgendaNoShow:
		return true
	}
	return false
}

// CanTransitionAgenda valida a mudança de status de um atendimento.
// Concluir exige agendado ou confirmado; cancelar/faltar exigem que o
// atendimento ainda não tenha acontecido.
func CanTransitionAgenda(from, to string) error {
	if !IsAgendaStatus(to) {
		return httperr.ErrBusiness("invalid_status")
	}
	if from == to {
		return nil
	}

	switch AgendaStatus(from) {
	case AgendaScheduled:
		switch AgendaStatus(to) {
		case AgendaConfirmed, AgendaCompleted, AgendaCancelled, AgendaNoShow:
			return nil
		}
	case AgendaConfirmed:
		switch AgendaStatus(to) {
		case AgendaCompleted, AgendaCancelled, AgendaNoShow:
			return nil
		}
	}

	return httperr.ErrBusiness("invalid_state")
}

// ===============================
// Transaction Status
// ===============================

type TransactionStatus string

const (
	TransactionPending   TransactionStatus = "pending"
	TransactionPaid      TransactionStatus = "paid"
	TransactionCancelled TransactionStatus = "cancelled"
)

func IsTransactionStatus(s string) bool {
	switch TransactionStatus(s) {
	case TransactionPending, TransactionPaid, TransactionCancelled:
		return true
	}
	return false
}

func CanTransitionTransaction(from, to string) error {
	if !IsTransactionStatus(to) {
		return httperr.ErrBusiness("invalid_status")
	}
	if from == to {
		return nil
	}

	if TransactionStatus(from) == TransactionPending {
		return nil
	}

	return httperr.ErrBusiness("invalid_state")
}

// ===============================
// Entity type enums
// ===============================

const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

func IsTransactionType(s string) bool {
	return s == TypeIncome || s == TypeExpense
}
