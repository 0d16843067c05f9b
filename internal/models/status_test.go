package models

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/esteticapro/clinic-manager/internal/httperr"
)

func TestCanTransitionAgenda(t *testing.T) {
	// agendado pode ir para qualquer estado seguinte
	for _, to := range []string{"confirmed", "completed", "cancelled", "no_show"} {
		assert.NoError(t, CanTransitionAgenda("scheduled", to), to)
	}

	// confirmado não volta para agendado
	assert.NoError(t, CanTransitionAgenda("confirmed", "completed"))
	assert.NoError(t, CanTransitionAgenda("confirmed", "cancelled"))
	assert.NoError(t, CanTransitionAgenda("confirmed", "no_show"))
	assert.Error(t, CanTransitionAgenda("confirmed", "scheduled"))

	// estados terminais não mudam
	for _, from := range []string{"completed", "cancelled", "no_show"} {
		err := CanTransitionAgenda(from, "scheduled")
		assert.True(t, httperr.IsBusiness(err, "invalid_state"), from)
	}
}

func TestCanTransitionAgendaSameStatus(t *testing.T) {
	assert.NoError(t, CanTransitionAgenda("completed", "completed"))
}

func TestCanTransitionAgendaUnknownStatus(t *testing.T) {
	err := CanTransitionAgenda("scheduled", "done")
	assert.True(t, httperr.IsBusiness(err, "invalid_status"))
}

func TestCanTransitionTransaction(t *testing.T) {
	assert.NoError(t, CanTransitionTransaction("pending", "paid"))
	assert.NoError(t, CanTransitionTransaction("pending", "cancelled"))

	// pago e cancelado são terminais
	assert.Error(t, CanTransitionTransaction("paid", "pending"))
	assert.Error(t, CanTransitionTransaction("paid", "cancelled"))
	assert.Error(t, CanTransitionTransaction("cancelled", "paid"))

	err := CanTransitionTransaction("pending", "refunded")
	assert.True(t, httperr.IsBusiness(err, "invalid_status"))
}

func TestIsTransactionType(t *testing.T) {
	assert.True(t, IsTransactionType("income"))
	assert.True(t, IsTransactionType("expense"))
	assert.False(t, IsTransactionType("transfer"))
	assert.False(t, IsTransactionType(""))
}
