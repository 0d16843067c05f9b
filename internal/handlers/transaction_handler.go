package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/esteticapro/clinic-manager/internal/audit"
	"github.com/esteticapro/clinic-manager/internal/export"
	"github.com/esteticapro/clinic-manager/internal/gateway"
	"github.com/esteticapro/clinic-manager/internal/httperr"
	"github.com/esteticapro/clinic-manager/internal/httpresp"
	"github.com/esteticapro/clinic-manager/internal/middleware"
	"github.com/esteticapro/clinic-manager/internal/models"
	"github.com/esteticapro/clinic-manager/internal/store"
	"github.com/esteticapro/clinic-manager/internal/validators"
)

type TransactionHandler struct {
	store        *store.Store
	transactions gateway.Collection[models.Transaction]
	generator    export.Generator
	audit        *audit.Dispatcher
	loc          *time.Location
}

func NewTransactionHandler(
	s *store.Store,
	transactions gateway.Collection[models.Transaction],
	generator export.Generator,
	dispatcher *audit.Dispatcher,
	loc *time.Location,
) *TransactionHandler {
	return &TransactionHandler{
		store:        s,
		transactions: transactions,
		generator:    generator,
		audit:        dispatcher,
		loc:          loc,
	}
}

// --------- Requests ---------

type CreateTransactionRequest struct {
	Type           string  `json:"type" binding:"required"`
	Description    string  `json:"description" binding:"required"`
	Amount         float64 `json:"amount" binding:"min=0"`
	CategoryID     string  `json:"category_id" binding:"required"`
	ClientID       *string `json:"client_id"`
	CollaboratorID *string `json:"collaborator_id"`
	AgendaItemID   *string `json:"agenda_item_id"`
	Date           string  `json:"date" binding:"required"`
	PaymentMethod  string  `json:"payment_method"`
}

type UpdateTransactionRequest struct {
	Description   *string  `json:"description,omitempty"`
	Amount        *float64 `json:"amount,omitempty"`
	CategoryID    *string  `json:"category_id,omitempty"`
	Date          *string  `json:"date,omitempty"`
	PaymentMethod *string  `json:"payment_method,omitempty"`
	Status        *string  `json:"status,omitempty"`
}

// --------- Handlers ---------

func (h *TransactionHandler) List(c *gin.Context) {
	if err := h.store.FetchTransactions(c.Request.Context()); err != nil {
		httperr.Internal(c, "failed_to_list_transactions", "Erro ao carregar transações.")
		return
	}
	httpresp.List(c, h.store.Transactions())
}

func (h *TransactionHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if !models.IsTransactionType(req.Type) {
		httperr.Fields(c, map[string]string{"type": "deve ser income ou expense"})
		return
	}
	if req.Amount < 0 {
		httperr.Fields(c, map[string]string{"amount": "não pode ser negativo"})
		return
	}

	date, ok := validators.ParseDate(req.Date, h.loc)
	if !ok {
		httperr.Fields(c, map[string]string{"date": "data inválida"})
		return
	}

	row := models.Transaction{
		Type:           req.Type,
		Description:    req.Description,
		Amount:         req.Amount,
		CategoryID:     req.CategoryID,
		ClientID:       req.ClientID,
		CollaboratorID: req.CollaboratorID,
		AgendaItemID:   req.AgendaItemID,
		Date:           date,
		PaymentMethod:  req.PaymentMethod,
		Status:         string(models.TransactionPending),
	}

	if err := h.store.CreateTransaction(c.Request.Context(), &row); err != nil {
		httperr.Internal(c, "failed_to_create_transaction", "Erro ao criar transação.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "transaction_created",
		Entity:   "transaction",
		EntityID: row.ID,
	})

	httpresp.CreatedList(c, h.store.Transactions())
}

func (h *TransactionHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)
	id := c.Param("id")

	var req UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	patch := map[string]any{}
	if req.Description != nil {
		patch["description"] = *req.Description
	}
	if req.Amount != nil {
		if *req.Amount < 0 {
			httperr.Fields(c, map[string]string{"amount": "não pode ser negativo"})
			return
		}
		patch["amount"] = *req.Amount
	}
	if req.CategoryID != nil {
		patch["category_id"] = *req.CategoryID
	}
	if req.Date != nil {
		date, ok := validators.ParseDate(*req.Date, h.loc)
		if !ok {
			httperr.Fields(c, map[string]string{"date": "data inválida"})
			return
		}
		patch["date"] = date
	}
	if req.PaymentMethod != nil {
		patch["payment_method"] = *req.PaymentMethod
	}

	if req.Status != nil {
		current, err := h.findTransaction(c, id)
		if err != nil {
			return // resposta já escrita
		}
		if err := models.CanTransitionTransaction(current.Status, *req.Status); err != nil {
			code, _ := httperr.BusinessCode(err)
			httperr.BadRequest(c, code, "Mudança de status inválida.")
			return
		}
		patch["status"] = *req.Status
	}

	if len(patch) == 0 {
		httperr.BadRequest(c, "empty_patch", "Nenhum campo para atualizar.")
		return
	}

	if err := h.store.UpdateTransaction(c.Request.Context(), id, patch); err != nil {
		if isNotFound(err) {
			httperr.NotFound(c, "transaction_not_found", "Transação não encontrada.")
			return
		}
		httperr.Internal(c, "failed_to_update_transaction", "Erro ao atualizar transação.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "transaction_updated",
		Entity:   "transaction",
		EntityID: id,
	})

	httpresp.List(c, h.store.Transactions())
}

func (h *TransactionHandler) Delete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)
	id := c.Param("id")

	if err := h.store.DeleteTransaction(c.Request.Context(), id); err != nil {
		if isNotFound(err) {
			httperr.NotFound(c, "transaction_not_found", "Transação não encontrada.")
			return
		}
		httperr.Internal(c, "failed_to_delete_transaction", "Erro ao excluir transação.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "transaction_deleted",
		Entity:   "transaction",
		EntityID: id,
	})

	httpresp.List(c, h.store.Transactions())
}

// ======================================================
// EXPORT (PDF, PERÍODO)
// ======================================================

func (h *TransactionHandler) Export(c *gin.Context) {
	fromStr := c.Query("from")
	toStr := c.Query("to")
	if fromStr == "" || toStr == "" {
		httperr.BadRequest(c, "missing_period", "Período obrigatório.")
		return
	}

	from, ok := validators.ParseDate(fromStr, h.loc)
	if !ok {
		httperr.BadRequest(c, "invalid_date", "Data inicial inválida.")
		return
	}
	to, ok := validators.ParseDate(toStr, h.loc)
	if !ok {
		httperr.BadRequest(c, "invalid_date", "Data final inválida.")
		return
	}

	// lista materializada direto do gateway, não do cache
	rows, err := h.transactions.Select(c.Request.Context(), gateway.Query{
		Filters: gateway.Between("date", from, to),
		Sort:    gateway.Asc("date"),
	})
	if err != nil {
		httperr.Internal(c, "failed_to_load_transactions", "Erro ao carregar transações.")
		return
	}

	if err := h.generator.TransactionsReport(c.Request.Context(), rows, from, to); err != nil {
		httperr.Internal(c, "failed_to_export_transactions", "Erro ao exportar transações.")
		return
	}

	c.JSON(202, gin.H{"status": "accepted", "rows": len(rows)})
}

// --------- helpers ---------

func (h *TransactionHandler) findTransaction(c *gin.Context, id string) (*models.Transaction, error) {
	rows, err := h.transactions.Select(c.Request.Context(), gateway.ByID(id))
	if err != nil {
		httperr.Internal(c, "failed_to_load_transaction", "Erro ao carregar transação.")
		return nil, err
	}
	if len(rows) == 0 {
		httperr.NotFound(c, "transaction_not_found", "Transação não encontrada.")
		return nil, httperr.ErrBusiness("transaction_not_found")
	}
	return &rows[0], nil
}
