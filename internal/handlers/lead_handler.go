package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/esteticapro/clinic-manager/internal/export"
	"github.com/esteticapro/clinic-manager/internal/gateway"
	"github.com/esteticapro/clinic-manager/internal/httperr"
	"github.com/esteticapro/clinic-manager/internal/httpresp"
	"github.com/esteticapro/clinic-manager/internal/models"
	"github.com/esteticapro/clinic-manager/internal/store"
)

type LeadHandler struct {
	store     *store.Store
	leads     gateway.Collection[models.Lead]
	generator export.Generator
}

func NewLeadHandler(
	s *store.Store,
	leads gateway.Collection[models.Lead],
	generator export.Generator,
) *LeadHandler {
	return &LeadHandler{store: s, leads: leads, generator: generator}
}

// --------- Requests ---------

type CreateLeadRequest struct {
	Name   string `json:"name" binding:"required"`
	Phone  string `json:"phone" binding:"required"`
	Email  string `json:"email"`
	Source string `json:"source"`
}

type UpdateLeadRequest struct {
	Name   *string `json:"name,omitempty"`
	Phone  *string `json:"phone,omitempty"`
	Email  *string `json:"email,omitempty"`
	Source *string `json:"source,omitempty"`
	Status *string `json:"status,omitempty"`
}

var leadStatuses = map[string]bool{
	"new":       true,
	"contacted": true,
	"scheduled": true,
	"converted": true,
}

// --------- Handlers ---------

func (h *LeadHandler) List(c *gin.Context) {
	if err := h.store.FetchLeads(c.Request.Context()); err != nil {
		httperr.Internal(c, "failed_to_list_leads", "Erro ao carregar leads.")
		return
	}
	httpresp.List(c, h.store.Leads())
}

func (h *LeadHandler) Create(c *gin.Context) {
	var req CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	row := models.Lead{
		Name:   req.Name,
		Phone:  req.Phone,
		Email:  req.Email,
		Source: req.Source,
		Status: "new",
	}

	if err := h.store.CreateLead(c.Request.Context(), &row); err != nil {
		httperr.Internal(c, "failed_to_create_lead", "Erro ao criar lead.")
		return
	}

	httpresp.CreatedList(c, h.store.Leads())
}

func (h *LeadHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var req UpdateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	patch := map[string]any{}
	if req.Name != nil {
		patch["name"] = *req.Name
	}
	if req.Phone != nil {
		patch["phone"] = *req.Phone
	}
	if req.Email != nil {
		patch["email"] = *req.Email
	}
	if req.Source != nil {
		patch["source"] = *req.Source
	}
	if req.Status != nil {
		if !leadStatuses[*req.Status] {
			httperr.BadRequest(c, "invalid_status", "Status de lead inválido.")
			return
		}
		patch["status"] = *req.Status
	}

	if len(patch) == 0 {
		httperr.BadRequest(c, "empty_patch", "Nenhum campo para atualizar.")
		return
	}

	if err := h.store.UpdateLead(c.Request.Context(), id, patch); err != nil {
		if isNotFound(err) {
			httperr.NotFound(c, "lead_not_found", "Lead não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_update_lead", "Erro ao atualizar lead.")
		return
	}

	httpresp.List(c, h.store.Leads())
}

func (h *LeadHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.store.DeleteLead(c.Request.Context(), id); err != nil {
		if isNotFound(err) {
			httperr.NotFound(c, "lead_not_found", "Lead não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_delete_lead", "Erro ao excluir lead.")
		return
	}

	httpresp.List(c, h.store.Leads())
}

// ======================================================
// EXPORT (PDF)
// ======================================================

func (h *LeadHandler) Export(c *gin.Context) {
	id := c.Param("id")

	rows, err := h.leads.Select(c.Request.Context(), gateway.ByID(id))
	if err != nil {
		httperr.Internal(c, "failed_to_load_lead", "Erro ao carregar lead.")
		return
	}
	if len(rows) == 0 {
		httperr.NotFound(c, "lead_not_found", "Lead não encontrado.")
		return
	}

	if err := h.generator.LeadProfile(c.Request.Context(), rows[0]); err != nil {
		httperr.Internal(c, "failed_to_export_lead", "Erro ao exportar lead.")
		return
	}

	c.JSON(202, gin.H{"status": "accepted"})
}
