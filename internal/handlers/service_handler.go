package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/esteticapro/clinic-manager/internal/httperr"
	"github.com/esteticapro/clinic-manager/internal/httpresp"
	"github.com/esteticapro/clinic-manager/internal/models"
	"github.com/esteticapro/clinic-manager/internal/store"
)

type ServiceHandler struct {
	store *store.Store
}

func NewServiceHandler(s *store.Store) *ServiceHandler {
	return &ServiceHandler{store: s}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	DurationMin int     `json:"duration_min" binding:"required,min=1"`
	Price       float64 `json:"price" binding:"min=0"`
	Category    string  `json:"category"`
}

type UpdateServiceRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	DurationMin *int     `json:"duration_min,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Active      *bool    `json:"active,omitempty"`
}

// --------- Handlers ---------

func (h *ServiceHandler) List(c *gin.Context) {
	if err := h.store.FetchServices(c.Request.Context()); err != nil {
		httperr.Internal(c, "failed_to_list_services", "Erro ao carregar serviços.")
		return
	}
	httpresp.List(c, h.store.Services())
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Price < 0 {
		httperr.Fields(c, map[string]string{"price": "não pode ser negativo"})
		return
	}

	row := models.Service{
		Name:        req.Name,
		Description: req.Description,
		DurationMin: req.DurationMin,
		Price:       req.Price,
		Category:    strings.ToLower(req.Category),
		Active:      true,
	}

	if err := h.store.CreateService(c.Request.Context(), &row); err != nil {
		httperr.Internal(c, "failed_to_create_service", "Erro ao criar serviço.")
		return
	}

	httpresp.CreatedList(c, h.store.Services())
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	patch := map[string]any{}
	if req.Name != nil {
		patch["name"] = *req.Name
	}
	if req.Description != nil {
		patch["description"] = *req.Description
	}
	if req.DurationMin != nil {
		if *req.DurationMin <= 0 {
			httperr.Fields(c, map[string]string{"duration_min": "deve ser maior que zero"})
			return
		}
		patch["duration_min"] = *req.DurationMin
	}
	if req.Price != nil {
		if *req.Price < 0 {
			httperr.Fields(c, map[string]string{"price": "não pode ser negativo"})
			return
		}
		patch["price"] = *req.Price
	}
	if req.Category != nil {
		patch["category"] = strings.ToLower(*req.Category)
	}
	if req.Active != nil {
		patch["active"] = *req.Active
	}

	if len(patch) == 0 {
		httperr.BadRequest(c, "empty_patch", "Nenhum campo para atualizar.")
		return
	}

	if err := h.store.UpdateService(c.Request.Context(), id, patch); err != nil {
		if isNotFound(err) {
			httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_update_service", "Erro ao atualizar serviço.")
		return
	}

	httpresp.List(c, h.store.Services())
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.store.DeleteService(c.Request.Context(), id); err != nil {
		if isNotFound(err) {
			httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_delete_service", "Erro ao excluir serviço.")
		return
	}

	httpresp.List(c, h.store.Services())
}
