package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/esteticapro/clinic-manager/internal/httperr"
	"github.com/esteticapro/clinic-manager/internal/httpresp"
	"github.com/esteticapro/clinic-manager/internal/models"
	"github.com/esteticapro/clinic-manager/internal/store"
)

type CategoryHandler struct {
	store *store.Store
}

func NewCategoryHandler(s *store.Store) *CategoryHandler {
	return &CategoryHandler{store: s}
}

// --------- Requests ---------

type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Type        string `json:"type" binding:"required"`
	Description string `json:"description"`
}

type UpdateCategoryRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Active      *bool   `json:"active,omitempty"`
}

// --------- Handlers ---------

func (h *CategoryHandler) List(c *gin.Context) {
	if err := h.store.FetchCategories(c.Request.Context()); err != nil {
		httperr.Internal(c, "failed_to_list_categories", "Erro ao carregar categorias.")
		return
	}
	httpresp.List(c, h.store.Categories())
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if !models.IsTransactionType(req.Type) {
		httperr.Fields(c, map[string]string{"type": "deve ser income ou expense"})
		return
	}

	row := models.Category{
		Name:        req.Name,
		Type:        req.Type,
		Description: req.Description,
		Active:      true,
	}

	if err := h.store.CreateCategory(c.Request.Context(), &row); err != nil {
		httperr.Internal(c, "failed_to_create_category", "Erro ao criar categoria.")
		return
	}

	httpresp.CreatedList(c, h.store.Categories())
}

func (h *CategoryHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var req UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	// o tipo de uma categoria não muda depois de criada

	patch := map[string]any{}
	if req.Name != nil {
		patch["name"] = *req.Name
	}
	if req.Description != nil {
		patch["description"] = *req.Description
	}
	if req.Active != nil {
		patch["active"] = *req.Active
	}

	if len(patch) == 0 {
		httperr.BadRequest(c, "empty_patch", "Nenhum campo para atualizar.")
		return
	}

	if err := h.store.UpdateCategory(c.Request.Context(), id, patch); err != nil {
		if isNotFound(err) {
			httperr.NotFound(c, "category_not_found", "Categoria não encontrada.")
			return
		}
		httperr.Internal(c, "failed_to_update_category", "Erro ao atualizar categoria.")
		return
	}

	httpresp.List(c, h.store.Categories())
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.store.DeleteCategory(c.Request.Context(), id); err != nil {
		if isNotFound(err) {
			httperr.NotFound(c, "category_not_found", "Categoria não encontrada.")
			return
		}
		httperr.Internal(c, "failed_to_delete_category", "Erro ao excluir categoria.")
		return
	}

	httpresp.List(c, h.store.Categories())
}
