package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/esteticapro/clinic-manager/internal/httperr"
	"github.com/esteticapro/clinic-manager/internal/httpresp"
	"github.com/esteticapro/clinic-manager/internal/media"
	"github.com/esteticapro/clinic-manager/internal/models"
	"github.com/esteticapro/clinic-manager/internal/store"
)

// 2 MB é mais que suficiente para uma foto de perfil
const maxPhotoBytes = 2 << 20

type CollaboratorHandler struct {
	store   *store.Store
	storage media.Storage
}

func NewCollaboratorHandler(s *store.Store, storage media.Storage) *CollaboratorHandler {
	return &CollaboratorHandler{store: s, storage: storage}
}

// --------- Requests ---------

type CreateCollaboratorRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone"`
	Role  string `json:"role"`
}

type UpdateCollaboratorRequest struct {
	Name   *string `json:"name,omitempty"`
	Email  *string `json:"email,omitempty"`
	Phone  *string `json:"phone,omitempty"`
	Role   *string `json:"role,omitempty"`
	Active *bool   `json:"active,omitempty"`
}

// --------- Handlers ---------

func (h *CollaboratorHandler) List(c *gin.Context) {
	if err := h.store.FetchCollaborators(c.Request.Context()); err != nil {
		httperr.Internal(c, "failed_to_list_collaborators", "Erro ao carregar colaboradores.")
		return
	}
	httpresp.List(c, h.store.Collaborators())
}

func (h *CollaboratorHandler) Create(c *gin.Context) {
	var req CreateCollaboratorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	row := models.Collaborator{
		Name:   req.Name,
		Email:  req.Email,
		Phone:  req.Phone,
		Role:   req.Role,
		Active: true,
	}

	if err := h.store.CreateCollaborator(c.Request.Context(), &row); err != nil {
		httperr.Internal(c, "failed_to_create_collaborator", "Erro ao criar colaborador.")
		return
	}

	httpresp.CreatedList(c, h.store.Collaborators())
}

func (h *CollaboratorHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var req UpdateCollaboratorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	patch := map[string]any{}
	if req.Name != nil {
		patch["name"] = *req.Name
	}
	if req.Email != nil {
		patch["email"] = *req.Email
	}
	if req.Phone != nil {
		patch["phone"] = *req.Phone
	}
	if req.Role != nil {
		patch["role"] = *req.Role
	}
	if req.Active != nil {
		patch["active"] = *req.Active
	}

	if len(patch) == 0 {
		httperr.BadRequest(c, "empty_patch", "Nenhum campo para atualizar.")
		return
	}

	if err := h.store.UpdateCollaborator(c.Request.Context(), id, patch); err != nil {
		if isNotFound(err) {
			httperr.NotFound(c, "collaborator_not_found", "Colaborador não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_update_collaborator", "Erro ao atualizar colaborador.")
		return
	}

	httpresp.List(c, h.store.Collaborators())
}

func (h *CollaboratorHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.store.DeleteCollaborator(c.Request.Context(), id); err != nil {
		if isNotFound(err) {
			httperr.NotFound(c, "collaborator_not_found", "Colaborador não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_delete_collaborator", "Erro ao excluir colaborador.")
		return
	}

	httpresp.List(c, h.store.Collaborators())
}

// ======================================================
// FOTO DE PERFIL
// ======================================================

func (h *CollaboratorHandler) UploadPhoto(c *gin.Context) {
	id := c.Param("id")

	file, header, err := c.Request.FormFile("photo")
	if err != nil {
		httperr.BadRequest(c, "missing_photo", "Arquivo de foto obrigatório.")
		return
	}
	defer file.Close()

	if header.Size > maxPhotoBytes {
		httperr.BadRequest(c, "photo_too_large", "Foto acima do tamanho máximo.")
		return
	}

	data, err := media.ToWebP(file)
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "Imagem inválida.")
		return
	}

	url, err := h.storage.UploadPhoto(c.Request.Context(), data)
	if err != nil {
		httperr.Internal(c, "failed_to_upload_photo", "Erro ao enviar foto.")
		return
	}

	if err := h.store.UpdateCollaborator(c.Request.Context(), id, map[string]any{"photo_url": url}); err != nil {
		if isNotFound(err) {
			httperr.NotFound(c, "collaborator_not_found", "Colaborador não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_update_collaborator", "Erro ao atualizar colaborador.")
		return
	}

	httpresp.OK(c, gin.H{"photo_url": url})
}
