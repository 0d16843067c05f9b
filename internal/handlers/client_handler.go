package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/esteticapro/clinic-manager/internal/httperr"
	"github.com/esteticapro/clinic-manager/internal/httpresp"
	"github.com/esteticapro/clinic-manager/internal/models"
	"github.com/esteticapro/clinic-manager/internal/store"
	"github.com/esteticapro/clinic-manager/internal/validators"
)

type ClientHandler struct {
	store *store.Store
	loc   *time.Location
}

func NewClientHandler(s *store.Store, loc *time.Location) *ClientHandler {
	return &ClientHandler{store: s, loc: loc}
}

// --------- Requests ---------

type CreateClientRequest struct {
	Name      string `json:"name" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
	Email     string `json:"email"`
	TaxID     string `json:"tax_id"`
	BirthDate string `json:"birth_date"`
	Address   string `json:"address"`
}

type UpdateClientRequest struct {
	Name      *string `json:"name,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Email     *string `json:"email,omitempty"`
	TaxID     *string `json:"tax_id,omitempty"`
	BirthDate *string `json:"birth_date,omitempty"`
	Address   *string `json:"address,omitempty"`
}

// --------- Handlers ---------

func (h *ClientHandler) List(c *gin.Context) {
	if err := h.store.FetchClients(c.Request.Context()); err != nil {
		httperr.Internal(c, "failed_to_list_clients", "Erro ao carregar clientes.")
		return
	}
	httpresp.List(c, h.store.Clients())
}

func (h *ClientHandler) Create(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	row := models.Client{
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		TaxID:   req.TaxID,
		Address: req.Address,
	}

	if req.BirthDate != "" {
		d, ok := validators.ParseDate(req.BirthDate, h.loc)
		if !ok {
			httperr.Fields(c, map[string]string{"birth_date": "data inválida"})
			return
		}
		row.BirthDate = &d
	}

	if err := h.store.CreateClient(c.Request.Context(), &row); err != nil {
		httperr.Internal(c, "failed_to_create_client", "Erro ao criar cliente.")
		return
	}

	httpresp.CreatedList(c, h.store.Clients())
}

func (h *ClientHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var req UpdateClientRequest
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
	if req.TaxID != nil {
		patch["tax_id"] = *req.TaxID
	}
	if req.BirthDate != nil {
		d, ok := validators.ParseDate(*req.BirthDate, h.loc)
		if !ok {
			httperr.Fields(c, map[string]string{"birth_date": "data inválida"})
			return
		}
		patch["birth_date"] = d
	}
	if req.Address != nil {
		patch["address"] = *req.Address
	}

	if len(patch) == 0 {
		httperr.BadRequest(c, "empty_patch", "Nenhum campo para atualizar.")
		return
	}

	if err := h.store.UpdateClient(c.Request.Context(), id, patch); err != nil {
		if isNotFound(err) {
			httperr.NotFound(c, "client_not_found", "Cliente não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_update_client", "Erro ao atualizar cliente.")
		return
	}

	httpresp.List(c, h.store.Clients())
}

func (h *ClientHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.store.DeleteClient(c.Request.Context(), id); err != nil {
		if isNotFound(err) {
			httperr.NotFound(c, "client_not_found", "Cliente não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_delete_client", "Erro ao excluir cliente.")
		return
	}

	httpresp.List(c, h.store.Clients())
}
