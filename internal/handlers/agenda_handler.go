package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/esteticapro/clinic-manager/internal/audit"
	"github.com/esteticapro/clinic-manager/internal/gateway"
	"github.com/esteticapro/clinic-manager/internal/httperr"
	"github.com/esteticapro/clinic-manager/internal/httpresp"
	"github.com/esteticapro/clinic-manager/internal/middleware"
	"github.com/esteticapro/clinic-manager/internal/models"
	"github.com/esteticapro/clinic-manager/internal/schedule"
	"github.com/esteticapro/clinic-manager/internal/store"
	"github.com/esteticapro/clinic-manager/internal/validators"
)

type AgendaHandler struct {
	store    *store.Store
	agenda   gateway.Collection[models.AgendaItem]
	services gateway.Collection[models.Service]
	audit    *audit.Dispatcher
	loc      *time.Location
}

func NewAgendaHandler(
	s *store.Store,
	agenda gateway.Collection[models.AgendaItem],
	services gateway.Collection[models.Service],
	dispatcher *audit.Dispatcher,
	loc *time.Location,
) *AgendaHandler {
	return &AgendaHandler{
		store:    s,
		agenda:   agenda,
		services: services,
		audit:    dispatcher,
		loc:      loc,
	}
}

// --------- Requests ---------

type CreateAgendaItemRequest struct {
	ClientID       string   `json:"client_id" binding:"required"`
	CollaboratorID string   `json:"collaborator_id" binding:"required"`
	ServiceID      string   `json:"service_id" binding:"required"`
	Date           string   `json:"date" binding:"required"`
	StartTime      string   `json:"start_time" binding:"required"`
	Notes          string   `json:"notes"`
	AmountPaid     *float64 `json:"amount_paid"`
	PaymentMethod  string   `json:"payment_method"`
}

type UpdateAgendaItemRequest struct {
	ClientID       *string  `json:"client_id,omitempty"`
	CollaboratorID *string  `json:"collaborator_id,omitempty"`
	ServiceID      *string  `json:"service_id,omitempty"`
	Date           *string  `json:"date,omitempty"`
	StartTime      *string  `json:"start_time,omitempty"`
	Status         *string  `json:"status,omitempty"`
	Notes          *string  `json:"notes,omitempty"`
	AmountPaid     *float64 `json:"amount_paid,omitempty"`
	PaymentMethod  *string  `json:"payment_method,omitempty"`
}

// --------- Handlers ---------

func (h *AgendaHandler) List(c *gin.Context) {
	if err := h.store.FetchAgenda(c.Request.Context()); err != nil {
		httperr.Internal(c, "failed_to_list_agenda", "Erro ao carregar a agenda.")
		return
	}
	httpresp.List(c, h.store.Agenda())
}

func (h *AgendaHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	var req CreateAgendaItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if !validators.IsClockTime(req.StartTime) {
		httperr.Fields(c, map[string]string{"start_time": "horário inválido"})
		return
	}
	date, ok := validators.ParseDate(req.Date, h.loc)
	if !ok {
		httperr.Fields(c, map[string]string{"date": "data inválida"})
		return
	}

	svc, err := h.findService(c, req.ServiceID)
	if err != nil {
		return
	}

	// horário de término sempre derivado do serviço
	endTime, err := schedule.ComputeEndTime(req.StartTime, svc.DurationMin)
	if err != nil {
		code, _ := httperr.BusinessCode(err)
		httperr.BadRequest(c, code, "Horário de término inválido.")
		return
	}

	row := models.AgendaItem{
		ClientID:       req.ClientID,
		CollaboratorID: req.CollaboratorID,
		ServiceID:      req.ServiceID,
		Date:           date,
		StartTime:      req.StartTime,
		EndTime:        endTime,
		Status:         string(models.AgendaScheduled),
		Notes:          req.Notes,
		AmountPaid:     req.AmountPaid,
		PaymentMethod:  req.PaymentMethod,
	}

	if err := h.store.CreateAgendaItem(c.Request.Context(), &row); err != nil {
		httperr.Internal(c, "failed_to_create_agenda_item", "Erro ao criar agendamento.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "agenda_item_created",
		Entity:   "agenda_item",
		EntityID: row.ID,
	})

	httpresp.CreatedList(c, h.store.Agenda())
}

func (h *AgendaHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)
	id := c.Param("id")

	var req UpdateAgendaItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	current, err := h.findAgendaItem(c, id)
	if err != nil {
		return
	}

	patch := map[string]any{}
	if req.ClientID != nil {
		patch["client_id"] = *req.ClientID
	}
	if req.CollaboratorID != nil {
		patch["collaborator_id"] = *req.CollaboratorID
	}
	if req.Date != nil {
		date, ok := validators.ParseDate(*req.Date, h.loc)
		if !ok {
			httperr.Fields(c, map[string]string{"date": "data inválida"})
			return
		}
		patch["date"] = date
	}
	if req.Notes != nil {
		patch["notes"] = *req.Notes
	}
	if req.AmountPaid != nil {
		patch["amount_paid"] = *req.AmountPaid
	}
	if req.PaymentMethod != nil {
		patch["payment_method"] = *req.PaymentMethod
	}

	startTime := current.StartTime
	serviceID := current.ServiceID
	recompute := false
	if req.StartTime != nil {
		if !validators.IsClockTime(*req.StartTime) {
			httperr.Fields(c, map[string]string{"start_time": "horário inválido"})
			return
		}
		startTime = *req.StartTime
		patch["start_time"] = startTime
		recompute = true
	}
	if req.ServiceID != nil {
		serviceID = *req.ServiceID
		patch["service_id"] = serviceID
		recompute = true
	}
	if recompute {
		svc, err := h.findService(c, serviceID)
		if err != nil {
			return
		}
		endTime, err := schedule.ComputeEndTime(startTime, svc.DurationMin)
		if err != nil {
			code, _ := httperr.BusinessCode(err)
			httperr.BadRequest(c, code, "Horário de término inválido.")
			return
		}
		patch["end_time"] = endTime
	}

	if req.Status != nil {
		if err := models.CanTransitionAgenda(current.Status, *req.Status); err != nil {
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

	if err := h.store.UpdateAgendaItem(c.Request.Context(), id, patch); err != nil {
		if isNotFound(err) {
			httperr.NotFound(c, "agenda_item_not_found", "Agendamento não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_update_agenda_item", "Erro ao atualizar agendamento.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "agenda_item_updated",
		Entity:   "agenda_item",
		EntityID: id,
		Metadata: patch,
	})

	httpresp.List(c, h.store.Agenda())
}

func (h *AgendaHandler) Delete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)
	id := c.Param("id")

	if err := h.store.DeleteAgendaItem(c.Request.Context(), id); err != nil {
		if isNotFound(err) {
			httperr.NotFound(c, "agenda_item_not_found", "Agendamento não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_delete_agenda_item", "Erro ao excluir agendamento.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "agenda_item_deleted",
		Entity:   "agenda_item",
		EntityID: id,
	})

	httpresp.List(c, h.store.Agenda())
}

// ======================================================
// VISÃO MENSAL
// ======================================================

type monthDayResponse struct {
	Date    string              `json:"date"`
	InMonth bool                `json:"in_month"`
	Today   bool                `json:"today"`
	Items   []models.AgendaItem `json:"items"`
}

func (h *AgendaHandler) Month(c *gin.Context) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 2000 || year > 2200 {
		httperr.BadRequest(c, "invalid_year", "Ano inválido.")
		return
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Mês inválido.")
		return
	}

	if err := h.store.FetchAgenda(c.Request.Context()); err != nil {
		httperr.Internal(c, "failed_to_list_agenda", "Erro ao carregar a agenda.")
		return
	}
	items := h.store.Agenda()

	ref := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, h.loc)
	grid := schedule.MonthGrid(ref, time.Now().In(h.loc))

	days := make([]monthDayResponse, 0, len(grid))
	for _, day := range grid {
		days = append(days, monthDayResponse{
			Date:    day.Date.Format("2006-01-02"),
			InMonth: day.InMonth,
			Today:   day.Today,
			Items:   schedule.ItemsForDay(items, day.Date),
		})
	}

	c.JSON(200, gin.H{
		"year":  year,
		"month": month,
		"days":  days,
	})
}

// --------- helpers ---------

func (h *AgendaHandler) findService(c *gin.Context, id string) (*models.Service, error) {
	rows, err := h.services.Select(c.Request.Context(), gateway.ByID(id))
	if err != nil {
		httperr.Internal(c, "failed_to_load_service", "Erro ao carregar serviço.")
		return nil, err
	}
	if len(rows) == 0 {
		httperr.Fields(c, map[string]string{"service_id": "serviço não encontrado"})
		return nil, httperr.ErrBusiness("service_not_found")
	}
	return &rows[0], nil
}

func (h *AgendaHandler) findAgendaItem(c *gin.Context, id string) (*models.AgendaItem, error) {
	rows, err := h.agenda.Select(c.Request.Context(), gateway.ByID(id))
	if err != nil {
		httperr.Internal(c, "failed_to_load_agenda_item", "Erro ao carregar agendamento.")
		return nil, err
	}
	if len(rows) == 0 {
		httperr.NotFound(c, "agenda_item_not_found", "Agendamento não encontrado.")
		return nil, httperr.ErrBusiness("agenda_item_not_found")
	}
	return &rows[0], nil
}
