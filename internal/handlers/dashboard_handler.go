package handlers

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/esteticapro/clinic-manager/internal/cache"
	"github.com/esteticapro/clinic-manager/internal/httperr"
	"github.com/esteticapro/clinic-manager/internal/logger"
	"github.com/esteticapro/clinic-manager/internal/schedule"
	"github.com/esteticapro/clinic-manager/internal/stats"
	"github.com/esteticapro/clinic-manager/internal/store"
)

const dashboardCacheTTL = 60 * time.Second

type DashboardHandler struct {
	store *store.Store
	cache cache.Client
	log   logger.Logger
	loc   *time.Location
}

func NewDashboardHandler(s *store.Store, cacheClient cache.Client, log logger.Logger, loc *time.Location) *DashboardHandler {
	return &DashboardHandler{store: s, cache: cacheClient, log: log, loc: loc}
}

type dashboardResponse struct {
	Date              string                   `json:"date"`
	Leads             stats.LeadTotals         `json:"leads"`
	AppointmentsToday int                      `json:"appointments_today"`
	PaidIncome        float64                  `json:"paid_income"`
	Month             stats.Summary            `json:"month"`
	TopCollaborators  []stats.CollaboratorRank `json:"top_collaborators"`
}

// Summary monta o painel do dia: funil de leads, agendamentos de hoje,
// receita recebida e o resumo financeiro do mês corrente. O resultado fica
// em cache por um período curto; falha no cache apenas recalcula.
func (h *DashboardHandler) Summary(c *gin.Context) {
	ctx := c.Request.Context()
	now := time.Now().In(h.loc)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, h.loc)
	key := fmt.Sprintf("dashboard:%s", today.Format("2006-01-02"))

	if raw, err := h.cache.Get(ctx, key); err == nil {
		var cached dashboardResponse
		if json.Unmarshal([]byte(raw), &cached) == nil {
			c.JSON(200, cached)
			return
		}
	} else if err != cache.ErrCacheMiss {
		h.log.Error("cache indisponível para o dashboard", err)
	}

	if err := h.store.FetchLeads(ctx); err != nil {
		httperr.Internal(c, "failed_to_load_dashboard", "Erro ao carregar o painel.")
		return
	}
	if err := h.store.FetchAgenda(ctx); err != nil {
		httperr.Internal(c, "failed_to_load_dashboard", "Erro ao carregar o painel.")
		return
	}
	if err := h.store.FetchTransactions(ctx); err != nil {
		httperr.Internal(c, "failed_to_load_dashboard", "Erro ao carregar o painel.")
		return
	}
	if err := h.store.FetchCollaborators(ctx); err != nil {
		httperr.Internal(c, "failed_to_load_dashboard", "Erro ao carregar o painel.")
		return
	}

	monthStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, h.loc)
	monthEnd := schedule.MonthNavigate(monthStart, 1).AddDate(0, 0, -1)

	resp := dashboardResponse{
		Date:              today.Format("2006-01-02"),
		Leads:             stats.Leads(h.store.Leads()),
		AppointmentsToday: stats.AppointmentsOn(h.store.Agenda(), today),
		PaidIncome:        stats.PaidIncome(h.store.Transactions()),
		Month:             stats.Summarize(h.store.Transactions(), monthStart, monthEnd),
		TopCollaborators:  stats.RankCollaborators(h.store.Collaborators(), h.store.Agenda(), monthStart, monthEnd),
	}

	if payload, err := json.Marshal(resp); err == nil {
		if err := h.cache.Set(ctx, key, payload, dashboardCacheTTL); err != nil {
			h.log.Error("falha ao gravar cache do dashboard", err)
		}
	}

	c.JSON(200, resp)
}
