package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/esteticapro/clinic-manager/internal/httperr"
	"github.com/esteticapro/clinic-manager/internal/httpresp"
	"github.com/esteticapro/clinic-manager/internal/models"
)

const defaultAuditPageSize = 50

type AuditLogsHandler struct {
	db *gorm.DB
}

func NewAuditLogsHandler(db *gorm.DB) *AuditLogsHandler {
	return &AuditLogsHandler{db: db}
}

// List devolve os registros de auditoria mais recentes, com filtro
// opcional por entidade.
func (h *AuditLogsHandler) List(c *gin.Context) {
	limit := defaultAuditPageSize
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 500 {
			httperr.BadRequest(c, "invalid_limit", "Limite inválido.")
			return
		}
		limit = n
	}

	q := h.db.WithContext(c.Request.Context()).
		Order("created_at DESC").
		Limit(limit)

	if entity := c.Query("entity"); entity != "" {
		q = q.Where("entity = ?", entity)
	}

	var rows []models.AuditLog
	if err := q.Find(&rows).Error; err != nil {
		httperr.Internal(c, "failed_to_list_audit_logs", "Erro ao carregar auditoria.")
		return
	}

	httpresp.List(c, rows)
}
