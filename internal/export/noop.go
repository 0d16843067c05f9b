package export

import (
	"context"
	"time"

	"github.com/esteticapro/clinic-manager/internal/logger"
	"github.com/esteticapro/clinic-manager/internal/models"
)

// Noop registra o pedido de exportação e descarta. Usado quando nenhum
// gerador real está configurado.
type Noop struct {
	Log logger.Logger
}

func (n Noop) LeadProfile(ctx context.Context, lead models.Lead) error {
	if n.Log != nil {
		n.Log.Info("export: lead profile requested", map[string]any{"lead_id": lead.ID})
	}
	return nil
}

func (n Noop) TransactionsReport(ctx context.Context, txs []models.Transaction, from, to time.Time) error {
	if n.Log != nil {
		n.Log.Info("export: transactions report requested", map[string]any{
			"rows": len(txs),
			"from": from.Format("2006-01-02"),
			"to":   to.Format("2006-01-02"),
		})
	}
	return nil
}

var _ Generator = Noop{}
