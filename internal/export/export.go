package export

import (
	"context"
	"time"

	"github.com/esteticapro/clinic-manager/internal/models"
)

// Generator é o colaborador externo de exportação de documentos.
// O core entrega a lista materializada e não consome retorno além do erro.
type Generator interface {
	LeadProfile(ctx context.Context, lead models.Lead) error
	TransactionsReport(ctx context.Context, txs []models.Transaction, from, to time.Time) error
}
