package procurement

import (
	"context"
	"time"

	"github.com/jhoicas/tekstil-api/internal/application/dto"
	"github.com/jhoicas/tekstil-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción con los repositorios atados a ella.
// Si fn devuelve error se hace Rollback; si no, Commit.
// Los fallos de base de datos llegan envueltos en *domain.TransactionError; los errores
// de dominio devueltos por fn (ErrNotFound...) se propagan sin cambios.
type TxRunner interface {
	RunProcurement(ctx context.Context, fn func(
		orders repository.RawMaterialOrderRepository,
		stock repository.StockRepository,
		movements repository.StockMovementRepository,
	) error) error
}

// Resultados posibles de una transición, usados como etiqueta de métricas.
const (
	OutcomeOK            = "ok"
	OutcomeInvalidStatus = "invalid_status"
	OutcomeNotFound      = "not_found"
	OutcomeLockTimeout   = "lock_timeout"
	OutcomeError         = "error"
)

// Metrics observa las transiciones de estado.
type Metrics interface {
	ObserveTransition(outcome string, stockUpdated bool, elapsed time.Duration)
}

// OrderSheetExporter genera la hoja de cálculo del listado de órdenes.
type OrderSheetExporter interface {
	OrdersSheet(rows []dto.RawMaterialOrderDTO) ([]byte, error)
}

type noopMetrics struct{}

func (noopMetrics) ObserveTransition(string, bool, time.Duration) {}
