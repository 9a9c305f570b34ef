package inventory

import (
	"context"

	"github.com/jhoicas/tekstil-api/internal/application/dto"
	"github.com/jhoicas/tekstil-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Garantiza que la existencia y su movimiento se escriban juntos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		stock repository.StockRepository,
		movements repository.StockMovementRepository,
	) error) error
}

// StockReportRenderer genera el reporte imprimible del stock de materias primas.
type StockReportRenderer interface {
	StockReport(ctx context.Context, rows []dto.MaterialStockDTO) ([]byte, error)
}
