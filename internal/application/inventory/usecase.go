// Package inventory casos de uso del almacén de materias primas: catálogo, existencias,
// libro de movimientos, reposición y reporte imprimible.
package inventory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/tekstil-api/internal/application/dto"
	"github.com/jhoicas/tekstil-api/internal/domain"
	"github.com/jhoicas/tekstil-api/internal/domain/entity"
	stockrules "github.com/jhoicas/tekstil-api/internal/domain/inventory"
	"github.com/jhoicas/tekstil-api/internal/domain/repository"
)

const (
	defaultMovementLimit = 50
	maxMovementLimit     = 500
)

// StockUseCase lectura de existencias y reposición transaccional.
type StockUseCase struct {
	txRunner  TxRunner
	materials repository.RawMaterialRepository
	stock     repository.StockRepository
	movements repository.StockMovementRepository
	renderer  StockReportRenderer
	now       func() time.Time
}

// NewStockUseCase construye el caso de uso. renderer puede ser nil si no se expone el PDF.
func NewStockUseCase(
	txRunner TxRunner,
	materials repository.RawMaterialRepository,
	stock repository.StockRepository,
	movements repository.StockMovementRepository,
	renderer StockReportRenderer,
) *StockUseCase {
	return &StockUseCase{
		txRunner:  txRunner,
		materials: materials,
		stock:     stock,
		movements: movements,
		renderer:  renderer,
		now:       time.Now,
	}
}

// ListMaterials materias primas activas.
func (uc *StockUseCase) ListMaterials(ctx context.Context) ([]dto.RawMaterialDTO, error) {
	list, err := uc.materials.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RawMaterialDTO, 0, len(list))
	for _, m := range list {
		out = append(out, dto.RawMaterialDTO{ID: m.ID, Name: m.Name, Unit: m.Unit})
	}
	return out, nil
}

// ListStock existencias de las materias activas con la marca de crítico (existencia <= mínimo).
func (uc *StockUseCase) ListStock(ctx context.Context) ([]dto.MaterialStockDTO, error) {
	list, err := uc.stock.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MaterialStockDTO, 0, len(list))
	for _, s := range list {
		out = append(out, dto.MaterialStockDTO{
			MaterialID:      s.MaterialID,
			MaterialName:    s.MaterialName,
			Unit:            s.Unit,
			CurrentQuantity: s.CurrentQuantity,
			MinQuantity:     s.MinQuantity,
			Critical:        stockrules.IsCritical(s.CurrentQuantity, s.MinQuantity),
		})
	}
	return out, nil
}

// CriticalCount materias activas con mínimo definido y en o bajo el mínimo.
func (uc *StockUseCase) CriticalCount(ctx context.Context) (int, error) {
	return uc.stock.CountCritical(ctx)
}

// ListMovements libro de movimientos de una materia, más recientes primero.
func (uc *StockUseCase) ListMovements(ctx context.Context, materialID int64, page dto.PageRequest) ([]dto.StockMovementDTO, error) {
	if materialID <= 0 {
		return nil, domain.ErrInvalidInput
	}
	page.DefaultPage(defaultMovementLimit, maxMovementLimit)
	list, err := uc.movements.ListByMaterial(ctx, materialID, page.Limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockMovementDTO, 0, len(list))
	for _, m := range list {
		out = append(out, dto.StockMovementDTO{
			ID:            m.ID,
			MaterialID:    m.MaterialID,
			TransactionID: m.TransactionID,
			Type:          m.Type,
			Quantity:      m.Quantity,
			Note:          m.Note,
			CreatedAt:     m.CreatedAt,
		})
	}
	return out, nil
}

// Restock suma qty a la existencia y registra el movimiento IN en la misma transacción.
func (uc *StockUseCase) Restock(ctx context.Context, materialID int64, in dto.RestockRequest) (*dto.MaterialStockDTO, error) {
	if materialID <= 0 || !in.Quantity.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	material, err := uc.materials.GetByID(ctx, materialID)
	if err != nil {
		return nil, err
	}
	if material == nil || !material.Active {
		return nil, domain.ErrNotFound
	}

	note := in.Note
	if note == "" {
		note = fmt.Sprintf("Restock %s", in.Quantity.String())
	}
	txID := uuid.New().String()

	var after *entity.MaterialStock
	err = uc.txRunner.Run(ctx, func(stock repository.StockRepository, movements repository.StockMovementRepository) error {
		if err := stock.Increment(ctx, materialID, in.Quantity); err != nil {
			return err
		}
		if err := movements.Create(ctx, &entity.StockMovement{
			MaterialID:    materialID,
			TransactionID: txID,
			Type:          entity.MovementTypeIn,
			Quantity:      in.Quantity,
			Note:          note,
			CreatedAt:     uc.now(),
		}); err != nil {
			return err
		}
		s, err := stock.Get(ctx, materialID)
		if err != nil {
			return err
		}
		after = s
		return nil
	})
	if err != nil {
		return nil, err
	}
	if after == nil {
		return nil, errors.New("stock no encontrado tras la reposición")
	}
	return &dto.MaterialStockDTO{
		MaterialID:      materialID,
		MaterialName:    material.Name,
		Unit:            material.Unit,
		CurrentQuantity: after.CurrentQuantity,
		MinQuantity:     after.MinQuantity,
		Critical:        stockrules.IsCritical(after.CurrentQuantity, after.MinQuantity),
	}, nil
}

// StockReportPDF listado de stock como PDF.
func (uc *StockUseCase) StockReportPDF(ctx context.Context) ([]byte, error) {
	if uc.renderer == nil {
		return nil, errors.New("reporte PDF no configurado")
	}
	rows, err := uc.ListStock(ctx)
	if err != nil {
		return nil, err
	}
	return uc.renderer.StockReport(ctx, rows)
}
