// Package procurement contiene los casos de uso de órdenes de materia prima:
// la transacción de cambio de estado/entrega y la administración de las órdenes.
package procurement

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/tekstil-api/internal/domain"
	"github.com/jhoicas/tekstil-api/internal/domain/entity"
	domproc "github.com/jhoicas/tekstil-api/internal/domain/procurement"
	"github.com/jhoicas/tekstil-api/internal/domain/repository"
	"github.com/jhoicas/tekstil-api/pkg/logger"
)

// FulfillmentConfig límites de la transacción.
type FulfillmentConfig struct {
	TxTimeout time.Duration // 0 = sin tope propio (solo el del contexto recibido)
}

// FulfillmentResult resultado de una transición aplicada.
type FulfillmentResult struct {
	OrderID        int64
	PreviousStatus domproc.OrderStatus
	Status         domproc.OrderStatus
	StockUpdated   bool // true solo en la primera transición a DELIVERED
	TransactionID  string
}

// FulfillmentUseCase cambia el estado de una orden de materia prima y, en la primera
// entrega, descuenta el stock y registra el movimiento de salida, todo en una transacción.
//
// La fila de la orden se bloquea (SELECT ... FOR UPDATE) antes de leer el estado previo:
// dos entregas concurrentes de la misma orden se serializan y solo una descuenta stock.
type FulfillmentUseCase struct {
	txRunner TxRunner
	log      *logger.Logger
	metrics  Metrics
	cfg      FulfillmentConfig
	now      func() time.Time
}

// NewFulfillmentUseCase construye el caso de uso. log y metrics pueden ser nil.
func NewFulfillmentUseCase(txRunner TxRunner, log *logger.Logger, metrics Metrics, cfg FulfillmentConfig) *FulfillmentUseCase {
	if log == nil {
		log = logger.Nop()
	}
	if metrics == nil {
		metrics = noopMetrics{}
	}
	return &FulfillmentUseCase{
		txRunner: txRunner,
		log:      log.Component("fulfillment"),
		metrics:  metrics,
		cfg:      cfg,
		now:      time.Now,
	}
}

// UpdateOrderStatus aplica el estado pedido (texto libre, se canoniza antes de tocar la DB).
// Errores: domain.ErrInvalidStatus, domain.ErrNotFound o *domain.TransactionError.
func (uc *FulfillmentUseCase) UpdateOrderStatus(ctx context.Context, orderID int64, requested string) (*FulfillmentResult, error) {
	status, err := domproc.ParseOrderStatus(requested)
	if err != nil {
		uc.metrics.ObserveTransition(OutcomeInvalidStatus, false, 0)
		return nil, err
	}
	return uc.transition(ctx, orderID, status)
}

// ForceDeliver marca la orden como DELIVERED sin importar el estado actual.
// Descuenta stock solo si la orden aún no estaba entregada.
func (uc *FulfillmentUseCase) ForceDeliver(ctx context.Context, orderID int64) (*FulfillmentResult, error) {
	return uc.transition(ctx, orderID, domproc.StatusDelivered)
}

func (uc *FulfillmentUseCase) transition(ctx context.Context, orderID int64, next domproc.OrderStatus) (*FulfillmentResult, error) {
	if orderID <= 0 {
		uc.metrics.ObserveTransition(OutcomeNotFound, false, 0)
		return nil, domain.ErrNotFound
	}
	if uc.cfg.TxTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.cfg.TxTimeout)
		defer cancel()
	}

	start := time.Now()
	txID := uuid.New().String()
	var result *FulfillmentResult

	err := uc.txRunner.RunProcurement(ctx, func(
		orders repository.RawMaterialOrderRepository,
		stock repository.StockRepository,
		movements repository.StockMovementRepository,
	) error {
		// 1. Bloquea la fila; el estado previo leído aquí es el que decide el descuento
		order, err := orders.GetForUpdate(ctx, orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrNotFound
		}

		// 2. El estado se escribe siempre (cualquier -> cualquier)
		ok, err := orders.UpdateStatus(ctx, orderID, next)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrNotFound
		}

		res := &FulfillmentResult{
			OrderID:        orderID,
			PreviousStatus: order.Status,
			Status:         next,
			TransactionID:  txID,
		}

		// 3. Solo la primera entrega mueve stock
		if domproc.IsFirstDelivery(order.Status, next) {
			rows, err := stock.DecrementFloor(ctx, order.MaterialID, order.Quantity)
			if err != nil {
				return err
			}
			if rows == 0 {
				uc.log.Warn().
					Int64("order_id", orderID).
					Int64("material_id", order.MaterialID).
					Msg("materia sin fila de stock; solo se registra el movimiento")
			}
			mov := &entity.StockMovement{
				MaterialID:    order.MaterialID,
				TransactionID: txID,
				Type:          entity.MovementTypeOut,
				Quantity:      order.Quantity,
				Note:          domproc.DeliveryNote(orderID),
				CreatedAt:     uc.now(),
			}
			if err := movements.Create(ctx, mov); err != nil {
				return err
			}
			res.StockUpdated = true
		}

		result = res
		return nil
	})
	elapsed := time.Since(start)

	if err != nil {
		outcome := outcomeOf(err)
		uc.metrics.ObserveTransition(outcome, false, elapsed)
		ev := uc.log.Warn()
		if outcome == OutcomeError || outcome == OutcomeLockTimeout {
			ev = uc.log.Error()
		}
		ev.Err(err).
			Int64("order_id", orderID).
			Str("requested", next.String()).
			Str("tx_id", txID).
			Str("outcome", outcome).
			Msg("transición de orden revertida")
		return nil, err
	}

	uc.metrics.ObserveTransition(OutcomeOK, result.StockUpdated, elapsed)
	uc.log.Info().
		Int64("order_id", orderID).
		Str("previous", result.PreviousStatus.String()).
		Str("status", result.Status.String()).
		Bool("stock_updated", result.StockUpdated).
		Str("tx_id", txID).
		Dur("elapsed", elapsed).
		Msg("estado de orden actualizado")
	return result, nil
}

func outcomeOf(err error) string {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return OutcomeNotFound
	case errors.Is(err, domain.ErrInvalidStatus):
		return OutcomeInvalidStatus
	case domain.IsRetryable(err):
		return OutcomeLockTimeout
	default:
		return OutcomeError
	}
}
