package procurement

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/tekstil-api/internal/application/dto"
	"github.com/jhoicas/tekstil-api/internal/domain"
	"github.com/jhoicas/tekstil-api/internal/domain/entity"
	domproc "github.com/jhoicas/tekstil-api/internal/domain/procurement"
	"github.com/jhoicas/tekstil-api/internal/domain/repository"
	"github.com/jhoicas/tekstil-api/pkg/trformat"
)

// maxListedOrders tope del listado de órdenes (las más recientes).
const maxListedOrders = 500

// OrderConfig parámetros del listado.
type OrderConfig struct {
	DeliveryLeadBusinessDays int
}

// OrderUseCase administración de órdenes de materia prima: listado, alta, edición y baja.
// Ninguna operación de este caso de uso mueve stock; eso lo hace solo FulfillmentUseCase.
type OrderUseCase struct {
	orders    repository.RawMaterialOrderRepository
	materials repository.RawMaterialRepository
	exporter  OrderSheetExporter
	cfg       OrderConfig
	now       func() time.Time
}

// NewOrderUseCase construye el caso de uso. exporter puede ser nil si no se expone la exportación.
func NewOrderUseCase(
	orders repository.RawMaterialOrderRepository,
	materials repository.RawMaterialRepository,
	exporter OrderSheetExporter,
	cfg OrderConfig,
) *OrderUseCase {
	return &OrderUseCase{orders: orders, materials: materials, exporter: exporter, cfg: cfg, now: time.Now}
}

// List devuelve las órdenes más recientes con fecha estimada de entrega y etiqueta turca del estado.
func (uc *OrderUseCase) List(ctx context.Context) ([]dto.RawMaterialOrderDTO, error) {
	orders, err := uc.orders.List(ctx, maxListedOrders)
	if err != nil {
		return nil, fmt.Errorf("listar órdenes: %w", err)
	}
	out := make([]dto.RawMaterialOrderDTO, 0, len(orders))
	for _, o := range orders {
		out = append(out, uc.toDTO(o))
	}
	return out, nil
}

// Get una orden por id.
func (uc *OrderUseCase) Get(ctx context.Context, id int64) (*dto.RawMaterialOrderDTO, error) {
	o, err := uc.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	d := uc.toDTO(o)
	return &d, nil
}

// Create registra una orden nueva en estado PENDING. Sin fecha, se usa la de hoy.
func (uc *OrderUseCase) Create(ctx context.Context, in dto.CreateRawMaterialOrderRequest) (*dto.RawMaterialOrderDTO, error) {
	in.Normalize()
	if in.MaterialID <= 0 || in.Quantity == nil || !in.Quantity.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	orderDate, err := uc.parseDateOrToday(in.OrderDate)
	if err != nil {
		return nil, err
	}
	material, err := uc.materials.GetByID(ctx, in.MaterialID)
	if err != nil {
		return nil, err
	}
	if material == nil {
		return nil, domain.ErrNotFound
	}

	order := &entity.RawMaterialOrder{
		MaterialID: in.MaterialID,
		Quantity:   *in.Quantity,
		OrderDate:  orderDate,
		Status:     domproc.StatusPending,
	}
	if err := uc.orders.Create(ctx, order); err != nil {
		return nil, err
	}
	order.MaterialName = material.Name
	order.Unit = material.Unit
	d := uc.toDTO(order)
	return &d, nil
}

// Update edición administrativa de materia, cantidad y fecha. El estado guardado no se toca:
// una entrega hecha aquí dejaría la orden DELIVERED sin descuento ni movimiento.
func (uc *OrderUseCase) Update(ctx context.Context, id int64, in dto.UpdateRawMaterialOrderRequest) error {
	if id <= 0 {
		return domain.ErrNotFound
	}
	if in.MaterialID <= 0 || !in.Quantity.IsPositive() {
		return domain.ErrInvalidInput
	}
	orderDate, err := trformat.ParseDate(in.OrderDate)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	ok, err := uc.orders.Update(ctx, &entity.RawMaterialOrder{
		ID:         id,
		MaterialID: in.MaterialID,
		Quantity:   in.Quantity,
		OrderDate:  orderDate,
	})
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

// Delete baja administrativa.
func (uc *OrderUseCase) Delete(ctx context.Context, id int64) error {
	ok, err := uc.orders.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

// ExportXLSX el mismo listado como hoja de cálculo.
func (uc *OrderUseCase) ExportXLSX(ctx context.Context) ([]byte, error) {
	if uc.exporter == nil {
		return nil, fmt.Errorf("exportación no configurada")
	}
	rows, err := uc.List(ctx)
	if err != nil {
		return nil, err
	}
	return uc.exporter.OrdersSheet(rows)
}

func (uc *OrderUseCase) parseDateOrToday(s string) (time.Time, error) {
	if s == "" {
		now := uc.now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	t, err := trformat.ParseDate(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return t, nil
}

func (uc *OrderUseCase) toDTO(o *entity.RawMaterialOrder) dto.RawMaterialOrderDTO {
	d := dto.RawMaterialOrderDTO{
		ID:           o.ID,
		MaterialID:   o.MaterialID,
		MaterialName: o.MaterialName,
		Unit:         o.Unit,
		Quantity:     o.Quantity,
		Status:       o.Status.String(),
		StatusLabel:  o.Status.Label(),
	}
	if !o.OrderDate.IsZero() {
		d.OrderDate = trformat.FormatDate(o.OrderDate)
		d.EstimatedDelivery = trformat.FormatDate(trformat.AddBusinessDays(o.OrderDate, uc.cfg.DeliveryLeadBusinessDays))
	}
	return d
}
