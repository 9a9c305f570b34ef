// Package sales clientes (concesionarios), catálogo de fundas por modelo de vehículo y
// pedidos de clientes.
package sales

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/tekstil-api/internal/application/dto"
	"github.com/jhoicas/tekstil-api/internal/domain"
	"github.com/jhoicas/tekstil-api/internal/domain/entity"
	"github.com/jhoicas/tekstil-api/internal/domain/repository"
	"github.com/jhoicas/tekstil-api/pkg/trformat"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

const (
	minPasswordLength     = 6
	maxRegisterAttempts   = 3
	defaultCustomerOrders = 50
	maxCustomerOrders     = 500
)

// BcryptHasher hashea contraseñas con bcrypt. Cost 0 usa bcrypt.DefaultCost.
type BcryptHasher struct {
	Cost int
}

func (h BcryptHasher) Hash(password string) (string, error) {
	cost := h.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	b, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// UseCase clientes y pedidos de clientes.
type UseCase struct {
	tx        TxRunner
	customers repository.CustomerRepository
	orders    repository.CustomerOrderRepository
	products  repository.ProductRepository
	hasher    PasswordHasher
	now       func() time.Time
}

// NewUseCase construye el caso de uso. hasher nil usa BcryptHasher con el costo por defecto.
func NewUseCase(
	tx TxRunner,
	customers repository.CustomerRepository,
	orders repository.CustomerOrderRepository,
	products repository.ProductRepository,
	hasher PasswordHasher,
) *UseCase {
	if hasher == nil {
		hasher = BcryptHasher{}
	}
	return &UseCase{
		tx:        tx,
		customers: customers,
		orders:    orders,
		products:  products,
		hasher:    hasher,
		now:       time.Now,
	}
}

// Register crea el cliente con el menor id libre. Si otro registro concurrente toma el
// mismo id se recalcula, hasta maxRegisterAttempts veces.
func (uc *UseCase) Register(ctx context.Context, in dto.RegisterCustomerRequest) (*dto.RegisterCustomerResponse, error) {
	first := strings.TrimSpace(in.FirstName)
	last := strings.TrimSpace(in.LastName)
	city := strings.TrimSpace(in.City)
	if first == "" || last == "" || city == "" {
		return nil, fmt.Errorf("%w: nombre, apellido y ciudad son obligatorios", domain.ErrInvalidInput)
	}
	if len(in.Password) < minPasswordLength {
		return nil, fmt.Errorf("%w: la contraseña debe tener al menos %d caracteres", domain.ErrInvalidInput, minPasswordLength)
	}
	if in.Password != in.ConfirmPassword {
		return nil, fmt.Errorf("%w: las contraseñas no coinciden", domain.ErrInvalidInput)
	}
	hash, err := uc.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash de contraseña: %w", err)
	}

	c := &entity.Customer{Name: first + " " + last, City: city, PasswordHash: hash}
	for attempt := 1; ; attempt++ {
		ids, err := uc.customers.ListIDs(ctx)
		if err != nil {
			return nil, err
		}
		c.ID = lowestFreeID(ids)
		err = uc.customers.CreateWithID(ctx, c)
		if err == nil {
			break
		}
		if !errors.Is(err, domain.ErrDuplicate) || attempt >= maxRegisterAttempts {
			return nil, err
		}
	}
	return &dto.RegisterCustomerResponse{
		Success: true,
		ID:      c.ID,
		Code:    entity.FormatCustomerCode(c.ID),
		Name:    c.Name,
		City:    c.City,
	}, nil
}

// lowestFreeID primer entero positivo que no está en ids (ordenados ascendentemente).
func lowestFreeID(ids []int64) int64 {
	next := int64(1)
	for _, id := range ids {
		if id < next {
			continue
		}
		if id > next {
			break
		}
		next++
	}
	return next
}

// ListCustomers clientes con su código visible.
func (uc *UseCase) ListCustomers(ctx context.Context) ([]dto.CustomerDTO, error) {
	list, err := uc.customers.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CustomerDTO, 0, len(list))
	for _, c := range list {
		out = append(out, dto.CustomerDTO{ID: c.ID, Code: entity.FormatCustomerCode(c.ID), Name: c.Name, City: c.City})
	}
	return out, nil
}

// ListProducts modelos de vehículo disponibles para pedir.
func (uc *UseCase) ListProducts(ctx context.Context) ([]dto.VehicleModelDTO, error) {
	models, err := uc.products.ListModels(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.VehicleModelDTO, 0, len(models))
	for _, m := range models {
		out = append(out, dto.VehicleModelDTO{ID: m.ID, Name: m.Name})
	}
	return out, nil
}

// ProductPrice precio unitario del producto del modelo.
func (uc *UseCase) ProductPrice(ctx context.Context, modelID int64) (*dto.ProductPriceDTO, error) {
	if modelID <= 0 {
		return nil, domain.ErrInvalidInput
	}
	p, err := uc.products.GetByModel(ctx, modelID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.ProductPriceDTO{Success: true, ModelID: modelID, UnitPrice: p.UnitPrice}, nil
}

// CreateOrder crea cabecera y línea en la misma transacción, en estado AKTIF.
func (uc *UseCase) CreateOrder(ctx context.Context, customerID int64, in dto.CreateCustomerOrderRequest) (*dto.CreateCustomerOrderResponse, error) {
	if customerID <= 0 || in.ModelID <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity < 1 {
		return nil, fmt.Errorf("%w: la cantidad debe ser al menos 1", domain.ErrInvalidInput)
	}
	customer, err := uc.customers.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}

	now := uc.now()
	var resp *dto.CreateCustomerOrderResponse
	err = uc.tx.RunSales(ctx, func(orders repository.CustomerOrderRepository, products repository.ProductRepository) error {
		p, err := products.GetByModel(ctx, in.ModelID)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.ErrNotFound
		}
		total := p.UnitPrice.Mul(decimal.NewFromInt(in.Quantity))
		order := &entity.CustomerOrder{
			CustomerID: customerID,
			OrderDate:  now,
			Status:     entity.CustomerOrderActive,
		}
		if err := orders.Create(ctx, order); err != nil {
			return err
		}
		line := &entity.CustomerOrderLine{
			OrderID:     order.ID,
			ProductID:   p.ID,
			Quantity:    in.Quantity,
			TotalAmount: total,
		}
		if err := orders.AddLine(ctx, line); err != nil {
			return err
		}
		resp = &dto.CreateCustomerOrderResponse{
			Success:     true,
			OrderID:     order.ID,
			ProductID:   p.ID,
			TotalAmount: total,
			CreatedAt:   now,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// CustomerOrders pedidos del cliente, más recientes primero.
func (uc *UseCase) CustomerOrders(ctx context.Context, customerID int64, page dto.PageRequest) ([]dto.CustomerOrderDTO, error) {
	if customerID <= 0 {
		return nil, domain.ErrInvalidInput
	}
	page.DefaultPage(defaultCustomerOrders, maxCustomerOrders)
	list, err := uc.orders.ListByCustomer(ctx, customerID, page.Limit)
	if err != nil {
		return nil, err
	}
	return toOrderDTOs(list), nil
}

// CustomerSummary contadores de pedidos del cliente.
func (uc *UseCase) CustomerSummary(ctx context.Context, customerID int64) (*dto.CustomerOrderSummaryDTO, error) {
	if customerID <= 0 {
		return nil, domain.ErrInvalidInput
	}
	s, err := uc.orders.SummaryByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if s == nil {
		s = &entity.CustomerOrderSummary{}
	}
	return &dto.CustomerOrderSummaryDTO{
		TotalOrders:     s.Total,
		ActiveOrders:    s.Active,
		CompletedOrders: s.Completed,
		CanceledOrders:  s.Canceled,
		TotalAmount:     s.TotalAmount,
	}, nil
}

// ListOrders todos los pedidos con cliente y ciudad (panel de administración).
func (uc *UseCase) ListOrders(ctx context.Context) ([]dto.CustomerOrderDTO, error) {
	list, err := uc.orders.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return toOrderDTOs(list), nil
}

// UpdateOrder cambia estado y/o fecha planificada. PlannedDelivery "" borra la fecha.
func (uc *UseCase) UpdateOrder(ctx context.Context, id int64, in dto.UpdateCustomerOrderRequest) error {
	if id <= 0 {
		return domain.ErrInvalidInput
	}
	if in.Status == nil && in.PlannedDelivery == nil {
		return fmt.Errorf("%w: nada que actualizar", domain.ErrInvalidInput)
	}
	var status *string
	if in.Status != nil {
		s := strings.ToUpper(strings.TrimSpace(*in.Status))
		if s == "" {
			return fmt.Errorf("%w: estado vacío", domain.ErrInvalidInput)
		}
		status = &s
	}
	var planned *time.Time
	clearPlanned := false
	if in.PlannedDelivery != nil {
		raw := strings.TrimSpace(*in.PlannedDelivery)
		if raw == "" {
			clearPlanned = true
		} else {
			t, err := trformat.ParseDate(raw)
			if err != nil {
				return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
			}
			planned = &t
		}
	}
	ok, err := uc.orders.UpdateFields(ctx, id, status, planned, clearPlanned)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteOrder borra líneas y cabecera en una transacción.
func (uc *UseCase) DeleteOrder(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.ErrInvalidInput
	}
	return uc.tx.RunSales(ctx, func(orders repository.CustomerOrderRepository, _ repository.ProductRepository) error {
		if err := orders.DeleteLines(ctx, id); err != nil {
			return err
		}
		ok, err := orders.Delete(ctx, id)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrNotFound
		}
		return nil
	})
}

// SetMissingPasswords asigna password a los clientes que no tienen hash. Devuelve cuántos actualizó.
func (uc *UseCase) SetMissingPasswords(ctx context.Context, password string) (int, error) {
	if len(password) < minPasswordLength {
		return 0, fmt.Errorf("%w: contraseña demasiado corta", domain.ErrInvalidInput)
	}
	ids, err := uc.customers.ListWithoutPassword(ctx)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, id := range ids {
		hash, err := uc.hasher.Hash(password)
		if err != nil {
			return n, err
		}
		if err := uc.customers.SetPasswordHash(ctx, id, hash); err != nil {
			return n, fmt.Errorf("cliente %d: %w", id, err)
		}
		n++
	}
	return n, nil
}

func toOrderDTOs(list []*entity.CustomerOrder) []dto.CustomerOrderDTO {
	out := make([]dto.CustomerOrderDTO, 0, len(list))
	for _, o := range list {
		d := dto.CustomerOrderDTO{
			ID:           o.ID,
			CustomerID:   o.CustomerID,
			CustomerName: o.CustomerName,
			City:         o.City,
			OrderDate:    trformat.FormatDate(o.OrderDate),
			Status:       o.Status,
			TotalUnits:   o.TotalUnits,
			TotalAmount:  o.TotalAmount,
			Products:     o.Products,
		}
		if o.PlannedDelivery != nil {
			d.PlannedDelivery = trformat.FormatDate(*o.PlannedDelivery)
		}
		if o.ActualDelivery != nil {
			d.ActualDelivery = trformat.FormatDate(*o.ActualDelivery)
		}
		out = append(out, d)
	}
	return out
}
