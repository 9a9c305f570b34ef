package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de pedidos de clientes (texto libre heredado; se comparan sin mayúsculas).
const (
	CustomerOrderActive    = "AKTIF"
	CustomerOrderPlanned   = "PLANLANDI"
	CustomerOrderInProd    = "URETIMDE"
	CustomerOrderCompleted = "TAMAMLANDI"
	CustomerOrderShipped   = "SEVK_EDILDI"
	CustomerOrderDelivered = "TESLIM_EDILDI"
	CustomerOrderCanceled  = "IPTAL"
)

// CustomerOrder cabecera de pedido con totales calculados sobre sus líneas.
type CustomerOrder struct {
	ID              int64
	CustomerID      int64
	CustomerName    string
	City            string
	OrderDate       time.Time
	PlannedDelivery *time.Time
	ActualDelivery  *time.Time
	Status          string
	TotalUnits      int64
	TotalAmount     decimal.Decimal
	Products        string
}

// CustomerOrderLine línea de pedido.
type CustomerOrderLine struct {
	OrderID     int64
	ProductID   int64
	Quantity    int64
	TotalAmount decimal.Decimal
}

// CustomerOrderSummary contadores de pedidos de un cliente.
type CustomerOrderSummary struct {
	Total       int64
	Active      int64
	Completed   int64
	Canceled    int64
	TotalAmount decimal.Decimal
}
