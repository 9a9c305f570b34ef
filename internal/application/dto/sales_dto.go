package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterCustomerRequest body de POST /api/customers/register.
type RegisterCustomerRequest struct {
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	City            string `json:"city"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// CustomerDTO cliente (sin hash de contraseña).
type CustomerDTO struct {
	ID   int64  `json:"customer_id"`
	Code string `json:"customer_code"`
	Name string `json:"name"`
	City string `json:"city"`
}

// VehicleModelDTO modelo de vehículo.
type VehicleModelDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ProductPriceDTO precio unitario de un modelo.
type ProductPriceDTO struct {
	Success   bool            `json:"success"`
	ModelID   int64           `json:"model_id"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// CreateCustomerOrderRequest body de POST /api/orders.
type CreateCustomerOrderRequest struct {
	ModelID  int64 `json:"model_id"`
	Quantity int64 `json:"quantity"`
}

// CreateCustomerOrderResponse pedido creado.
type CreateCustomerOrderResponse struct {
	Success     bool            `json:"success"`
	OrderID     int64           `json:"order_id"`
	ProductID   int64           `json:"product_id"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	CreatedAt   time.Time       `json:"created_at"`
}

// CustomerOrderDTO pedido con totales.
type CustomerOrderDTO struct {
	ID              int64           `json:"order_id"`
	CustomerID      int64           `json:"customer_id,omitempty"`
	CustomerName    string          `json:"customer_name,omitempty"`
	City            string          `json:"city,omitempty"`
	OrderDate       string          `json:"order_date"`
	PlannedDelivery string          `json:"planned_delivery,omitempty"`
	ActualDelivery  string          `json:"actual_delivery,omitempty"`
	Status          string          `json:"status"`
	TotalUnits      int64           `json:"total_units"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	Products        string          `json:"products,omitempty"`
}

// CustomerOrderSummaryDTO contadores para las tarjetas del panel de cliente.
type CustomerOrderSummaryDTO struct {
	TotalOrders     int64           `json:"total_orders"`
	ActiveOrders    int64           `json:"active_orders"`
	CompletedOrders int64           `json:"completed_orders"`
	CanceledOrders  int64           `json:"canceled_orders"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
}

// UpdateCustomerOrderRequest body de PUT /api/admin/orders/:id.
// PlannedDelivery "" borra la fecha; ausente (nil) no la toca.
type UpdateCustomerOrderRequest struct {
	Status          *string `json:"status"`
	PlannedDelivery *string `json:"planned_delivery"`
}
