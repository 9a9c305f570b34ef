package dto

import "github.com/shopspring/decimal"

// OrderStatusRequest body de PUT /api/raw-material-orders/:id/status.
// "durum" es el nombre del campo que usan los paneles; "status" se acepta como alias.
type OrderStatusRequest struct {
	Durum  string `json:"durum"`
	Status string `json:"status"`
}

// Requested devuelve el texto de estado enviado, priorizando "durum".
func (r OrderStatusRequest) Requested() string {
	if r.Durum != "" {
		return r.Durum
	}
	return r.Status
}

// FulfillmentResponse respuesta de los endpoints de cambio de estado y entrega.
type FulfillmentResponse struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	StockUpdated bool   `json:"stockUpdated"`
	Status       string `json:"status"`
}

// RawMaterialOrderDTO orden de materia prima para listados y exportación.
type RawMaterialOrderDTO struct {
	ID                int64           `json:"id"`
	MaterialID        int64           `json:"material_id"`
	MaterialName      string          `json:"material_name"`
	Unit              string          `json:"unit"`
	Quantity          decimal.Decimal `json:"quantity"`
	OrderDate         string          `json:"order_date"`         // dd.MM.yyyy
	EstimatedDelivery string          `json:"estimated_delivery"` // dd.MM.yyyy, N días hábiles después
	Status            string          `json:"status"`
	StatusLabel       string          `json:"status_label"`
}

// CreateRawMaterialOrderRequest body de POST /api/raw-material-orders.
// hammadde_id / miktar son los nombres heredados de los formularios antiguos.
type CreateRawMaterialOrderRequest struct {
	MaterialID       int64            `json:"material_id"`
	Quantity         *decimal.Decimal `json:"quantity"`
	OrderDate        string           `json:"order_date"` // yyyy-MM-dd o dd.MM.yyyy; vacío = hoy
	LegacyMaterialID int64            `json:"hammadde_id"`
	LegacyQuantity   *decimal.Decimal `json:"miktar"`
}

// Normalize copia los campos heredados sobre los nuevos cuando estos vienen vacíos.
func (r *CreateRawMaterialOrderRequest) Normalize() {
	if r.MaterialID == 0 {
		r.MaterialID = r.LegacyMaterialID
	}
	if r.Quantity == nil {
		r.Quantity = r.LegacyQuantity
	}
}

// UpdateRawMaterialOrderRequest body de PUT /api/raw-material-orders/:id (edición administrativa).
// No lleva estado: el estado solo cambia por /status o /deliver, que descuentan stock.
type UpdateRawMaterialOrderRequest struct {
	MaterialID int64           `json:"material_id"`
	Quantity   decimal.Decimal `json:"quantity"`
	OrderDate  string          `json:"order_date"`
}
