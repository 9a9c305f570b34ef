package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RawMaterialDTO materia prima activa (selector de los formularios).
type RawMaterialDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Unit string `json:"unit"`
}

// MaterialStockDTO fila del listado de stock.
type MaterialStockDTO struct {
	MaterialID      int64           `json:"material_id"`
	MaterialName    string          `json:"material_name"`
	Unit            string          `json:"unit"`
	CurrentQuantity decimal.Decimal `json:"current_quantity"`
	MinQuantity     decimal.Decimal `json:"min_quantity"`
	Critical        bool            `json:"critical"`
}

// CriticalCountResponse contador de materias críticas.
type CriticalCountResponse struct {
	Success       bool `json:"success"`
	CriticalCount int  `json:"critical_count"`
}

// StockMovementDTO fila del libro de movimientos.
type StockMovementDTO struct {
	ID            int64           `json:"id"`
	MaterialID    int64           `json:"material_id"`
	TransactionID string          `json:"transaction_id"`
	Type          string          `json:"type"`
	Quantity      decimal.Decimal `json:"quantity"`
	Note          string          `json:"note"`
	CreatedAt     time.Time       `json:"created_at"`
}

// RestockRequest body de POST /api/raw-materials/:id/restock.
type RestockRequest struct {
	Quantity decimal.Decimal `json:"quantity"`
	Note     string          `json:"note"`
}
