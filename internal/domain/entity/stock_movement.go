package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de materia prima.
const (
	MovementTypeIn  = "IN"  // entrada (reposición)
	MovementTypeOut = "OUT" // salida (entrega de orden)
)

// StockMovement registro append-only del libro de movimientos.
type StockMovement struct {
	ID            int64
	MaterialID    int64
	TransactionID string // UUID de la transacción que lo generó
	Type          string
	Quantity      decimal.Decimal
	Note          string
	CreatedAt     time.Time
}
