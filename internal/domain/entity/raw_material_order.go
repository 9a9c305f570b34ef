package entity

import (
	"time"

	"github.com/jhoicas/tekstil-api/internal/domain/procurement"
	"github.com/shopspring/decimal"
)

// RawMaterialOrder orden de compra de una materia prima a la fábrica.
// MaterialName y Unit solo se llenan en lecturas con JOIN.
type RawMaterialOrder struct {
	ID           int64
	MaterialID   int64
	MaterialName string
	Unit         string
	Quantity     decimal.Decimal
	OrderDate    time.Time
	Status       procurement.OrderStatus
}
