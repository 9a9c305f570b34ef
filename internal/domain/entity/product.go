package entity

import "github.com/shopspring/decimal"

// VehicleModel modelo de vehículo para el que se fabrican fundas.
type VehicleModel struct {
	ID   int64
	Name string
}

// Product producto vendible (funda para un modelo) con su precio unitario.
type Product struct {
	ID        int64
	Name      string
	ModelID   int64
	UnitPrice decimal.Decimal
}
