package entity

import "github.com/shopspring/decimal"

// MaterialStock existencia de una materia prima en el almacén propio.
type MaterialStock struct {
	MaterialID      int64
	MaterialName    string
	Unit            string
	CurrentQuantity decimal.Decimal
	MinQuantity     decimal.Decimal
}
