package entity

import "github.com/shopspring/decimal"

// Tipos de premio.
const (
	RewardTypeCash     = "cash"
	RewardTypeGiftCard = "giftCard"
	RewardTypeOther    = "other"
)

// RewardRule rango de eficiencia [Min, Max) y el premio asociado. Max nil = sin tope.
type RewardRule struct {
	ID            int64
	MinPercentage decimal.Decimal
	MaxPercentage *decimal.Decimal
	RewardType    string
	Amount        *decimal.Decimal
	Description   string
	IsActive      bool
}

// Matches indica si la eficiencia cae en el rango de la regla.
func (r RewardRule) Matches(efficiency decimal.Decimal) bool {
	if efficiency.LessThan(r.MinPercentage) {
		return false
	}
	return r.MaxPercentage == nil || efficiency.LessThan(*r.MaxPercentage)
}
