package dto

import "github.com/shopspring/decimal"

// PersonnelStatsDTO empleado con el agregado de sus turnos.
type PersonnelStatsDTO struct {
	ID             int64           `json:"personnel_id"`
	FullName       string          `json:"full_name"`
	Active         bool            `json:"active"`
	ShiftCount     int             `json:"shift_count"`
	PlannedMinutes decimal.Decimal `json:"planned_minutes"`
	WorkedMinutes  decimal.Decimal `json:"worked_minutes"`
	AvgEfficiency  decimal.Decimal `json:"avg_efficiency"`
}

// EmployeeAverageDTO eficiencia promedio (1 decimal) de un empleado activo.
type EmployeeAverageDTO struct {
	ID                int64  `json:"personnel_id"`
	FullName          string `json:"full_name"`
	AverageEfficiency string `json:"average_efficiency"`
}

// RewardRuleDTO regla de premio.
type RewardRuleDTO struct {
	ID            int64            `json:"id"`
	MinPercentage decimal.Decimal  `json:"min_percentage"`
	MaxPercentage *decimal.Decimal `json:"max_percentage"`
	RewardType    string           `json:"reward_type"`
	Amount        *decimal.Decimal `json:"amount"`
	Description   string           `json:"description"`
	IsActive      bool             `json:"is_active"`
}

// CreateRewardRuleRequest body de POST /api/rewards/rules.
type CreateRewardRuleRequest struct {
	MinPercentage decimal.Decimal  `json:"min_percentage"`
	MaxPercentage *decimal.Decimal `json:"max_percentage"`
	RewardType    string           `json:"reward_type"`
	Amount        *decimal.Decimal `json:"amount"`
	Description   string           `json:"description"`
}

// UpdateRewardRuleRequest body de PUT /api/rewards/rules/:id. Solo se aplican los campos presentes;
// ClearMax / ClearAmount ponen el campo en null.
type UpdateRewardRuleRequest struct {
	MinPercentage *decimal.Decimal `json:"min_percentage"`
	MaxPercentage *decimal.Decimal `json:"max_percentage"`
	ClearMax      bool             `json:"clear_max_percentage"`
	RewardType    *string          `json:"reward_type"`
	Amount        *decimal.Decimal `json:"amount"`
	ClearAmount   bool             `json:"clear_amount"`
	Description   *string          `json:"description"`
	IsActive      *bool            `json:"is_active"`
}

// EmployeeRewardDTO premio que corresponde a un empleado según las reglas activas.
type EmployeeRewardDTO struct {
	ID         int64             `json:"personnel_id"`
	FullName   string            `json:"full_name"`
	Efficiency string            `json:"efficiency"`
	Reward     *MatchedRewardDTO `json:"reward"`
}

// MatchedRewardDTO regla aplicada.
type MatchedRewardDTO struct {
	RuleID      int64            `json:"rule_id"`
	Type        string           `json:"type"`
	Amount      *decimal.Decimal `json:"amount"`
	Description string           `json:"description"`
}
