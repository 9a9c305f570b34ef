// Package personnel casos de uso de personal: estadísticas de turnos, promedios de
// eficiencia y premios por rango de eficiencia.
package personnel

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/tekstil-api/internal/application/dto"
	"github.com/jhoicas/tekstil-api/internal/domain"
	"github.com/jhoicas/tekstil-api/internal/domain/entity"
	"github.com/jhoicas/tekstil-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// DefaultRules reglas iniciales cargadas por cmd/seed_defaults cuando la tabla está vacía.
func DefaultRules() []entity.RewardRule {
	ninety := decimal.NewFromInt(90)
	eighty := decimal.NewFromInt(80)
	sixty := decimal.NewFromInt(60)
	cash2500 := decimal.NewFromInt(2500)
	cash2000 := decimal.NewFromInt(2000)
	card500 := decimal.NewFromInt(500)
	return []entity.RewardRule{
		{MinPercentage: ninety, RewardType: entity.RewardTypeCash, Amount: &cash2500, Description: "2500 TL prim", IsActive: true},
		{MinPercentage: eighty, MaxPercentage: &ninety, RewardType: entity.RewardTypeCash, Amount: &cash2000, Description: "2000 TL prim", IsActive: true},
		{MinPercentage: sixty, MaxPercentage: &eighty, RewardType: entity.RewardTypeGiftCard, Amount: &card500, Description: "500 TL mağaza kuponu", IsActive: true},
		{MinPercentage: decimal.Zero, MaxPercentage: &sixty, RewardType: entity.RewardTypeOther, Description: "Ödül yok", IsActive: true},
	}
}

// UseCase personal y premios.
type UseCase struct {
	personnel repository.PersonnelRepository
	rules     repository.RewardRuleRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(personnel repository.PersonnelRepository, rules repository.RewardRuleRepository) *UseCase {
	return &UseCase{personnel: personnel, rules: rules}
}

// ListPersonnel todo el personal con sus agregados de turnos.
func (uc *UseCase) ListPersonnel(ctx context.Context) ([]dto.PersonnelStatsDTO, error) {
	list, err := uc.personnel.ListWithStats(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PersonnelStatsDTO, 0, len(list))
	for _, p := range list {
		out = append(out, dto.PersonnelStatsDTO{
			ID:             p.ID,
			FullName:       p.FullName,
			Active:         p.Active,
			ShiftCount:     p.ShiftCount,
			PlannedMinutes: p.PlannedMinutes,
			WorkedMinutes:  p.WorkedMinutes,
			AvgEfficiency:  p.AvgEfficiency.Round(2),
		})
	}
	return out, nil
}

// EmployeeAverages eficiencia promedio de los empleados activos con un decimal.
func (uc *UseCase) EmployeeAverages(ctx context.Context) ([]dto.EmployeeAverageDTO, error) {
	list, err := uc.personnel.ActiveEfficiencies(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EmployeeAverageDTO, 0, len(list))
	for _, e := range list {
		out = append(out, dto.EmployeeAverageDTO{
			ID:                e.ID,
			FullName:          e.FullName,
			AverageEfficiency: e.AvgEfficiency.StringFixed(1),
		})
	}
	return out, nil
}

// ── Reglas de premios ─────────────────────────────────────────────────────────

// ListRules reglas por min_percentage DESC.
func (uc *UseCase) ListRules(ctx context.Context, includeInactive bool) ([]dto.RewardRuleDTO, error) {
	rules, err := uc.rules.List(ctx, includeInactive)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RewardRuleDTO, 0, len(rules))
	for _, r := range rules {
		out = append(out, toRuleDTO(r))
	}
	return out, nil
}

// CreateRule alta de una regla activa.
func (uc *UseCase) CreateRule(ctx context.Context, in dto.CreateRewardRuleRequest) (*dto.RewardRuleDTO, error) {
	rule := &entity.RewardRule{
		MinPercentage: in.MinPercentage,
		MaxPercentage: in.MaxPercentage,
		RewardType:    strings.TrimSpace(in.RewardType),
		Amount:        in.Amount,
		Description:   strings.TrimSpace(in.Description),
		IsActive:      true,
	}
	if err := validateRule(rule); err != nil {
		return nil, err
	}
	if err := uc.rules.Create(ctx, rule); err != nil {
		return nil, err
	}
	d := toRuleDTO(rule)
	return &d, nil
}

// UpdateRule cambio parcial: solo los campos presentes en la petición.
func (uc *UseCase) UpdateRule(ctx context.Context, id int64, in dto.UpdateRewardRuleRequest) (*dto.RewardRuleDTO, error) {
	rule, err := uc.rules.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rule == nil {
		return nil, domain.ErrNotFound
	}

	if in.MinPercentage != nil {
		rule.MinPercentage = *in.MinPercentage
	}
	switch {
	case in.ClearMax:
		rule.MaxPercentage = nil
	case in.MaxPercentage != nil:
		rule.MaxPercentage = in.MaxPercentage
	}
	if in.RewardType != nil {
		rule.RewardType = strings.TrimSpace(*in.RewardType)
	}
	switch {
	case in.ClearAmount:
		rule.Amount = nil
	case in.Amount != nil:
		rule.Amount = in.Amount
	}
	if in.Description != nil {
		rule.Description = strings.TrimSpace(*in.Description)
	}
	if in.IsActive != nil {
		rule.IsActive = *in.IsActive
	}

	if err := validateRule(rule); err != nil {
		return nil, err
	}
	ok, err := uc.rules.Update(ctx, rule)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrNotFound
	}
	d := toRuleDTO(rule)
	return &d, nil
}

// DeleteRule baja de una regla.
func (uc *UseCase) DeleteRule(ctx context.Context, id int64) error {
	ok, err := uc.rules.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

// EmployeeRewards premio de cada empleado activo: la primera regla activa (por mínimo
// descendente) cuyo rango contiene su eficiencia. Sin regla, Reward es nil.
func (uc *UseCase) EmployeeRewards(ctx context.Context) ([]dto.EmployeeRewardDTO, error) {
	employees, err := uc.personnel.ActiveEfficiencies(ctx)
	if err != nil {
		return nil, err
	}
	rules, err := uc.rules.List(ctx, false)
	if err != nil {
		return nil, err
	}

	out := make([]dto.EmployeeRewardDTO, 0, len(employees))
	for _, e := range employees {
		eff := e.AvgEfficiency.Round(1)
		item := dto.EmployeeRewardDTO{ID: e.ID, FullName: e.FullName, Efficiency: eff.StringFixed(1)}
		if r := matchRule(rules, eff); r != nil {
			item.Reward = &dto.MatchedRewardDTO{RuleID: r.ID, Type: r.RewardType, Amount: r.Amount, Description: r.Description}
		}
		out = append(out, item)
	}
	return out, nil
}

// EnsureDefaultRules carga DefaultRules si no hay ninguna regla. Devuelve cuántas insertó.
func (uc *UseCase) EnsureDefaultRules(ctx context.Context) (int, error) {
	existing, err := uc.rules.List(ctx, true)
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		return 0, nil
	}
	n := 0
	for _, r := range DefaultRules() {
		rule := r
		if err := uc.rules.Create(ctx, &rule); err != nil {
			return n, fmt.Errorf("regla por defecto %s: %w", rule.Description, err)
		}
		n++
	}
	return n, nil
}

func matchRule(rules []*entity.RewardRule, eff decimal.Decimal) *entity.RewardRule {
	for _, r := range rules {
		if r.IsActive && r.Matches(eff) {
			return r
		}
	}
	return nil
}

func validateRule(r *entity.RewardRule) error {
	if r.MinPercentage.IsNegative() || r.MinPercentage.GreaterThan(hundred) {
		return fmt.Errorf("%w: min_percentage fuera de 0..100", domain.ErrInvalidInput)
	}
	if r.MaxPercentage != nil && !r.MaxPercentage.GreaterThan(r.MinPercentage) {
		return fmt.Errorf("%w: max_percentage debe ser mayor que min_percentage", domain.ErrInvalidInput)
	}
	switch r.RewardType {
	case entity.RewardTypeCash, entity.RewardTypeGiftCard, entity.RewardTypeOther:
	default:
		return fmt.Errorf("%w: reward_type %q", domain.ErrInvalidInput, r.RewardType)
	}
	if r.Amount != nil && r.Amount.IsNegative() {
		return fmt.Errorf("%w: amount negativo", domain.ErrInvalidInput)
	}
	return nil
}

func toRuleDTO(r *entity.RewardRule) dto.RewardRuleDTO {
	return dto.RewardRuleDTO{
		ID:            r.ID,
		MinPercentage: r.MinPercentage,
		MaxPercentage: r.MaxPercentage,
		RewardType:    r.RewardType,
		Amount:        r.Amount,
		Description:   r.Description,
		IsActive:      r.IsActive,
	}
}
