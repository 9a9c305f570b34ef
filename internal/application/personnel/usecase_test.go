package personnel

import (
	"context"
	"sort"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tekstil-api/internal/application/dto"
	"github.com/jhoicas/tekstil-api/internal/domain"
	"github.com/jhoicas/tekstil-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakePersonnel struct {
	stats []*entity.PersonnelStats
	effs  []*entity.EmployeeEfficiency
}

func (f *fakePersonnel) ListWithStats(context.Context) ([]*entity.PersonnelStats, error) {
	return f.stats, nil
}
func (f *fakePersonnel) ActiveEfficiencies(context.Context) ([]*entity.EmployeeEfficiency, error) {
	return f.effs, nil
}
func (f *fakePersonnel) GetName(_ context.Context, id int64) (string, bool, error) {
	for _, e := range f.effs {
		if e.ID == id {
			return e.FullName, true, nil
		}
	}
	return "", false, nil
}

type fakeRules struct {
	rules  map[int64]*entity.RewardRule
	nextID int64
}

func newFakeRules() *fakeRules { return &fakeRules{rules: map[int64]*entity.RewardRule{}} }

func (f *fakeRules) List(_ context.Context, includeInactive bool) ([]*entity.RewardRule, error) {
	var out []*entity.RewardRule
	for _, r := range f.rules {
		if includeInactive || r.IsActive {
			cp := *r
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].MinPercentage.GreaterThan(out[j].MinPercentage) })
	return out, nil
}
func (f *fakeRules) GetByID(_ context.Context, id int64) (*entity.RewardRule, error) {
	r, ok := f.rules[id]
	if !ok {
		return nil, nil
	}
	cp := *r
	return &cp, nil
}
func (f *fakeRules) Create(_ context.Context, r *entity.RewardRule) error {
	f.nextID++
	r.ID = f.nextID
	cp := *r
	f.rules[r.ID] = &cp
	return nil
}
func (f *fakeRules) Update(_ context.Context, r *entity.RewardRule) (bool, error) {
	if _, ok := f.rules[r.ID]; !ok {
		return false, nil
	}
	cp := *r
	f.rules[r.ID] = &cp
	return true, nil
}
func (f *fakeRules) Delete(_ context.Context, id int64) (bool, error) {
	if _, ok := f.rules[id]; !ok {
		return false, nil
	}
	delete(f.rules, id)
	return true, nil
}

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func seededUseCase(t *testing.T, effs ...*entity.EmployeeEfficiency) (*UseCase, *fakeRules) {
	t.Helper()
	rules := newFakeRules()
	uc := NewUseCase(&fakePersonnel{effs: effs}, rules)
	n, err := uc.EnsureDefaultRules(context.Background())
	require.NoError(t, err)
	require.Equal(t, 4, n)
	return uc, rules
}

// ──────────────────────────────────────────────────────────────────────────────
// Premios
// ──────────────────────────────────────────────────────────────────────────────

func TestEmployeeRewards_RangosPorDefecto(t *testing.T) {
	uc, _ := seededUseCase(t,
		&entity.EmployeeEfficiency{ID: 1, FullName: "Ayşe", AvgEfficiency: d("95.24")},
		&entity.EmployeeEfficiency{ID: 2, FullName: "Mehmet", AvgEfficiency: d("90")},
		&entity.EmployeeEfficiency{ID: 3, FullName: "Elif", AvgEfficiency: d("89.96")},
		&entity.EmployeeEfficiency{ID: 4, FullName: "Can", AvgEfficiency: d("72")},
		&entity.EmployeeEfficiency{ID: 5, FullName: "Zeynep", AvgEfficiency: d("10")},
	)

	got, err := uc.EmployeeRewards(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 5)

	assert.Equal(t, "95.2", got[0].Efficiency)
	assert.Equal(t, "2500 TL prim", got[0].Reward.Description)
	assert.Equal(t, "2500 TL prim", got[1].Reward.Description, "90 entra en [90, ∞)")
	// 89.96 redondea a 90.0 antes de buscar la regla
	assert.Equal(t, "90.0", got[2].Efficiency)
	assert.Equal(t, "2500 TL prim", got[2].Reward.Description)
	assert.Equal(t, entity.RewardTypeGiftCard, got[3].Reward.Type)
	assert.Equal(t, "Ödül yok", got[4].Reward.Description)
	assert.Nil(t, got[4].Reward.Amount)
}

func TestEmployeeRewards_ReglaInactivaNoAplica(t *testing.T) {
	uc, rules := seededUseCase(t, &entity.EmployeeEfficiency{ID: 1, FullName: "Ayşe", AvgEfficiency: d("95")})
	inactive := false
	for id, r := range rules.rules {
		if r.MaxPercentage == nil {
			_, err := uc.UpdateRule(context.Background(), id, dto.UpdateRewardRuleRequest{IsActive: &inactive})
			require.NoError(t, err)
		}
	}

	got, err := uc.EmployeeRewards(context.Background())
	require.NoError(t, err)
	assert.Nil(t, got[0].Reward, "sin regla activa que cubra 95")
}

func TestEnsureDefaultRules_NoDuplica(t *testing.T) {
	uc, rules := seededUseCase(t)

	n, err := uc.EnsureDefaultRules(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.Len(t, rules.rules, 4)
}

// ──────────────────────────────────────────────────────────────────────────────
// CRUD de reglas
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateRule_Validaciones(t *testing.T) {
	uc := NewUseCase(&fakePersonnel{}, newFakeRules())
	top := d("50")

	_, err := uc.CreateRule(context.Background(), dto.CreateRewardRuleRequest{MinPercentage: d("60"), MaxPercentage: &top, RewardType: "cash"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.CreateRule(context.Background(), dto.CreateRewardRuleRequest{MinPercentage: d("10"), RewardType: "bonus"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.CreateRule(context.Background(), dto.CreateRewardRuleRequest{MinPercentage: d("101"), RewardType: "cash"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	got, err := uc.CreateRule(context.Background(), dto.CreateRewardRuleRequest{MinPercentage: d("40"), MaxPercentage: &top, RewardType: "other", Description: " Teşekkür "})
	require.NoError(t, err)
	assert.True(t, got.IsActive)
	assert.Equal(t, "Teşekkür", got.Description)
}

func TestUpdateRule_ParcialYBorrarTope(t *testing.T) {
	uc := NewUseCase(&fakePersonnel{}, newFakeRules())
	top := d("50")
	amount := d("100")
	created, err := uc.CreateRule(context.Background(), dto.CreateRewardRuleRequest{MinPercentage: d("40"), MaxPercentage: &top, RewardType: "cash", Amount: &amount})
	require.NoError(t, err)

	desc := "Yeni"
	got, err := uc.UpdateRule(context.Background(), created.ID, dto.UpdateRewardRuleRequest{Description: &desc, ClearMax: true})
	require.NoError(t, err)
	assert.Equal(t, "Yeni", got.Description)
	assert.Nil(t, got.MaxPercentage)
	require.NotNil(t, got.Amount)
	assert.True(t, got.Amount.Equal(amount))

	_, err = uc.UpdateRule(context.Background(), 999, dto.UpdateRewardRuleRequest{Description: &desc})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteRule(t *testing.T) {
	uc, rules := seededUseCase(t)
	var id int64
	for k := range rules.rules {
		id = k
		break
	}

	require.NoError(t, uc.DeleteRule(context.Background(), id))
	assert.ErrorIs(t, uc.DeleteRule(context.Background(), id), domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Promedios
// ──────────────────────────────────────────────────────────────────────────────

func TestEmployeeAverages_UnDecimal(t *testing.T) {
	uc := NewUseCase(&fakePersonnel{effs: []*entity.EmployeeEfficiency{
		{ID: 1, FullName: "Ayşe", AvgEfficiency: d("87.25")},
		{ID: 2, FullName: "Can", AvgEfficiency: decimal.Zero},
	}}, newFakeRules())

	got, err := uc.EmployeeAverages(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "87.3", got[0].AverageEfficiency)
	assert.Equal(t, "0.0", got[1].AverageEfficiency)
}
