package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/tekstil-api/internal/domain/entity"
	"github.com/jhoicas/tekstil-api/internal/domain/repository"
)

var _ repository.RewardRuleRepository = (*RewardRuleRepo)(nil)

// RewardRuleRepo reglas de premios por rango de eficiencia.
type RewardRuleRepo struct {
	q Querier
}

// NewRewardRuleRepository construye el adaptador.
func NewRewardRuleRepository(q Querier) *RewardRuleRepo {
	return &RewardRuleRepo{q: q}
}

const selectRewardRule = `
	SELECT id, min_percentage, max_percentage, reward_type, amount, description, is_active
	FROM reward_rules`

// List reglas por min_percentage DESC (la primera que coincide gana).
func (r *RewardRuleRepo) List(ctx context.Context, includeInactive bool) ([]*entity.RewardRule, error) {
	query := selectRewardRule
	if !includeInactive {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY min_percentage DESC, id`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list reward rules: %w", err)
	}
	defer rows.Close()

	var list []*entity.RewardRule
	for rows.Next() {
		rule, err := scanRewardRule(rows)
		if err != nil {
			return nil, fmt.Errorf("scan reward rule: %w", err)
		}
		list = append(list, rule)
	}
	return list, rows.Err()
}

func (r *RewardRuleRepo) GetByID(ctx context.Context, id int64) (*entity.RewardRule, error) {
	rule, err := scanRewardRule(r.q.QueryRow(ctx, selectRewardRule+` WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get reward rule: %w", err)
	}
	return rule, nil
}

func (r *RewardRuleRepo) Create(ctx context.Context, rule *entity.RewardRule) error {
	query := `
		INSERT INTO reward_rules (min_percentage, max_percentage, reward_type, amount, description, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		rule.MinPercentage, rule.MaxPercentage, rule.RewardType, rule.Amount, rule.Description, rule.IsActive,
	).Scan(&rule.ID)
	if err != nil {
		return fmt.Errorf("insert reward rule: %w", err)
	}
	return nil
}

func (r *RewardRuleRepo) Update(ctx context.Context, rule *entity.RewardRule) (bool, error) {
	query := `
		UPDATE reward_rules
		SET min_percentage = $2, max_percentage = $3, reward_type = $4, amount = $5,
		    description = $6, is_active = $7
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		rule.ID, rule.MinPercentage, rule.MaxPercentage, rule.RewardType, rule.Amount, rule.Description, rule.IsActive,
	)
	if err != nil {
		return false, fmt.Errorf("update reward rule: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *RewardRuleRepo) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM reward_rules WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete reward rule: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func scanRewardRule(row pgx.Row) (*entity.RewardRule, error) {
	var rule entity.RewardRule
	if err := row.Scan(
		&rule.ID, &rule.MinPercentage, &rule.MaxPercentage, &rule.RewardType,
		&rule.Amount, &rule.Description, &rule.IsActive,
	); err != nil {
		return nil, err
	}
	return &rule, nil
}
