package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/thiagomes07/inovacamp/internal/commons"
	"github.com/thiagomes07/inovacamp/internal/domain"
	"github.com/thiagomes07/inovacamp/internal/logger"
)

type PoolRepository struct {
	q Queryer
}

func NewPoolRepository(q Queryer) *PoolRepository {
	return &PoolRepository{q: q}
}

const poolColumns = `id, investor_id, name, target_amount, raised_amount, risk_profile, expected_return, min_score, requires_collateral, min_interest_rate, max_term_months, status, created_at, updated_at`

func (r *PoolRepository) Create(ctx context.Context, pool domain.Pool) (domain.Pool, error) {
	logger.Info("pool repository create", logger.Fields{
		"poolId":     pool.ID,
		"investorId": pool.InvestorID,
		"name":       pool.Name,
	})

	const query = `
INSERT INTO pools (
	id,
	investor_id,
	name,
	target_amount,
	raised_amount,
	risk_profile,
	expected_return,
	min_score,
	requires_collateral,
	min_interest_rate,
	max_term_months,
	status,
	created_at,
	updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	if _, err := r.q.ExecContext(
		ctx,
		query,
		pool.ID,
		pool.InvestorID,
		pool.Name,
		pool.TargetAmount,
		pool.RaisedAmount,
		pool.RiskProfile,
		pool.ExpectedReturn,
		pool.MinScore,
		pool.RequiresCollateral,
		pool.MinInterestRate,
		pool.MaxTermMonths,
		pool.Status,
		pool.CreatedAt,
		pool.UpdatedAt,
	); err != nil {
		logger.Error("pool repository create failed", err, logger.Fields{
			"poolId": pool.ID,
		})
		return domain.Pool{}, fmt.Errorf("create pool: %w", err)
	}

	return pool, nil
}

func (r *PoolRepository) GetByID(ctx context.Context, id string) (domain.Pool, error) {
	const query = `SELECT ` + poolColumns + ` FROM pools WHERE id = $1`

	pool, err := scanPool(r.q.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return domain.Pool{}, commons.ErrRecordNotFound
	}
	return pool, err
}

func (r *PoolRepository) List(ctx context.Context, status domain.PoolStatus) ([]domain.Pool, error) {
	if status == "" {
		const query = `SELECT ` + poolColumns + ` FROM pools ORDER BY created_at, id`
		return r.list(ctx, query)
	}
	const query = `SELECT ` + poolColumns + ` FROM pools WHERE status = $1 ORDER BY created_at, id`
	return r.list(ctx, query, status)
}

func (r *PoolRepository) ListByInvestor(ctx context.Context, investorID string) ([]domain.Pool, error) {
	const query = `SELECT ` + poolColumns + ` FROM pools WHERE investor_id = $1 ORDER BY created_at, id`
	return r.list(ctx, query, investorID)
}

func (r *PoolRepository) ListActiveOrdered(ctx context.Context) ([]domain.Pool, error) {
	// The ordering is the matching priority: best expected return first,
	// oldest pool breaking ties.
	const query = `
SELECT ` + poolColumns + `
FROM pools
WHERE status = 'active'
ORDER BY expected_return DESC, created_at, id`
	return r.list(ctx, query)
}

func (r *PoolRepository) Update(ctx context.Context, pool domain.Pool) (domain.Pool, error) {
	const query = `
UPDATE pools
SET name = $2,
    target_amount = $3,
    risk_profile = $4,
    expected_return = $5,
    min_score = $6,
    requires_collateral = $7,
    min_interest_rate = $8,
    max_term_months = $9,
    status = $10,
    updated_at = NOW()
WHERE id = $1
RETURNING updated_at`

	if err := r.q.QueryRowContext(
		ctx,
		query,
		pool.ID,
		pool.Name,
		pool.TargetAmount,
		pool.RiskProfile,
		pool.ExpectedReturn,
		pool.MinScore,
		pool.RequiresCollateral,
		pool.MinInterestRate,
		pool.MaxTermMonths,
		pool.Status,
	).Scan(&pool.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return domain.Pool{}, commons.ErrRecordNotFound
		}
		logger.Error("pool repository update failed", err, logger.Fields{
			"poolId": pool.ID,
		})
		return domain.Pool{}, fmt.Errorf("update pool: %w", err)
	}

	return pool, nil
}

func (r *PoolRepository) UpdateStatus(ctx context.Context, id string, status domain.PoolStatus) error {
	const query = `UPDATE pools SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.q.ExecContext(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("update pool status: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update pool status rows affected: %w", err)
	}
	if rows == 0 {
		return commons.ErrRecordNotFound
	}
	return nil
}

func (r *PoolRepository) AddCapital(ctx context.Context, id string, amount decimal.Decimal) (domain.Pool, error) {
	const query = `
UPDATE pools
SET raised_amount = raised_amount + $2, updated_at = NOW()
WHERE id = $1
RETURNING ` + poolColumns

	pool, err := scanPool(r.q.QueryRowContext(ctx, query, id, amount))
	if err == sql.ErrNoRows {
		return domain.Pool{}, commons.ErrRecordNotFound
	}
	if err != nil {
		logger.Error("pool repository add capital failed", err, logger.Fields{
			"poolId": id,
		})
		return domain.Pool{}, fmt.Errorf("add pool capital: %w", err)
	}
	return pool, nil
}

func (r *PoolRepository) list(ctx context.Context, query string, args ...any) ([]domain.Pool, error) {
	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list pools: %w", err)
	}
	defer rows.Close()

	var pools []domain.Pool
	for rows.Next() {
		pool, err := scanPool(rows)
		if err != nil {
			return nil, err
		}
		pools = append(pools, pool)
	}
	return pools, rows.Err()
}

func scanPool(row rowScanner) (domain.Pool, error) {
	var pool domain.Pool
	if err := row.Scan(
		&pool.ID,
		&pool.InvestorID,
		&pool.Name,
		&pool.TargetAmount,
		&pool.RaisedAmount,
		&pool.RiskProfile,
		&pool.ExpectedReturn,
		&pool.MinScore,
		&pool.RequiresCollateral,
		&pool.MinInterestRate,
		&pool.MaxTermMonths,
		&pool.Status,
		&pool.CreatedAt,
		&pool.UpdatedAt,
	); err != nil {
		return domain.Pool{}, err
	}
	return pool, nil
}

type PoolAllocationRepository struct {
	q Queryer
}

func NewPoolAllocationRepository(q Queryer) *PoolAllocationRepository {
	return &PoolAllocationRepository{q: q}
}

func (r *PoolAllocationRepository) Create(ctx context.Context, allocation domain.PoolAllocation) (domain.PoolAllocation, error) {
	logger.Info("pool allocation repository create", logger.Fields{
		"allocationId":    allocation.ID,
		"poolId":          allocation.PoolID,
		"creditRequestId": allocation.CreditRequestID,
	})

	const query = `
INSERT INTO pool_loans (
	id,
	pool_id,
	credit_request_id,
	allocated_amount,
	status,
	allocated_at
) VALUES ($1, $2, $3, $4, $5, $6)`

	if _, err := r.q.ExecContext(
		ctx,
		query,
		allocation.ID,
		allocation.PoolID,
		allocation.CreditRequestID,
		allocation.AllocatedAmount,
		allocation.Status,
		allocation.AllocatedAt,
	); err != nil {
		logger.Error("pool allocation repository create failed", err, logger.Fields{
			"allocationId": allocation.ID,
		})
		return domain.PoolAllocation{}, fmt.Errorf("create pool allocation: %w", err)
	}

	return allocation, nil
}

func (r *PoolAllocationRepository) ListByPool(ctx context.Context, poolID string) ([]domain.PoolAllocation, error) {
	const query = `
SELECT id, pool_id, credit_request_id, allocated_amount, status, allocated_at
FROM pool_loans
WHERE pool_id = $1
ORDER BY allocated_at, id`

	rows, err := r.q.QueryContext(ctx, query, poolID)
	if err != nil {
		return nil, fmt.Errorf("list pool allocations: %w", err)
	}
	defer rows.Close()

	var allocations []domain.PoolAllocation
	for rows.Next() {
		var allocation domain.PoolAllocation
		if err := rows.Scan(
			&allocation.ID,
			&allocation.PoolID,
			&allocation.CreditRequestID,
			&allocation.AllocatedAmount,
			&allocation.Status,
			&allocation.AllocatedAt,
		); err != nil {
			return nil, err
		}
		allocations = append(allocations, allocation)
	}
	return allocations, rows.Err()
}

func (r *PoolAllocationRepository) SumActiveByPool(ctx context.Context, poolID string) (decimal.Decimal, error) {
	const query = `
SELECT COALESCE(SUM(allocated_amount), 0)
FROM pool_loans
WHERE pool_id = $1 AND status = 'active'`

	var sum decimal.Decimal
	if err := r.q.QueryRowContext(ctx, query, poolID).Scan(&sum); err != nil {
		return decimal.Zero, fmt.Errorf("sum active allocations: %w", err)
	}
	return sum, nil
}

func (r *PoolAllocationRepository) UpdateStatusByRequest(ctx context.Context, creditRequestID string, status domain.LoanStatus) error {
	const query = `UPDATE pool_loans SET status = $2 WHERE credit_request_id = $1`

	result, err := r.q.ExecContext(ctx, query, creditRequestID, status)
	if err != nil {
		return fmt.Errorf("update pool allocation status: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update pool allocation status rows affected: %w", err)
	}
	if rows == 0 {
		return commons.ErrRecordNotFound
	}
	return nil
}
