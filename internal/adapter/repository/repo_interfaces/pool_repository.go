package repo_interfaces

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/thiagomes07/inovacamp/internal/domain"
)

type PoolRepository interface {
	Create(ctx context.Context, pool domain.Pool) (domain.Pool, error)
	GetByID(ctx context.Context, id string) (domain.Pool, error)
	List(ctx context.Context, status domain.PoolStatus) ([]domain.Pool, error)
	ListByInvestor(ctx context.Context, investorID string) ([]domain.Pool, error)
	// ListActiveOrdered returns active pools in matching order: expected
	// return descending, then creation time ascending, then ID ascending.
	// The order is a correctness contract, not a presentation concern.
	ListActiveOrdered(ctx context.Context) ([]domain.Pool, error)
	Update(ctx context.Context, pool domain.Pool) (domain.Pool, error)
	UpdateStatus(ctx context.Context, id string, status domain.PoolStatus) error
	AddCapital(ctx context.Context, id string, amount decimal.Decimal) (domain.Pool, error)
}

type PoolAllocationRepository interface {
	Create(ctx context.Context, allocation domain.PoolAllocation) (domain.PoolAllocation, error)
	ListByPool(ctx context.Context, poolID string) ([]domain.PoolAllocation, error)
	// SumActiveByPool is the capital currently committed to live loans; the
	// pool's lendable amount is RaisedAmount minus this sum.
	SumActiveByPool(ctx context.Context, poolID string) (decimal.Decimal, error)
	UpdateStatusByRequest(ctx context.Context, creditRequestID string, status domain.LoanStatus) error
}
