package memory

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/thiagomes07/inovacamp/internal/commons"
	"github.com/thiagomes07/inovacamp/internal/domain"
)

type PoolRepository struct {
	s    *Store
	inTx bool
}

func NewPoolRepository(s *Store) *PoolRepository {
	return &PoolRepository{s: s}
}

func (r *PoolRepository) lock() func() {
	if r.inTx {
		return func() {}
	}
	r.s.mu.Lock()
	return r.s.mu.Unlock
}

func (r *PoolRepository) Create(_ context.Context, pool domain.Pool) (domain.Pool, error) {
	defer r.lock()()
	r.s.pools[pool.ID] = pool
	return pool, nil
}

func (r *PoolRepository) GetByID(_ context.Context, id string) (domain.Pool, error) {
	defer r.lock()()
	pool, ok := r.s.pools[id]
	if !ok {
		return domain.Pool{}, commons.ErrRecordNotFound
	}
	return pool, nil
}

func (r *PoolRepository) List(_ context.Context, status domain.PoolStatus) ([]domain.Pool, error) {
	defer r.lock()()
	var pools []domain.Pool
	for _, pool := range r.s.pools {
		if status == "" || pool.Status == status {
			pools = append(pools, pool)
		}
	}
	sortPoolsByCreation(pools)
	return pools, nil
}

func (r *PoolRepository) ListByInvestor(_ context.Context, investorID string) ([]domain.Pool, error) {
	defer r.lock()()
	var pools []domain.Pool
	for _, pool := range r.s.pools {
		if pool.InvestorID == investorID {
			pools = append(pools, pool)
		}
	}
	sortPoolsByCreation(pools)
	return pools, nil
}

func (r *PoolRepository) ListActiveOrdered(_ context.Context) ([]domain.Pool, error) {
	defer r.lock()()
	var pools []domain.Pool
	for _, pool := range r.s.pools {
		if pool.Status == domain.PoolStatusActive {
			pools = append(pools, pool)
		}
	}
	sort.Slice(pools, func(i, j int) bool {
		if !pools[i].ExpectedReturn.Equal(pools[j].ExpectedReturn) {
			return pools[i].ExpectedReturn.GreaterThan(pools[j].ExpectedReturn)
		}
		if !pools[i].CreatedAt.Equal(pools[j].CreatedAt) {
			return pools[i].CreatedAt.Before(pools[j].CreatedAt)
		}
		return pools[i].ID < pools[j].ID
	})
	return pools, nil
}

func (r *PoolRepository) Update(_ context.Context, pool domain.Pool) (domain.Pool, error) {
	defer r.lock()()
	if _, ok := r.s.pools[pool.ID]; !ok {
		return domain.Pool{}, commons.ErrRecordNotFound
	}
	pool.UpdatedAt = time.Now().UTC()
	r.s.pools[pool.ID] = pool
	return pool, nil
}

func (r *PoolRepository) UpdateStatus(_ context.Context, id string, status domain.PoolStatus) error {
	defer r.lock()()
	pool, ok := r.s.pools[id]
	if !ok {
		return commons.ErrRecordNotFound
	}
	pool.Status = status
	pool.UpdatedAt = time.Now().UTC()
	r.s.pools[id] = pool
	return nil
}

func (r *PoolRepository) AddCapital(_ context.Context, id string, amount decimal.Decimal) (domain.Pool, error) {
	defer r.lock()()
	pool, ok := r.s.pools[id]
	if !ok {
		return domain.Pool{}, commons.ErrRecordNotFound
	}
	pool.RaisedAmount = pool.RaisedAmount.Add(amount)
	pool.UpdatedAt = time.Now().UTC()
	r.s.pools[id] = pool
	return pool, nil
}

func sortPoolsByCreation(pools []domain.Pool) {
	sort.Slice(pools, func(i, j int) bool {
		if !pools[i].CreatedAt.Equal(pools[j].CreatedAt) {
			return pools[i].CreatedAt.Before(pools[j].CreatedAt)
		}
		return pools[i].ID < pools[j].ID
	})
}

type PoolAllocationRepository struct {
	s    *Store
	inTx bool
}

func NewPoolAllocationRepository(s *Store) *PoolAllocationRepository {
	return &PoolAllocationRepository{s: s}
}

func (r *PoolAllocationRepository) lock() func() {
	if r.inTx {
		return func() {}
	}
	r.s.mu.Lock()
	return r.s.mu.Unlock
}

func (r *PoolAllocationRepository) Create(_ context.Context, allocation domain.PoolAllocation) (domain.PoolAllocation, error) {
	defer r.lock()()
	r.s.allocations[allocation.ID] = allocation
	return allocation, nil
}

func (r *PoolAllocationRepository) ListByPool(_ context.Context, poolID string) ([]domain.PoolAllocation, error) {
	defer r.lock()()
	var allocations []domain.PoolAllocation
	for _, allocation := range r.s.allocations {
		if allocation.PoolID == poolID {
			allocations = append(allocations, allocation)
		}
	}
	sort.Slice(allocations, func(i, j int) bool {
		if !allocations[i].AllocatedAt.Equal(allocations[j].AllocatedAt) {
			return allocations[i].AllocatedAt.Before(allocations[j].AllocatedAt)
		}
		return allocations[i].ID < allocations[j].ID
	})
	return allocations, nil
}

func (r *PoolAllocationRepository) SumActiveByPool(_ context.Context, poolID string) (decimal.Decimal, error) {
	defer r.lock()()
	sum := decimal.Zero
	for _, allocation := range r.s.allocations {
		if allocation.PoolID == poolID && allocation.Status == domain.LoanStatusActive {
			sum = sum.Add(allocation.AllocatedAmount)
		}
	}
	return sum, nil
}

func (r *PoolAllocationRepository) UpdateStatusByRequest(_ context.Context, creditRequestID string, status domain.LoanStatus) error {
	defer r.lock()()
	for id, allocation := range r.s.allocations {
		if allocation.CreditRequestID == creditRequestID {
			allocation.Status = status
			r.s.allocations[id] = allocation
			return nil
		}
	}
	return commons.ErrRecordNotFound
}
