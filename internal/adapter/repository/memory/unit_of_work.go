package memory

import (
	"context"

	"github.com/thiagomes07/inovacamp/internal/adapter/repository/repo_interfaces"
)

// UnitOfWork serializes transactions through the store mutex and rolls back by
// restoring a snapshot of every collection. Domain structs hold value types
// only, so shallow map copies are full snapshots.
type UnitOfWork struct {
	s *Store
}

func NewUnitOfWork(s *Store) *UnitOfWork {
	return &UnitOfWork{s: s}
}

func (u *UnitOfWork) RunAtomic(ctx context.Context, fn func(ctx context.Context, stores repo_interfaces.Stores) error) error {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()

	wallets := cloneMap(u.s.wallets)
	transactions := cloneMap(u.s.transactions)
	pools := cloneMap(u.s.pools)
	allocations := cloneMap(u.s.allocations)
	creditRequests := cloneMap(u.s.creditRequests)
	loans := cloneMap(u.s.loans)
	installments := cloneMap(u.s.installments)
	profiles := cloneMap(u.s.profiles)

	stores := repo_interfaces.Stores{
		Wallets:        &WalletRepository{s: u.s, inTx: true},
		Transactions:   &TransactionRepository{s: u.s, inTx: true},
		Pools:          &PoolRepository{s: u.s, inTx: true},
		Allocations:    &PoolAllocationRepository{s: u.s, inTx: true},
		CreditRequests: &CreditRequestRepository{s: u.s, inTx: true},
		Loans:          &LoanRepository{s: u.s, inTx: true},
		Installments:   &InstallmentRepository{s: u.s, inTx: true},
		Profiles:       &ProfileRepository{s: u.s, inTx: true},
	}

	if err := fn(ctx, stores); err != nil {
		u.s.wallets = wallets
		u.s.transactions = transactions
		u.s.pools = pools
		u.s.allocations = allocations
		u.s.creditRequests = creditRequests
		u.s.loans = loans
		u.s.installments = installments
		u.s.profiles = profiles
		return err
	}

	return nil
}
