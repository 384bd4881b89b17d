package repo_interfaces

import "context"

// Stores bundles every repository bound to the same backing store, so a
// unit of work can hand callers a transactional view of all of them.
type Stores struct {
	Wallets        WalletRepository
	Transactions   TransactionRepository
	Pools          PoolRepository
	Allocations    PoolAllocationRepository
	CreditRequests CreditRequestRepository
	Loans          LoanRepository
	Installments   InstallmentRepository
	Profiles       ProfileRepository
}

// UnitOfWork runs fn atomically: either every write made through the
// supplied stores is visible afterwards, or none are.
type UnitOfWork interface {
	RunAtomic(ctx context.Context, fn func(ctx context.Context, stores Stores) error) error
}
