package memory

import (
	"sync"

	"github.com/thiagomes07/inovacamp/internal/adapter/repository/repo_interfaces"
	"github.com/thiagomes07/inovacamp/internal/domain"
)

// Store holds every collection behind one mutex so a unit of work can take a
// consistent snapshot of all of them at once.
type Store struct {
	mu sync.Mutex

	wallets        map[string]domain.Wallet
	transactions   map[string]domain.Transaction
	pools          map[string]domain.Pool
	allocations    map[string]domain.PoolAllocation
	creditRequests map[string]domain.CreditRequest
	loans          map[string]domain.Loan
	installments   map[string]domain.Installment
	profiles       map[string]domain.Profile
}

func NewStore() *Store {
	return &Store{
		wallets:        map[string]domain.Wallet{},
		transactions:   map[string]domain.Transaction{},
		pools:          map[string]domain.Pool{},
		allocations:    map[string]domain.PoolAllocation{},
		creditRequests: map[string]domain.CreditRequest{},
		loans:          map[string]domain.Loan{},
		installments:   map[string]domain.Installment{},
		profiles:       map[string]domain.Profile{},
	}
}

// NewStores binds every repository to the same store outside any transaction.
func NewStores(s *Store) repo_interfaces.Stores {
	return repo_interfaces.Stores{
		Wallets:        &WalletRepository{s: s},
		Transactions:   &TransactionRepository{s: s},
		Pools:          &PoolRepository{s: s},
		Allocations:    &PoolAllocationRepository{s: s},
		CreditRequests: &CreditRequestRepository{s: s},
		Loans:          &LoanRepository{s: s},
		Installments:   &InstallmentRepository{s: s},
		Profiles:       &ProfileRepository{s: s},
	}
}

func cloneMap[V any](m map[string]V) map[string]V {
	out := make(map[string]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
