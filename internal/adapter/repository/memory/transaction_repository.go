package memory

import (
	"context"
	"sort"

	"github.com/thiagomes07/inovacamp/internal/commons"
	"github.com/thiagomes07/inovacamp/internal/domain"
)

type TransactionRepository struct {
	s    *Store
	inTx bool
}

func NewTransactionRepository(s *Store) *TransactionRepository {
	return &TransactionRepository{s: s}
}

func (r *TransactionRepository) lock() func() {
	if r.inTx {
		return func() {}
	}
	r.s.mu.Lock()
	return r.s.mu.Unlock
}

func (r *TransactionRepository) Create(_ context.Context, transaction domain.Transaction) (domain.Transaction, error) {
	defer r.lock()()
	r.s.transactions[transaction.ID] = transaction
	return transaction, nil
}

func (r *TransactionRepository) GetByID(_ context.Context, id string) (domain.Transaction, error) {
	defer r.lock()()
	transaction, ok := r.s.transactions[id]
	if !ok {
		return domain.Transaction{}, commons.ErrRecordNotFound
	}
	return transaction, nil
}

func (r *TransactionRepository) ListByWallet(_ context.Context, walletID string) ([]domain.Transaction, error) {
	defer r.lock()()
	var out []domain.Transaction
	for _, transaction := range r.s.transactions {
		if transaction.WalletID == walletID {
			out = append(out, transaction)
		}
	}
	sortTransactions(out)
	return out, nil
}

func (r *TransactionRepository) ListByParty(_ context.Context, party domain.PartyRef) ([]domain.Transaction, error) {
	defer r.lock()()
	var out []domain.Transaction
	for _, transaction := range r.s.transactions {
		if transaction.Sender == party || transaction.Receiver == party {
			out = append(out, transaction)
		}
	}
	sortTransactions(out)
	return out, nil
}

// Newest first, matching the statement ordering the HTTP layer exposes.
func sortTransactions(transactions []domain.Transaction) {
	sort.Slice(transactions, func(i, j int) bool {
		if !transactions[i].CreatedAt.Equal(transactions[j].CreatedAt) {
			return transactions[i].CreatedAt.After(transactions[j].CreatedAt)
		}
		return transactions[i].ID < transactions[j].ID
	})
}
