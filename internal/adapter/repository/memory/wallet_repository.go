package memory

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/thiagomes07/inovacamp/internal/commons"
	"github.com/thiagomes07/inovacamp/internal/domain"
)

type WalletRepository struct {
	s    *Store
	inTx bool
}

func NewWalletRepository(s *Store) *WalletRepository {
	return &WalletRepository{s: s}
}

func (r *WalletRepository) lock() func() {
	if r.inTx {
		return func() {}
	}
	r.s.mu.Lock()
	return r.s.mu.Unlock
}

func (r *WalletRepository) Create(_ context.Context, wallet domain.Wallet) (domain.Wallet, error) {
	defer r.lock()()
	r.s.wallets[wallet.ID] = wallet
	return wallet, nil
}

func (r *WalletRepository) GetByID(_ context.Context, id string) (domain.Wallet, error) {
	defer r.lock()()
	wallet, ok := r.s.wallets[id]
	if !ok {
		return domain.Wallet{}, commons.ErrRecordNotFound
	}
	return wallet, nil
}

func (r *WalletRepository) GetByOwner(_ context.Context, owner domain.PartyRef, currency string) (domain.Wallet, error) {
	defer r.lock()()
	for _, wallet := range r.s.wallets {
		if wallet.Owner == owner && wallet.Currency == currency {
			return wallet, nil
		}
	}
	return domain.Wallet{}, commons.ErrRecordNotFound
}

func (r *WalletRepository) ListByOwner(_ context.Context, owner domain.PartyRef) ([]domain.Wallet, error) {
	defer r.lock()()
	var wallets []domain.Wallet
	for _, wallet := range r.s.wallets {
		if wallet.Owner == owner {
			wallets = append(wallets, wallet)
		}
	}
	sort.Slice(wallets, func(i, j int) bool {
		if !wallets[i].CreatedAt.Equal(wallets[j].CreatedAt) {
			return wallets[i].CreatedAt.Before(wallets[j].CreatedAt)
		}
		return wallets[i].ID < wallets[j].ID
	})
	return wallets, nil
}

func (r *WalletRepository) Credit(_ context.Context, walletID string, amount decimal.Decimal) error {
	defer r.lock()()
	wallet, ok := r.s.wallets[walletID]
	if !ok {
		return commons.ErrRecordNotFound
	}
	wallet.Balance = wallet.Balance.Add(amount)
	wallet.UpdatedAt = time.Now().UTC()
	r.s.wallets[walletID] = wallet
	return nil
}

func (r *WalletRepository) Debit(_ context.Context, walletID string, amount decimal.Decimal) error {
	defer r.lock()()
	wallet, ok := r.s.wallets[walletID]
	if !ok {
		return commons.ErrRecordNotFound
	}
	if wallet.Balance.LessThan(amount) {
		return commons.ErrInsufficientFunds
	}
	wallet.Balance = wallet.Balance.Sub(amount)
	wallet.UpdatedAt = time.Now().UTC()
	r.s.wallets[walletID] = wallet
	return nil
}
