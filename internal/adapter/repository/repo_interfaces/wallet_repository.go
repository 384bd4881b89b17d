package repo_interfaces

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/thiagomes07/inovacamp/internal/domain"
)

type WalletRepository interface {
	Create(ctx context.Context, wallet domain.Wallet) (domain.Wallet, error)
	GetByID(ctx context.Context, id string) (domain.Wallet, error)
	GetByOwner(ctx context.Context, owner domain.PartyRef, currency string) (domain.Wallet, error)
	ListByOwner(ctx context.Context, owner domain.PartyRef) ([]domain.Wallet, error)
	// Credit increases the wallet balance; amount must be positive.
	Credit(ctx context.Context, walletID string, amount decimal.Decimal) error
	// Debit decreases the wallet balance, returning
	// commons.ErrInsufficientFunds when the balance would go negative.
	Debit(ctx context.Context, walletID string, amount decimal.Decimal) error
}
