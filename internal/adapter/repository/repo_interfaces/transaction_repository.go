package repo_interfaces

import (
	"context"

	"github.com/thiagomes07/inovacamp/internal/domain"
)

type TransactionRepository interface {
	Create(ctx context.Context, transaction domain.Transaction) (domain.Transaction, error)
	GetByID(ctx context.Context, id string) (domain.Transaction, error)
	ListByWallet(ctx context.Context, walletID string) ([]domain.Transaction, error)
	ListByParty(ctx context.Context, party domain.PartyRef) ([]domain.Transaction, error)
}
