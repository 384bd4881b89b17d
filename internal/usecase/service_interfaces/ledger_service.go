package service_interfaces

import (
	"context"

	"github.com/thiagomes07/inovacamp/internal/adapter/http/models"
	"github.com/thiagomes07/inovacamp/internal/commons"
)

type LedgerService interface {
	Transfer(ctx context.Context, req models.TransferRequest) (commons.Response[models.TransferResponse], error)
	Withdraw(ctx context.Context, req models.WithdrawRequest) (commons.Response[models.TransferResponse], error)
	GetWallets(ctx context.Context, ownerKind string, ownerID string) (commons.Response[[]models.WalletResponse], error)
	GetTransactions(ctx context.Context, ownerKind string, ownerID string) (commons.Response[[]models.TransactionResponse], error)
}
