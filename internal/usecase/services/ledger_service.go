package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/thiagomes07/inovacamp/internal/adapter/http/models"
	"github.com/thiagomes07/inovacamp/internal/adapter/repository/repo_interfaces"
	"github.com/thiagomes07/inovacamp/internal/commons"
	"github.com/thiagomes07/inovacamp/internal/domain"
	"github.com/thiagomes07/inovacamp/internal/logger"
)

type LedgerService struct {
	stores repo_interfaces.Stores
	uow    repo_interfaces.UnitOfWork
}

func NewLedgerService(stores repo_interfaces.Stores, uow repo_interfaces.UnitOfWork) *LedgerService {
	return &LedgerService{stores: stores, uow: uow}
}

// getOrCreateWallet resolves a party's wallet for a currency, creating it with
// a zero balance on first use. Callers inside a unit of work pass the
// transactional stores so the creation commits or rolls back with the rest.
func getOrCreateWallet(ctx context.Context, wallets repo_interfaces.WalletRepository, owner domain.PartyRef, currency string) (domain.Wallet, error) {
	wallet, err := wallets.GetByOwner(ctx, owner, currency)
	if err == nil {
		return wallet, nil
	}
	if !errors.Is(err, commons.ErrRecordNotFound) {
		return domain.Wallet{}, err
	}

	now := time.Now().UTC()
	return wallets.Create(ctx, domain.Wallet{
		ID:        uuid.NewString(),
		Owner:     owner,
		Currency:  currency,
		Balance:   decimal.Zero,
		Blocked:   decimal.Zero,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

func (s *LedgerService) Transfer(ctx context.Context, req models.TransferRequest) (commons.Response[models.TransferResponse], error) {
	logger.Info("ledger service transfer request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		return commons.ErrorResponse[models.TransferResponse]("validation failed", err.Error()), err
	}

	senderKind, _ := domain.ParseOwnerKind(strings.ToLower(strings.TrimSpace(req.SenderKind)))
	receiverKind, _ := domain.ParseOwnerKind(strings.ToLower(strings.TrimSpace(req.ReceiverKind)))
	sender := domain.PartyRef{Kind: senderKind, ID: strings.TrimSpace(req.SenderID)}
	receiver := domain.PartyRef{Kind: receiverKind, ID: strings.TrimSpace(req.ReceiverID)}
	currency := strings.ToUpper(strings.TrimSpace(req.Currency))

	var transaction domain.Transaction
	err := s.uow.RunAtomic(ctx, func(ctx context.Context, st repo_interfaces.Stores) error {
		senderWallet, err := getOrCreateWallet(ctx, st.Wallets, sender, currency)
		if err != nil {
			return err
		}
		if err := st.Wallets.Debit(ctx, senderWallet.ID, req.Amount); err != nil {
			return err
		}

		receiverWallet, err := getOrCreateWallet(ctx, st.Wallets, receiver, currency)
		if err != nil {
			return err
		}
		if err := st.Wallets.Credit(ctx, receiverWallet.ID, req.Amount); err != nil {
			return err
		}

		transaction = domain.Transaction{
			ID:          uuid.NewString(),
			Sender:      sender,
			Receiver:    receiver,
			WalletID:    senderWallet.ID,
			Amount:      req.Amount,
			Currency:    currency,
			Type:        domain.TransactionTransfer,
			Status:      domain.TransactionStatusCompleted,
			Description: strings.TrimSpace(req.Description),
			CreatedAt:   time.Now().UTC(),
		}
		_, err = st.Transactions.Create(ctx, transaction)
		return err
	})
	if err != nil {
		if errors.Is(err, commons.ErrInsufficientFunds) {
			return commons.ErrorResponse[models.TransferResponse]("transfer failed", "Insufficient funds"), err
		}
		logger.Error("ledger service transfer failed", err, logger.Fields{
			"senderId":   sender.ID,
			"receiverId": receiver.ID,
		})
		return commons.ErrorResponse[models.TransferResponse]("transfer failed", "Unable to process transfer right now"), err
	}

	logger.Info("ledger service transfer success", logger.Fields{
		"transactionId": transaction.ID,
		"amount":        transaction.Amount.StringFixed(2),
	})

	return commons.SuccessResponse("transfer completed successfully", models.TransferResponse{
		TransactionID: transaction.ID,
		Type:          string(transaction.Type),
		Status:        string(transaction.Status),
		Amount:        transaction.Amount.StringFixed(2),
		Currency:      transaction.Currency,
		CreatedAt:     transaction.CreatedAt.Format(time.RFC3339),
	}), nil
}

func (s *LedgerService) Withdraw(ctx context.Context, req models.WithdrawRequest) (commons.Response[models.TransferResponse], error) {
	logger.Info("ledger service withdraw request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		return commons.ErrorResponse[models.TransferResponse]("validation failed", err.Error()), err
	}

	ownerKind, _ := domain.ParseOwnerKind(strings.ToLower(strings.TrimSpace(req.OwnerKind)))
	owner := domain.PartyRef{Kind: ownerKind, ID: strings.TrimSpace(req.OwnerID)}
	currency := strings.ToUpper(strings.TrimSpace(req.Currency))

	var transaction domain.Transaction
	err := s.uow.RunAtomic(ctx, func(ctx context.Context, st repo_interfaces.Stores) error {
		wallet, err := getOrCreateWallet(ctx, st.Wallets, owner, currency)
		if err != nil {
			return err
		}
		if err := st.Wallets.Debit(ctx, wallet.ID, req.Amount); err != nil {
			return err
		}

		transaction = domain.Transaction{
			ID:          uuid.NewString(),
			Sender:      owner,
			Receiver:    owner,
			WalletID:    wallet.ID,
			Amount:      req.Amount,
			Currency:    currency,
			Type:        domain.TransactionWithdrawal,
			Status:      domain.TransactionStatusCompleted,
			Description: "withdrawal to " + strings.TrimSpace(req.TargetKey),
			CreatedAt:   time.Now().UTC(),
		}
		_, err = st.Transactions.Create(ctx, transaction)
		return err
	})
	if err != nil {
		if errors.Is(err, commons.ErrInsufficientFunds) {
			return commons.ErrorResponse[models.TransferResponse]("withdrawal failed", "Insufficient funds"), err
		}
		logger.Error("ledger service withdraw failed", err, logger.Fields{
			"ownerId": owner.ID,
		})
		return commons.ErrorResponse[models.TransferResponse]("withdrawal failed", "Unable to process withdrawal right now"), err
	}

	return commons.SuccessResponse("withdrawal completed successfully", models.TransferResponse{
		TransactionID: transaction.ID,
		Type:          string(transaction.Type),
		Status:        string(transaction.Status),
		Amount:        transaction.Amount.StringFixed(2),
		Currency:      transaction.Currency,
		CreatedAt:     transaction.CreatedAt.Format(time.RFC3339),
	}), nil
}

func (s *LedgerService) GetWallets(ctx context.Context, ownerKind string, ownerID string) (commons.Response[[]models.WalletResponse], error) {
	kind, err := domain.ParseOwnerKind(strings.ToLower(strings.TrimSpace(ownerKind)))
	if err != nil {
		return commons.ErrorResponse[[]models.WalletResponse]("validation failed", err.Error()), err
	}

	wallets, err := s.stores.Wallets.ListByOwner(ctx, domain.PartyRef{Kind: kind, ID: strings.TrimSpace(ownerID)})
	if err != nil {
		return commons.ErrorResponse[[]models.WalletResponse]("failed to get wallets", "Unable to list wallets right now"), err
	}

	responses := make([]models.WalletResponse, 0, len(wallets))
	for _, wallet := range wallets {
		responses = append(responses, toWalletResponse(wallet))
	}
	return commons.SuccessResponse("wallets retrieved successfully", responses), nil
}

func (s *LedgerService) GetTransactions(ctx context.Context, ownerKind string, ownerID string) (commons.Response[[]models.TransactionResponse], error) {
	kind, err := domain.ParseOwnerKind(strings.ToLower(strings.TrimSpace(ownerKind)))
	if err != nil {
		return commons.ErrorResponse[[]models.TransactionResponse]("validation failed", err.Error()), err
	}

	transactions, err := s.stores.Transactions.ListByParty(ctx, domain.PartyRef{Kind: kind, ID: strings.TrimSpace(ownerID)})
	if err != nil {
		return commons.ErrorResponse[[]models.TransactionResponse]("failed to get transactions", "Unable to list transactions right now"), err
	}

	responses := make([]models.TransactionResponse, 0, len(transactions))
	for _, transaction := range transactions {
		responses = append(responses, toTransactionResponse(transaction))
	}
	return commons.SuccessResponse("transactions retrieved successfully", responses), nil
}
