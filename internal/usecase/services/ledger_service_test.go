package services

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thiagomes07/inovacamp/internal/adapter/http/models"
	"github.com/thiagomes07/inovacamp/internal/commons"
	"github.com/thiagomes07/inovacamp/internal/domain"
)

func TestTransferMovesMoneyAndWritesOneTransaction(t *testing.T) {
	stores, uow := newTestStores()
	sender := seedProfile(t, stores, domain.OwnerKindInvestor, 0)
	receiver := seedProfile(t, stores, domain.OwnerKindBorrower, 0)
	seedWallet(t, stores, sender.Ref(), decimal.NewFromInt(500))
	svc := NewLedgerService(stores, uow)

	resp, err := svc.Transfer(context.Background(), models.TransferRequest{
		SenderKind:   "investor",
		SenderID:     sender.ID,
		ReceiverKind: "borrower",
		ReceiverID:   receiver.ID,
		Amount:       decimal.NewFromInt(120),
		Currency:     "BRL",
		Description:  "rent split",
	})
	require.NoError(t, err)
	require.True(t, resp.Success)
	assert.Equal(t, "120.00", resp.Data.Amount)
	assert.Equal(t, string(domain.TransactionStatusCompleted), resp.Data.Status)

	assert.Equal(t, "380", walletBalance(t, stores, sender.Ref()).String())
	// The receiver wallet is created lazily by the transfer itself.
	assert.Equal(t, "120", walletBalance(t, stores, receiver.Ref()).String())

	transactions, err := stores.Transactions.ListByParty(context.Background(), sender.Ref())
	require.NoError(t, err)
	require.Len(t, transactions, 1)
	assert.Equal(t, domain.TransactionTransfer, transactions[0].Type)
}

func TestTransferInsufficientFundsLeavesNoTrace(t *testing.T) {
	stores, uow := newTestStores()
	sender := seedProfile(t, stores, domain.OwnerKindInvestor, 0)
	receiver := seedProfile(t, stores, domain.OwnerKindBorrower, 0)
	seedWallet(t, stores, sender.Ref(), decimal.NewFromInt(50))
	svc := NewLedgerService(stores, uow)

	resp, err := svc.Transfer(context.Background(), models.TransferRequest{
		SenderKind:   "investor",
		SenderID:     sender.ID,
		ReceiverKind: "borrower",
		ReceiverID:   receiver.ID,
		Amount:       decimal.NewFromInt(80),
		Currency:     "BRL",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, commons.ErrInsufficientFunds))
	assert.False(t, resp.Success)

	assert.Equal(t, "50", walletBalance(t, stores, sender.Ref()).String())

	_, err = stores.Wallets.GetByOwner(context.Background(), receiver.Ref(), "BRL")
	assert.True(t, errors.Is(err, commons.ErrRecordNotFound))

	transactions, err := stores.Transactions.ListByParty(context.Background(), sender.Ref())
	require.NoError(t, err)
	assert.Empty(t, transactions)
}

func TestTransferValidation(t *testing.T) {
	stores, uow := newTestStores()
	svc := NewLedgerService(stores, uow)

	resp, err := svc.Transfer(context.Background(), models.TransferRequest{
		SenderKind: "merchant",
		Amount:     decimal.NewFromInt(-1),
		Currency:   "XYZ",
	})
	require.Error(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, "validation failed", resp.Message)
}

func TestWithdrawDebitsAndRecordsTarget(t *testing.T) {
	stores, uow := newTestStores()
	owner := seedProfile(t, stores, domain.OwnerKindBorrower, 0)
	seedWallet(t, stores, owner.Ref(), decimal.NewFromInt(300))
	svc := NewLedgerService(stores, uow)

	resp, err := svc.Withdraw(context.Background(), models.WithdrawRequest{
		OwnerKind: "borrower",
		OwnerID:   owner.ID,
		Amount:    decimal.NewFromInt(100),
		Currency:  "BRL",
		TargetKey: "pix:12345",
	})
	require.NoError(t, err)
	require.True(t, resp.Success)
	assert.Equal(t, string(domain.TransactionWithdrawal), resp.Data.Type)

	assert.Equal(t, "200", walletBalance(t, stores, owner.Ref()).String())

	transactions, err := stores.Transactions.ListByParty(context.Background(), owner.Ref())
	require.NoError(t, err)
	require.Len(t, transactions, 1)
	assert.Equal(t, "withdrawal to pix:12345", transactions[0].Description)
}

func TestGetWalletsAndTransactions(t *testing.T) {
	stores, uow := newTestStores()
	owner := seedProfile(t, stores, domain.OwnerKindInvestor, 0)
	seedWallet(t, stores, owner.Ref(), decimal.NewFromInt(42))
	svc := NewLedgerService(stores, uow)

	wallets, err := svc.GetWallets(context.Background(), "investor", owner.ID)
	require.NoError(t, err)
	require.True(t, wallets.Success)
	require.Len(t, *wallets.Data, 1)
	assert.Equal(t, "42.00", (*wallets.Data)[0].Balance)

	transactions, err := svc.GetTransactions(context.Background(), "investor", owner.ID)
	require.NoError(t, err)
	assert.Empty(t, *transactions.Data)

	_, err = svc.GetWallets(context.Background(), "merchant", owner.ID)
	assert.Error(t, err)
}
