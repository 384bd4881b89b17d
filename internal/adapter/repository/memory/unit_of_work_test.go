package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thiagomes07/inovacamp/internal/adapter/repository/repo_interfaces"
	"github.com/thiagomes07/inovacamp/internal/commons"
	"github.com/thiagomes07/inovacamp/internal/domain"
)

func testWallet(id string, balance int64) domain.Wallet {
	now := time.Now().UTC()
	return domain.Wallet{
		ID:        id,
		Owner:     domain.BorrowerRef("owner-" + id),
		Currency:  "BRL",
		Balance:   decimal.NewFromInt(balance),
		Blocked:   decimal.Zero,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestRunAtomicCommitsOnSuccess(t *testing.T) {
	store := NewStore()
	stores := NewStores(store)
	uow := NewUnitOfWork(store)

	err := uow.RunAtomic(context.Background(), func(ctx context.Context, st repo_interfaces.Stores) error {
		_, err := st.Wallets.Create(ctx, testWallet("w1", 100))
		return err
	})
	require.NoError(t, err)

	wallet, err := stores.Wallets.GetByID(context.Background(), "w1")
	require.NoError(t, err)
	assert.Equal(t, "100", wallet.Balance.String())
}

func TestRunAtomicRollsBackEveryCollection(t *testing.T) {
	store := NewStore()
	stores := NewStores(store)
	uow := NewUnitOfWork(store)

	_, err := stores.Wallets.Create(context.Background(), testWallet("w1", 100))
	require.NoError(t, err)

	boom := errors.New("boom")
	err = uow.RunAtomic(context.Background(), func(ctx context.Context, st repo_interfaces.Stores) error {
		if err := st.Wallets.Debit(ctx, "w1", decimal.NewFromInt(40)); err != nil {
			return err
		}
		if _, err := st.Wallets.Create(ctx, testWallet("w2", 0)); err != nil {
			return err
		}
		if _, err := st.Transactions.Create(ctx, domain.Transaction{
			ID:        "t1",
			Sender:    domain.BorrowerRef("owner-w1"),
			Receiver:  domain.BorrowerRef("owner-w2"),
			WalletID:  "w1",
			Amount:    decimal.NewFromInt(40),
			Currency:  "BRL",
			Type:      domain.TransactionTransfer,
			Status:    domain.TransactionStatusCompleted,
			CreatedAt: time.Now().UTC(),
		}); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	wallet, err := stores.Wallets.GetByID(context.Background(), "w1")
	require.NoError(t, err)
	assert.Equal(t, "100", wallet.Balance.String())

	_, err = stores.Wallets.GetByID(context.Background(), "w2")
	assert.ErrorIs(t, err, commons.ErrRecordNotFound)

	transactions, err := stores.Transactions.ListByParty(context.Background(), domain.BorrowerRef("owner-w1"))
	require.NoError(t, err)
	assert.Empty(t, transactions)
}

func TestRunAtomicDebitFailureSurfaces(t *testing.T) {
	store := NewStore()
	stores := NewStores(store)
	uow := NewUnitOfWork(store)

	_, err := stores.Wallets.Create(context.Background(), testWallet("w1", 30))
	require.NoError(t, err)

	err = uow.RunAtomic(context.Background(), func(ctx context.Context, st repo_interfaces.Stores) error {
		return st.Wallets.Debit(ctx, "w1", decimal.NewFromInt(31))
	})
	assert.ErrorIs(t, err, commons.ErrInsufficientFunds)

	wallet, err := stores.Wallets.GetByID(context.Background(), "w1")
	require.NoError(t, err)
	assert.Equal(t, "30", wallet.Balance.String())
}
