package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/thiagomes07/inovacamp/internal/adapter/repository/memory"
	"github.com/thiagomes07/inovacamp/internal/adapter/repository/repo_interfaces"
	"github.com/thiagomes07/inovacamp/internal/domain"
)

func newTestStores() (repo_interfaces.Stores, repo_interfaces.UnitOfWork) {
	store := memory.NewStore()
	return memory.NewStores(store), memory.NewUnitOfWork(store)
}

func seedProfile(t *testing.T, stores repo_interfaces.Stores, kind domain.OwnerKind, score int) domain.Profile {
	t.Helper()
	now := time.Now().UTC()
	profile, err := stores.Profiles.Create(context.Background(), domain.Profile{
		ID:              uuid.NewString(),
		Kind:            kind,
		Email:           uuid.NewString() + "@example.com",
		FullName:        "Test " + string(kind),
		PasswordHash:    "x",
		CalculatedScore: score,
		CreatedAt:       now,
		UpdatedAt:       now,
	})
	require.NoError(t, err)
	return profile
}

func seedWallet(t *testing.T, stores repo_interfaces.Stores, owner domain.PartyRef, balance decimal.Decimal) domain.Wallet {
	t.Helper()
	now := time.Now().UTC()
	wallet, err := stores.Wallets.Create(context.Background(), domain.Wallet{
		ID:        uuid.NewString(),
		Owner:     owner,
		Currency:  string(domain.DefaultCurrency),
		Balance:   balance,
		Blocked:   decimal.Zero,
		CreatedAt: now,
		UpdatedAt: now,
	})
	require.NoError(t, err)
	return wallet
}

func seedPool(t *testing.T, stores repo_interfaces.Stores, pool domain.Pool) domain.Pool {
	t.Helper()
	if pool.ID == "" {
		pool.ID = uuid.NewString()
	}
	if pool.Status == "" {
		pool.Status = domain.PoolStatusActive
	}
	if pool.MinScore == 0 {
		pool.MinScore = defaultMinScore
	}
	if pool.MaxTermMonths == 0 {
		pool.MaxTermMonths = defaultMaxTermMonths
	}
	if pool.UpdatedAt.IsZero() {
		pool.UpdatedAt = pool.CreatedAt
	}
	created, err := stores.Pools.Create(context.Background(), pool)
	require.NoError(t, err)
	return created
}

func walletBalance(t *testing.T, stores repo_interfaces.Stores, owner domain.PartyRef) decimal.Decimal {
	t.Helper()
	wallet, err := stores.Wallets.GetByOwner(context.Background(), owner, string(domain.DefaultCurrency))
	require.NoError(t, err)
	return wallet.Balance
}
