package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/thiagomes07/inovacamp/internal/adapter/repository/repo_interfaces"
	"github.com/thiagomes07/inovacamp/internal/commons"
	"github.com/thiagomes07/inovacamp/internal/logger"
)

// NewStores binds every repository to the connection pool for reads and
// single-statement writes outside a unit of work.
func NewStores(db *sql.DB) repo_interfaces.Stores {
	return storesOn(db)
}

func storesOn(q Queryer) repo_interfaces.Stores {
	return repo_interfaces.Stores{
		Wallets:        &WalletRepository{q: q},
		Transactions:   &TransactionRepository{q: q},
		Pools:          &PoolRepository{q: q},
		Allocations:    &PoolAllocationRepository{q: q},
		CreditRequests: &CreditRequestRepository{q: q},
		Loans:          &LoanRepository{q: q},
		Installments:   &InstallmentRepository{q: q},
		Profiles:       &ProfileRepository{q: q},
	}
}

type UnitOfWork struct {
	db *sql.DB
}

func NewUnitOfWork(db *sql.DB) *UnitOfWork {
	return &UnitOfWork{db: db}
}

// RunAtomic executes fn inside a serializable transaction. A serialization or
// deadlock failure is retried once; a second conflict surfaces as
// commons.ErrTransactionConflict.
func (u *UnitOfWork) RunAtomic(ctx context.Context, fn func(ctx context.Context, stores repo_interfaces.Stores) error) error {
	const attempts = 2

	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		err = u.runOnce(ctx, fn)
		if err == nil {
			return nil
		}
		if !isSerializationFailure(err) {
			return err
		}
		logger.Info("unit of work serialization conflict", logger.Fields{
			"attempt": attempt,
		})
	}

	return fmt.Errorf("%w: %v", commons.ErrTransactionConflict, err)
}

func (u *UnitOfWork) runOnce(ctx context.Context, fn func(ctx context.Context, stores repo_interfaces.Stores) error) error {
	tx, err := u.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	if err := fn(ctx, storesOn(tx)); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	return nil
}

func isSerializationFailure(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return pqErr.Code == "40001" || pqErr.Code == "40P01"
}
