package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/thiagomes07/inovacamp/internal/commons"
	"github.com/thiagomes07/inovacamp/internal/domain"
	"github.com/thiagomes07/inovacamp/internal/logger"
)

type WalletRepository struct {
	q Queryer
}

func NewWalletRepository(q Queryer) *WalletRepository {
	return &WalletRepository{q: q}
}

const walletColumns = `id, owner_kind, owner_id, currency, balance, blocked, created_at, updated_at`

func (r *WalletRepository) Create(ctx context.Context, wallet domain.Wallet) (domain.Wallet, error) {
	logger.Info("wallet repository create", logger.Fields{
		"walletId":  wallet.ID,
		"ownerKind": wallet.Owner.Kind,
		"ownerId":   wallet.Owner.ID,
		"currency":  wallet.Currency,
	})

	const query = `
INSERT INTO wallets (
	id,
	owner_kind,
	owner_id,
	currency,
	balance,
	blocked,
	created_at,
	updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	if _, err := r.q.ExecContext(
		ctx,
		query,
		wallet.ID,
		wallet.Owner.Kind,
		wallet.Owner.ID,
		wallet.Currency,
		wallet.Balance,
		wallet.Blocked,
		wallet.CreatedAt,
		wallet.UpdatedAt,
	); err != nil {
		logger.Error("wallet repository create failed", err, logger.Fields{
			"walletId": wallet.ID,
		})
		return domain.Wallet{}, fmt.Errorf("create wallet: %w", err)
	}

	return wallet, nil
}

func (r *WalletRepository) GetByID(ctx context.Context, id string) (domain.Wallet, error) {
	const query = `SELECT ` + walletColumns + ` FROM wallets WHERE id = $1`
	return r.scanWallet(r.q.QueryRowContext(ctx, query, id))
}

func (r *WalletRepository) GetByOwner(ctx context.Context, owner domain.PartyRef, currency string) (domain.Wallet, error) {
	const query = `
SELECT ` + walletColumns + `
FROM wallets
WHERE owner_kind = $1 AND owner_id = $2 AND currency = $3`
	return r.scanWallet(r.q.QueryRowContext(ctx, query, owner.Kind, owner.ID, currency))
}

func (r *WalletRepository) ListByOwner(ctx context.Context, owner domain.PartyRef) ([]domain.Wallet, error) {
	const query = `
SELECT ` + walletColumns + `
FROM wallets
WHERE owner_kind = $1 AND owner_id = $2
ORDER BY created_at, id`

	rows, err := r.q.QueryContext(ctx, query, owner.Kind, owner.ID)
	if err != nil {
		return nil, fmt.Errorf("list wallets: %w", err)
	}
	defer rows.Close()

	var wallets []domain.Wallet
	for rows.Next() {
		wallet, err := scanWalletRow(rows)
		if err != nil {
			return nil, err
		}
		wallets = append(wallets, wallet)
	}
	return wallets, rows.Err()
}

func (r *WalletRepository) Credit(ctx context.Context, walletID string, amount decimal.Decimal) error {
	const query = `
UPDATE wallets
SET balance = balance + $2, updated_at = NOW()
WHERE id = $1`

	result, err := r.q.ExecContext(ctx, query, walletID, amount)
	if err != nil {
		logger.Error("wallet repository credit failed", err, logger.Fields{
			"walletId": walletID,
		})
		return fmt.Errorf("credit wallet: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("credit wallet rows affected: %w", err)
	}
	if rows == 0 {
		return commons.ErrRecordNotFound
	}
	return nil
}

func (r *WalletRepository) Debit(ctx context.Context, walletID string, amount decimal.Decimal) error {
	// The balance >= amount predicate is the overdraft guard; the table CHECK
	// constraint backs it up.
	const query = `
UPDATE wallets
SET balance = balance - $2, updated_at = NOW()
WHERE id = $1 AND balance >= $2`

	result, err := r.q.ExecContext(ctx, query, walletID, amount)
	if err != nil {
		logger.Error("wallet repository debit failed", err, logger.Fields{
			"walletId": walletID,
		})
		return fmt.Errorf("debit wallet: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("debit wallet rows affected: %w", err)
	}
	if rows == 0 {
		if _, err := r.GetByID(ctx, walletID); err != nil {
			return err
		}
		return commons.ErrInsufficientFunds
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *WalletRepository) scanWallet(row *sql.Row) (domain.Wallet, error) {
	wallet, err := scanWalletRow(row)
	if err == sql.ErrNoRows {
		return domain.Wallet{}, commons.ErrRecordNotFound
	}
	return wallet, err
}

func scanWalletRow(row rowScanner) (domain.Wallet, error) {
	var wallet domain.Wallet
	if err := row.Scan(
		&wallet.ID,
		&wallet.Owner.Kind,
		&wallet.Owner.ID,
		&wallet.Currency,
		&wallet.Balance,
		&wallet.Blocked,
		&wallet.CreatedAt,
		&wallet.UpdatedAt,
	); err != nil {
		return domain.Wallet{}, err
	}
	return wallet, nil
}
