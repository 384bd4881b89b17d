package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/thiagomes07/inovacamp/internal/commons"
	"github.com/thiagomes07/inovacamp/internal/domain"
	"github.com/thiagomes07/inovacamp/internal/logger"
)

type TransactionRepository struct {
	q Queryer
}

func NewTransactionRepository(q Queryer) *TransactionRepository {
	return &TransactionRepository{q: q}
}

const transactionColumns = `id, sender_kind, sender_id, receiver_kind, receiver_id, wallet_id, amount, currency, type, status, description, created_at`

func (r *TransactionRepository) Create(ctx context.Context, transaction domain.Transaction) (domain.Transaction, error) {
	logger.Info("transaction repository create", logger.Fields{
		"transactionId": transaction.ID,
		"type":          transaction.Type,
		"walletId":      transaction.WalletID,
	})

	const query = `
INSERT INTO transactions (
	id,
	sender_kind,
	sender_id,
	receiver_kind,
	receiver_id,
	wallet_id,
	amount,
	currency,
	type,
	status,
	description,
	created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	if _, err := r.q.ExecContext(
		ctx,
		query,
		transaction.ID,
		transaction.Sender.Kind,
		transaction.Sender.ID,
		transaction.Receiver.Kind,
		transaction.Receiver.ID,
		transaction.WalletID,
		transaction.Amount,
		transaction.Currency,
		transaction.Type,
		transaction.Status,
		transaction.Description,
		transaction.CreatedAt,
	); err != nil {
		logger.Error("transaction repository create failed", err, logger.Fields{
			"transactionId": transaction.ID,
		})
		return domain.Transaction{}, fmt.Errorf("create transaction: %w", err)
	}

	return transaction, nil
}

func (r *TransactionRepository) GetByID(ctx context.Context, id string) (domain.Transaction, error) {
	const query = `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1`

	transaction, err := scanTransaction(r.q.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return domain.Transaction{}, commons.ErrRecordNotFound
	}
	return transaction, err
}

func (r *TransactionRepository) ListByWallet(ctx context.Context, walletID string) ([]domain.Transaction, error) {
	const query = `
SELECT ` + transactionColumns + `
FROM transactions
WHERE wallet_id = $1
ORDER BY created_at DESC, id`

	return r.list(ctx, query, walletID)
}

func (r *TransactionRepository) ListByParty(ctx context.Context, party domain.PartyRef) ([]domain.Transaction, error) {
	const query = `
SELECT ` + transactionColumns + `
FROM transactions
WHERE (sender_kind = $1 AND sender_id = $2) OR (receiver_kind = $1 AND receiver_id = $2)
ORDER BY created_at DESC, id`

	return r.list(ctx, query, party.Kind, party.ID)
}

func (r *TransactionRepository) list(ctx context.Context, query string, args ...any) ([]domain.Transaction, error) {
	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		transaction, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, transaction)
	}
	return transactions, rows.Err()
}

func scanTransaction(row rowScanner) (domain.Transaction, error) {
	var transaction domain.Transaction
	if err := row.Scan(
		&transaction.ID,
		&transaction.Sender.Kind,
		&transaction.Sender.ID,
		&transaction.Receiver.Kind,
		&transaction.Receiver.ID,
		&transaction.WalletID,
		&transaction.Amount,
		&transaction.Currency,
		&transaction.Type,
		&transaction.Status,
		&transaction.Description,
		&transaction.CreatedAt,
	); err != nil {
		return domain.Transaction{}, err
	}
	return transaction, nil
}
