package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/thiagomes07/inovacamp/internal/commons"
	"github.com/thiagomes07/inovacamp/internal/domain"
	"github.com/thiagomes07/inovacamp/internal/logger"
)

type CreditRequestRepository struct {
	q Queryer
}

func NewCreditRequestRepository(q Queryer) *CreditRequestRepository {
	return &CreditRequestRepository{q: q}
}

const creditRequestColumns = `id, borrower_id, amount_requested, term_months, interest_rate, status, collateral_type, collateral_description, requested_at, approved_at, updated_at`

func (r *CreditRequestRepository) Create(ctx context.Context, request domain.CreditRequest) (domain.CreditRequest, error) {
	logger.Info("credit request repository create", logger.Fields{
		"creditRequestId": request.ID,
		"borrowerId":      request.BorrowerID,
	})

	const query = `
INSERT INTO credit_requests (
	id,
	borrower_id,
	amount_requested,
	term_months,
	interest_rate,
	status,
	collateral_type,
	collateral_description,
	requested_at,
	updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	if _, err := r.q.ExecContext(
		ctx,
		query,
		request.ID,
		request.BorrowerID,
		request.AmountRequested,
		request.TermMonths,
		request.InterestRate,
		request.Status,
		request.CollateralType,
		request.CollateralDescription,
		request.RequestedAt,
		request.UpdatedAt,
	); err != nil {
		logger.Error("credit request repository create failed", err, logger.Fields{
			"creditRequestId": request.ID,
		})
		return domain.CreditRequest{}, fmt.Errorf("create credit request: %w", err)
	}

	return request, nil
}

func (r *CreditRequestRepository) GetByID(ctx context.Context, id string) (domain.CreditRequest, error) {
	const query = `SELECT ` + creditRequestColumns + ` FROM credit_requests WHERE id = $1`

	request, err := scanCreditRequest(r.q.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return domain.CreditRequest{}, commons.ErrRecordNotFound
	}
	return request, err
}

func (r *CreditRequestRepository) ListByBorrower(ctx context.Context, borrowerID string) ([]domain.CreditRequest, error) {
	const query = `
SELECT ` + creditRequestColumns + `
FROM credit_requests
WHERE borrower_id = $1
ORDER BY requested_at, id`
	return r.list(ctx, query, borrowerID)
}

func (r *CreditRequestRepository) ListPending(ctx context.Context) ([]domain.CreditRequest, error) {
	const query = `
SELECT ` + creditRequestColumns + `
FROM credit_requests
WHERE status = 'pending'
ORDER BY requested_at, id`
	return r.list(ctx, query)
}

func (r *CreditRequestRepository) UpdateStatus(ctx context.Context, id string, status domain.CreditRequestStatus, approvedAt *time.Time) error {
	const query = `
UPDATE credit_requests
SET status = $2,
    approved_at = COALESCE($3, approved_at),
    updated_at = NOW()
WHERE id = $1`

	result, err := r.q.ExecContext(ctx, query, id, status, approvedAt)
	if err != nil {
		logger.Error("credit request repository update status failed", err, logger.Fields{
			"creditRequestId": id,
		})
		return fmt.Errorf("update credit request status: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update credit request status rows affected: %w", err)
	}
	if rows == 0 {
		return commons.ErrRecordNotFound
	}
	return nil
}

func (r *CreditRequestRepository) list(ctx context.Context, query string, args ...any) ([]domain.CreditRequest, error) {
	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list credit requests: %w", err)
	}
	defer rows.Close()

	var requests []domain.CreditRequest
	for rows.Next() {
		request, err := scanCreditRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, request)
	}
	return requests, rows.Err()
}

func scanCreditRequest(row rowScanner) (domain.CreditRequest, error) {
	var request domain.CreditRequest
	var approvedAt sql.NullTime
	if err := row.Scan(
		&request.ID,
		&request.BorrowerID,
		&request.AmountRequested,
		&request.TermMonths,
		&request.InterestRate,
		&request.Status,
		&request.CollateralType,
		&request.CollateralDescription,
		&request.RequestedAt,
		&approvedAt,
		&request.UpdatedAt,
	); err != nil {
		return domain.CreditRequest{}, err
	}
	if approvedAt.Valid {
		value := approvedAt.Time
		request.ApprovedAt = &value
	}
	return request, nil
}
