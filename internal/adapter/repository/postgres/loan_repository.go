package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/thiagomes07/inovacamp/internal/commons"
	"github.com/thiagomes07/inovacamp/internal/domain"
	"github.com/thiagomes07/inovacamp/internal/logger"
)

type LoanRepository struct {
	q Queryer
}

func NewLoanRepository(q Queryer) *LoanRepository {
	return &LoanRepository{q: q}
}

const loanColumns = `id, credit_request_id, borrower_id, investor_id, pool_id, principal, interest_rate, term_months, status, disbursed_at, updated_at`

func (r *LoanRepository) Create(ctx context.Context, loan domain.Loan) (domain.Loan, error) {
	logger.Info("loan repository create", logger.Fields{
		"loanId":          loan.ID,
		"creditRequestId": loan.CreditRequestID,
		"borrowerId":      loan.BorrowerID,
	})

	const query = `
INSERT INTO loans (
	id,
	credit_request_id,
	borrower_id,
	investor_id,
	pool_id,
	principal,
	interest_rate,
	term_months,
	status,
	disbursed_at,
	updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	if _, err := r.q.ExecContext(
		ctx,
		query,
		loan.ID,
		loan.CreditRequestID,
		loan.BorrowerID,
		loan.InvestorID,
		loan.PoolID,
		loan.Principal,
		loan.InterestRate,
		loan.TermMonths,
		loan.Status,
		loan.DisbursedAt,
		loan.UpdatedAt,
	); err != nil {
		logger.Error("loan repository create failed", err, logger.Fields{
			"loanId": loan.ID,
		})
		return domain.Loan{}, fmt.Errorf("create loan: %w", err)
	}

	return loan, nil
}

func (r *LoanRepository) GetByID(ctx context.Context, id string) (domain.Loan, error) {
	const query = `SELECT ` + loanColumns + ` FROM loans WHERE id = $1`

	loan, err := scanLoan(r.q.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return domain.Loan{}, commons.ErrRecordNotFound
	}
	return loan, err
}

func (r *LoanRepository) ListByBorrower(ctx context.Context, borrowerID string) ([]domain.Loan, error) {
	const query = `
SELECT ` + loanColumns + `
FROM loans
WHERE borrower_id = $1
ORDER BY disbursed_at, id`
	return r.list(ctx, query, borrowerID)
}

func (r *LoanRepository) ListByPool(ctx context.Context, poolID string) ([]domain.Loan, error) {
	const query = `
SELECT ` + loanColumns + `
FROM loans
WHERE pool_id = $1
ORDER BY disbursed_at, id`
	return r.list(ctx, query, poolID)
}

func (r *LoanRepository) UpdateStatus(ctx context.Context, id string, status domain.LoanStatus) error {
	const query = `UPDATE loans SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.q.ExecContext(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("update loan status: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update loan status rows affected: %w", err)
	}
	if rows == 0 {
		return commons.ErrRecordNotFound
	}
	return nil
}

func (r *LoanRepository) list(ctx context.Context, query string, args ...any) ([]domain.Loan, error) {
	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list loans: %w", err)
	}
	defer rows.Close()

	var loans []domain.Loan
	for rows.Next() {
		loan, err := scanLoan(rows)
		if err != nil {
			return nil, err
		}
		loans = append(loans, loan)
	}
	return loans, rows.Err()
}

func scanLoan(row rowScanner) (domain.Loan, error) {
	var loan domain.Loan
	var investorID sql.NullString
	var poolID sql.NullString
	if err := row.Scan(
		&loan.ID,
		&loan.CreditRequestID,
		&loan.BorrowerID,
		&investorID,
		&poolID,
		&loan.Principal,
		&loan.InterestRate,
		&loan.TermMonths,
		&loan.Status,
		&loan.DisbursedAt,
		&loan.UpdatedAt,
	); err != nil {
		return domain.Loan{}, err
	}
	if investorID.Valid {
		value := investorID.String
		loan.InvestorID = &value
	}
	if poolID.Valid {
		value := poolID.String
		loan.PoolID = &value
	}
	return loan, nil
}

type InstallmentRepository struct {
	q Queryer
}

func NewInstallmentRepository(q Queryer) *InstallmentRepository {
	return &InstallmentRepository{q: q}
}

const installmentColumns = `id, loan_id, number, amount_due, amount_paid, due_date, paid_at, status`

func (r *InstallmentRepository) CreateBatch(ctx context.Context, installments []domain.Installment) error {
	const query = `
INSERT INTO loan_payments (
	id,
	loan_id,
	number,
	amount_due,
	amount_paid,
	due_date,
	status
) VALUES ($1, $2, $3, $4, $5, $6, $7)`

	for _, installment := range installments {
		if _, err := r.q.ExecContext(
			ctx,
			query,
			installment.ID,
			installment.LoanID,
			installment.Number,
			installment.AmountDue,
			installment.AmountPaid,
			installment.DueDate,
			installment.Status,
		); err != nil {
			logger.Error("installment repository create failed", err, logger.Fields{
				"loanId": installment.LoanID,
				"number": installment.Number,
			})
			return fmt.Errorf("create installment %d: %w", installment.Number, err)
		}
	}
	return nil
}

func (r *InstallmentRepository) ListByLoan(ctx context.Context, loanID string) ([]domain.Installment, error) {
	const query = `
SELECT ` + installmentColumns + `
FROM loan_payments
WHERE loan_id = $1
ORDER BY number`

	rows, err := r.q.QueryContext(ctx, query, loanID)
	if err != nil {
		return nil, fmt.Errorf("list installments: %w", err)
	}
	defer rows.Close()

	var installments []domain.Installment
	for rows.Next() {
		installment, err := scanInstallment(rows)
		if err != nil {
			return nil, err
		}
		installments = append(installments, installment)
	}
	return installments, rows.Err()
}

func (r *InstallmentRepository) NextPending(ctx context.Context, loanID string) (domain.Installment, error) {
	const query = `
SELECT ` + installmentColumns + `
FROM loan_payments
WHERE loan_id = $1 AND status <> 'paid'
ORDER BY number
LIMIT 1`

	installment, err := scanInstallment(r.q.QueryRowContext(ctx, query, loanID))
	if err == sql.ErrNoRows {
		return domain.Installment{}, commons.ErrRecordNotFound
	}
	return installment, err
}

func (r *InstallmentRepository) MarkPaid(ctx context.Context, id string, amount decimal.Decimal, paidAt time.Time) error {
	const query = `
UPDATE loan_payments
SET amount_paid = $2, paid_at = $3, status = 'paid'
WHERE id = $1`

	result, err := r.q.ExecContext(ctx, query, id, amount, paidAt)
	if err != nil {
		return fmt.Errorf("mark installment paid: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("mark installment paid rows affected: %w", err)
	}
	if rows == 0 {
		return commons.ErrRecordNotFound
	}
	return nil
}

func (r *InstallmentRepository) MarkOverdue(ctx context.Context, asOf time.Time) (int64, error) {
	const query = `
UPDATE loan_payments
SET status = 'overdue'
WHERE status = 'pending' AND due_date < $1`

	result, err := r.q.ExecContext(ctx, query, asOf)
	if err != nil {
		return 0, fmt.Errorf("mark installments overdue: %w", err)
	}
	return result.RowsAffected()
}

func scanInstallment(row rowScanner) (domain.Installment, error) {
	var installment domain.Installment
	var paidAt sql.NullTime
	if err := row.Scan(
		&installment.ID,
		&installment.LoanID,
		&installment.Number,
		&installment.AmountDue,
		&installment.AmountPaid,
		&installment.DueDate,
		&paidAt,
		&installment.Status,
	); err != nil {
		return domain.Installment{}, err
	}
	if paidAt.Valid {
		value := paidAt.Time
		installment.PaidAt = &value
	}
	return installment, nil
}
