package repo_interfaces

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/thiagomes07/inovacamp/internal/domain"
)

type LoanRepository interface {
	Create(ctx context.Context, loan domain.Loan) (domain.Loan, error)
	GetByID(ctx context.Context, id string) (domain.Loan, error)
	ListByBorrower(ctx context.Context, borrowerID string) ([]domain.Loan, error)
	ListByPool(ctx context.Context, poolID string) ([]domain.Loan, error)
	UpdateStatus(ctx context.Context, id string, status domain.LoanStatus) error
}

type InstallmentRepository interface {
	CreateBatch(ctx context.Context, installments []domain.Installment) error
	ListByLoan(ctx context.Context, loanID string) ([]domain.Installment, error)
	// NextPending returns the earliest unpaid installment, overdue included.
	NextPending(ctx context.Context, loanID string) (domain.Installment, error)
	MarkPaid(ctx context.Context, id string, amount decimal.Decimal, paidAt time.Time) error
	// MarkOverdue flips pending installments whose due date has passed and
	// returns how many rows changed.
	MarkOverdue(ctx context.Context, asOf time.Time) (int64, error)
}
