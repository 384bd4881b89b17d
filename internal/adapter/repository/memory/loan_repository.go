package memory

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/thiagomes07/inovacamp/internal/commons"
	"github.com/thiagomes07/inovacamp/internal/domain"
)

type LoanRepository struct {
	s    *Store
	inTx bool
}

func NewLoanRepository(s *Store) *LoanRepository {
	return &LoanRepository{s: s}
}

func (r *LoanRepository) lock() func() {
	if r.inTx {
		return func() {}
	}
	r.s.mu.Lock()
	return r.s.mu.Unlock
}

func (r *LoanRepository) Create(_ context.Context, loan domain.Loan) (domain.Loan, error) {
	defer r.lock()()
	r.s.loans[loan.ID] = loan
	return loan, nil
}

func (r *LoanRepository) GetByID(_ context.Context, id string) (domain.Loan, error) {
	defer r.lock()()
	loan, ok := r.s.loans[id]
	if !ok {
		return domain.Loan{}, commons.ErrRecordNotFound
	}
	return loan, nil
}

func (r *LoanRepository) ListByBorrower(_ context.Context, borrowerID string) ([]domain.Loan, error) {
	defer r.lock()()
	var loans []domain.Loan
	for _, loan := range r.s.loans {
		if loan.BorrowerID == borrowerID {
			loans = append(loans, loan)
		}
	}
	sortLoans(loans)
	return loans, nil
}

func (r *LoanRepository) ListByPool(_ context.Context, poolID string) ([]domain.Loan, error) {
	defer r.lock()()
	var loans []domain.Loan
	for _, loan := range r.s.loans {
		if loan.PoolID != nil && *loan.PoolID == poolID {
			loans = append(loans, loan)
		}
	}
	sortLoans(loans)
	return loans, nil
}

func (r *LoanRepository) UpdateStatus(_ context.Context, id string, status domain.LoanStatus) error {
	defer r.lock()()
	loan, ok := r.s.loans[id]
	if !ok {
		return commons.ErrRecordNotFound
	}
	loan.Status = status
	loan.UpdatedAt = time.Now().UTC()
	r.s.loans[id] = loan
	return nil
}

func sortLoans(loans []domain.Loan) {
	sort.Slice(loans, func(i, j int) bool {
		if !loans[i].DisbursedAt.Equal(loans[j].DisbursedAt) {
			return loans[i].DisbursedAt.Before(loans[j].DisbursedAt)
		}
		return loans[i].ID < loans[j].ID
	})
}

type InstallmentRepository struct {
	s    *Store
	inTx bool
}

func NewInstallmentRepository(s *Store) *InstallmentRepository {
	return &InstallmentRepository{s: s}
}

func (r *InstallmentRepository) lock() func() {
	if r.inTx {
		return func() {}
	}
	r.s.mu.Lock()
	return r.s.mu.Unlock
}

func (r *InstallmentRepository) CreateBatch(_ context.Context, installments []domain.Installment) error {
	defer r.lock()()
	for _, installment := range installments {
		r.s.installments[installment.ID] = installment
	}
	return nil
}

func (r *InstallmentRepository) ListByLoan(_ context.Context, loanID string) ([]domain.Installment, error) {
	defer r.lock()()
	var installments []domain.Installment
	for _, installment := range r.s.installments {
		if installment.LoanID == loanID {
			installments = append(installments, installment)
		}
	}
	sort.Slice(installments, func(i, j int) bool {
		return installments[i].Number < installments[j].Number
	})
	return installments, nil
}

func (r *InstallmentRepository) NextPending(ctx context.Context, loanID string) (domain.Installment, error) {
	installments, err := r.ListByLoan(ctx, loanID)
	if err != nil {
		return domain.Installment{}, err
	}
	for _, installment := range installments {
		if installment.Status != domain.InstallmentStatusPaid {
			return installment, nil
		}
	}
	return domain.Installment{}, commons.ErrRecordNotFound
}

func (r *InstallmentRepository) MarkPaid(_ context.Context, id string, amount decimal.Decimal, paidAt time.Time) error {
	defer r.lock()()
	installment, ok := r.s.installments[id]
	if !ok {
		return commons.ErrRecordNotFound
	}
	installment.AmountPaid = amount
	installment.PaidAt = &paidAt
	installment.Status = domain.InstallmentStatusPaid
	r.s.installments[id] = installment
	return nil
}

func (r *InstallmentRepository) MarkOverdue(_ context.Context, asOf time.Time) (int64, error) {
	defer r.lock()()
	var changed int64
	for id, installment := range r.s.installments {
		if installment.Status == domain.InstallmentStatusPending && installment.DueDate.Before(asOf) {
			installment.Status = domain.InstallmentStatusOverdue
			r.s.installments[id] = installment
			changed++
		}
	}
	return changed, nil
}
