package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thiagomes07/inovacamp/internal/adapter/http/models"
	"github.com/thiagomes07/inovacamp/internal/adapter/repository/repo_interfaces"
	"github.com/thiagomes07/inovacamp/internal/commons"
	"github.com/thiagomes07/inovacamp/internal/domain"
)

// poolFundedLoan drives a real match so the payment tests start from the same
// state production would: active loan, active allocation, approved request.
func poolFundedLoan(t *testing.T, stores repo_interfaces.Stores, uow repo_interfaces.UnitOfWork, borrower, investor domain.Profile, pool domain.Pool) domain.Loan {
	t.Helper()
	matching := newMatchingService(stores, uow)
	resp, err := matching.CreateCreditRequest(context.Background(), models.CreateCreditRequest{
		BorrowerID:   borrower.ID,
		Amount:       decimal.NewFromInt(1200),
		TermMonths:   2,
		InterestRate: decimal.Zero,
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Data.Match)
	require.Equal(t, pool.ID, resp.Data.Match.PoolID)

	loan, err := stores.Loans.GetByID(context.Background(), resp.Data.Match.LoanID)
	require.NoError(t, err)
	return loan
}

func TestRecordPaymentSettlesInstallmentAndPaysFunder(t *testing.T) {
	stores, uow := newTestStores()
	borrower := seedProfile(t, stores, domain.OwnerKindBorrower, 750)
	investor := seedProfile(t, stores, domain.OwnerKindInvestor, 0)
	pool := seedPool(t, stores, domain.Pool{
		InvestorID:     investor.ID,
		Name:           "repay",
		TargetAmount:   decimal.NewFromInt(10000),
		RaisedAmount:   decimal.NewFromInt(10000),
		ExpectedReturn: decimal.NewFromInt(2),
		CreatedAt:      time.Now().UTC(),
	})
	loan := poolFundedLoan(t, stores, uow, borrower, investor, pool)
	svc := NewLoanService(stores, uow)

	resp, err := svc.RecordPayment(context.Background(), loan.ID)
	require.NoError(t, err)
	require.True(t, resp.Success)
	assert.Equal(t, 1, resp.Data.InstallmentNumber)
	assert.Equal(t, "600.00", resp.Data.AmountPaid)
	assert.Equal(t, string(domain.LoanStatusActive), resp.Data.LoanStatus)

	// Disbursed 1200, paid 600 back; repayment lands with the pool owner.
	assert.Equal(t, "600", walletBalance(t, stores, borrower.Ref()).String())
	assert.Equal(t, "600", walletBalance(t, stores, investor.Ref()).String())

	installments, err := stores.Installments.ListByLoan(context.Background(), loan.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.InstallmentStatusPaid, installments[0].Status)
	require.NotNil(t, installments[0].PaidAt)
	assert.Equal(t, domain.InstallmentStatusPending, installments[1].Status)
}

func TestRecordPaymentFinalInstallmentClosesLoanAndFreesPool(t *testing.T) {
	stores, uow := newTestStores()
	borrower := seedProfile(t, stores, domain.OwnerKindBorrower, 750)
	investor := seedProfile(t, stores, domain.OwnerKindInvestor, 0)
	pool := seedPool(t, stores, domain.Pool{
		InvestorID:     investor.ID,
		Name:           "repay",
		TargetAmount:   decimal.NewFromInt(10000),
		RaisedAmount:   decimal.NewFromInt(10000),
		ExpectedReturn: decimal.NewFromInt(2),
		CreatedAt:      time.Now().UTC(),
	})
	loan := poolFundedLoan(t, stores, uow, borrower, investor, pool)
	svc := NewLoanService(stores, uow)

	_, err := svc.RecordPayment(context.Background(), loan.ID)
	require.NoError(t, err)
	resp, err := svc.RecordPayment(context.Background(), loan.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.LoanStatusPaid), resp.Data.LoanStatus)

	updated, err := stores.Loans.GetByID(context.Background(), loan.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.LoanStatusPaid, updated.Status)

	// The allocation is released, so the full pool is lendable again.
	committed, err := stores.Allocations.SumActiveByPool(context.Background(), pool.ID)
	require.NoError(t, err)
	assert.True(t, committed.IsZero())

	request, err := stores.CreditRequests.GetByID(context.Background(), loan.CreditRequestID)
	require.NoError(t, err)
	assert.Equal(t, domain.CreditRequestStatusCompleted, request.Status)

	// A third payment attempt has nothing left to settle.
	_, err = svc.RecordPayment(context.Background(), loan.ID)
	assert.Error(t, err)
}

func TestRecordPaymentInsufficientFundsChangesNothing(t *testing.T) {
	stores, uow := newTestStores()
	borrower := seedProfile(t, stores, domain.OwnerKindBorrower, 750)
	investor := seedProfile(t, stores, domain.OwnerKindInvestor, 0)
	pool := seedPool(t, stores, domain.Pool{
		InvestorID:     investor.ID,
		Name:           "repay",
		TargetAmount:   decimal.NewFromInt(10000),
		RaisedAmount:   decimal.NewFromInt(10000),
		ExpectedReturn: decimal.NewFromInt(2),
		CreatedAt:      time.Now().UTC(),
	})
	loan := poolFundedLoan(t, stores, uow, borrower, investor, pool)
	svc := NewLoanService(stores, uow)

	// Drain the borrower wallet below one installment.
	ledger := NewLedgerService(stores, uow)
	_, err := ledger.Withdraw(context.Background(), models.WithdrawRequest{
		OwnerKind: "borrower",
		OwnerID:   borrower.ID,
		Amount:    decimal.NewFromInt(1100),
		Currency:  "BRL",
		TargetKey: "pix:drain",
	})
	require.NoError(t, err)

	resp, err := svc.RecordPayment(context.Background(), loan.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, commons.ErrInsufficientFunds))
	assert.False(t, resp.Success)

	assert.Equal(t, "100", walletBalance(t, stores, borrower.Ref()).String())
	installments, err := stores.Installments.ListByLoan(context.Background(), loan.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.InstallmentStatusPending, installments[0].Status)
}

func TestRecordPaymentUnknownLoan(t *testing.T) {
	stores, uow := newTestStores()
	svc := NewLoanService(stores, uow)

	resp, err := svc.RecordPayment(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, commons.ErrRecordNotFound))
	assert.False(t, resp.Success)
}

func TestMarkOverdueFlipsOnlyPastDueInstallments(t *testing.T) {
	stores, uow := newTestStores()
	borrower := seedProfile(t, stores, domain.OwnerKindBorrower, 750)
	schedule := NewScheduleService()

	loan, err := stores.Loans.Create(context.Background(), domain.Loan{
		ID:              "loan-overdue",
		CreditRequestID: "req-overdue",
		BorrowerID:      borrower.ID,
		InvestorID:      &borrower.ID,
		Principal:       decimal.NewFromInt(1200),
		InterestRate:    decimal.Zero,
		TermMonths:      2,
		Status:          domain.LoanStatusActive,
		DisbursedAt:     time.Now().UTC().Add(-35 * 24 * time.Hour),
		UpdatedAt:       time.Now().UTC(),
	})
	require.NoError(t, err)

	installments := schedule.Build(loan.ID, loan.Principal, loan.InterestRate, loan.TermMonths, loan.DisbursedAt)
	require.NoError(t, stores.Installments.CreateBatch(context.Background(), installments))

	svc := NewLoanService(stores, uow)
	changed, err := svc.MarkOverdue(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), changed)

	after, err := stores.Installments.ListByLoan(context.Background(), loan.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.InstallmentStatusOverdue, after[0].Status)
	assert.Equal(t, domain.InstallmentStatusPending, after[1].Status)

	// Overdue installments still settle first on the next payment.
	next, err := stores.Installments.NextPending(context.Background(), loan.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, next.Number)
}

func TestListByBorrowerIncludesSchedules(t *testing.T) {
	stores, uow := newTestStores()
	borrower := seedProfile(t, stores, domain.OwnerKindBorrower, 750)
	investor := seedProfile(t, stores, domain.OwnerKindInvestor, 0)
	pool := seedPool(t, stores, domain.Pool{
		InvestorID:     investor.ID,
		Name:           "repay",
		TargetAmount:   decimal.NewFromInt(10000),
		RaisedAmount:   decimal.NewFromInt(10000),
		ExpectedReturn: decimal.NewFromInt(2),
		CreatedAt:      time.Now().UTC(),
	})
	poolFundedLoan(t, stores, uow, borrower, investor, pool)

	svc := NewLoanService(stores, uow)
	resp, err := svc.ListByBorrower(context.Background(), borrower.ID)
	require.NoError(t, err)
	require.Len(t, *resp.Data, 1)
	assert.Len(t, (*resp.Data)[0].Installments, 2)
}
