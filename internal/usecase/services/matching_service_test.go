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

func newMatchingService(stores repo_interfaces.Stores, uow repo_interfaces.UnitOfWork) *MatchingService {
	return NewMatchingService(stores, uow, NewScheduleService(), decimal.NewFromInt(100))
}

func TestPoolEligible(t *testing.T) {
	pool := domain.Pool{
		MinScore:           700,
		RequiresCollateral: false,
		MaxTermMonths:      24,
	}
	amount := decimal.NewFromInt(5000)
	available := decimal.NewFromInt(8000)

	assert.True(t, poolEligible(pool, 700, domain.CollateralNone, 24, amount, available))
	assert.False(t, poolEligible(pool, 699, domain.CollateralNone, 24, amount, available), "score below minimum")
	assert.False(t, poolEligible(pool, 800, domain.CollateralNone, 25, amount, available), "term too long")
	assert.False(t, poolEligible(pool, 800, domain.CollateralNone, 24, amount, decimal.NewFromInt(4999)), "not enough capital left")

	pool.RequiresCollateral = true
	assert.False(t, poolEligible(pool, 800, domain.CollateralNone, 24, amount, available), "collateral required")
	assert.True(t, poolEligible(pool, 800, domain.CollateralVehicle, 24, amount, available))
}

func TestEffectiveRate(t *testing.T) {
	assert.Equal(t, "3.5", effectiveRate(decimal.NewFromFloat(2.0), decimal.NewFromFloat(3.5)).String())
	assert.Equal(t, "4", effectiveRate(decimal.NewFromInt(4), decimal.NewFromFloat(3.5)).String())
}

func TestCreateCreditRequestPicksHighestExpectedReturn(t *testing.T) {
	stores, uow := newTestStores()
	borrower := seedProfile(t, stores, domain.OwnerKindBorrower, 750)
	investor := seedProfile(t, stores, domain.OwnerKindInvestor, 0)
	base := time.Now().UTC().Add(-time.Hour)

	seedPool(t, stores, domain.Pool{
		InvestorID:     investor.ID,
		Name:           "steady",
		TargetAmount:   decimal.NewFromInt(10000),
		RaisedAmount:   decimal.NewFromInt(10000),
		ExpectedReturn: decimal.NewFromFloat(1.2),
		CreatedAt:      base,
	})
	best := seedPool(t, stores, domain.Pool{
		InvestorID:     investor.ID,
		Name:           "aggressive",
		TargetAmount:   decimal.NewFromInt(10000),
		RaisedAmount:   decimal.NewFromInt(10000),
		ExpectedReturn: decimal.NewFromFloat(2.4),
		CreatedAt:      base.Add(time.Minute),
	})

	svc := newMatchingService(stores, uow)
	resp, err := svc.CreateCreditRequest(context.Background(), models.CreateCreditRequest{
		BorrowerID:   borrower.ID,
		Amount:       decimal.NewFromInt(5000),
		TermMonths:   12,
		InterestRate: decimal.NewFromInt(2),
	})
	require.NoError(t, err)
	require.True(t, resp.Success)
	require.NotNil(t, resp.Data.Match)
	assert.Equal(t, best.ID, resp.Data.Match.PoolID)
	assert.Equal(t, string(domain.CreditRequestStatusApproved), resp.Data.Status)
	assert.Equal(t, 12, resp.Data.Match.Installments)

	// Disbursement lands in the borrower wallet without touching the investor
	// wallet: the pool already holds the capital.
	assert.Equal(t, "5000", walletBalance(t, stores, borrower.Ref()).String())

	committed, err := stores.Allocations.SumActiveByPool(context.Background(), best.ID)
	require.NoError(t, err)
	assert.Equal(t, "5000", committed.String())

	loans, err := stores.Loans.ListByBorrower(context.Background(), borrower.ID)
	require.NoError(t, err)
	require.Len(t, loans, 1)
	require.NotNil(t, loans[0].PoolID)
	assert.Equal(t, best.ID, *loans[0].PoolID)
}

func TestCreateCreditRequestOlderPoolBreaksReturnTie(t *testing.T) {
	stores, uow := newTestStores()
	borrower := seedProfile(t, stores, domain.OwnerKindBorrower, 750)
	investor := seedProfile(t, stores, domain.OwnerKindInvestor, 0)
	base := time.Now().UTC().Add(-time.Hour)

	older := seedPool(t, stores, domain.Pool{
		InvestorID:     investor.ID,
		Name:           "older",
		TargetAmount:   decimal.NewFromInt(10000),
		RaisedAmount:   decimal.NewFromInt(10000),
		ExpectedReturn: decimal.NewFromFloat(1.8),
		CreatedAt:      base,
	})
	seedPool(t, stores, domain.Pool{
		InvestorID:     investor.ID,
		Name:           "newer",
		TargetAmount:   decimal.NewFromInt(10000),
		RaisedAmount:   decimal.NewFromInt(10000),
		ExpectedReturn: decimal.NewFromFloat(1.8),
		CreatedAt:      base.Add(time.Minute),
	})

	svc := newMatchingService(stores, uow)
	resp, err := svc.CreateCreditRequest(context.Background(), models.CreateCreditRequest{
		BorrowerID:   borrower.ID,
		Amount:       decimal.NewFromInt(1000),
		TermMonths:   6,
		InterestRate: decimal.NewFromInt(2),
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Data.Match)
	assert.Equal(t, older.ID, resp.Data.Match.PoolID)
}

func TestCreateCreditRequestAutomaticRejectsWhenNothingQualifies(t *testing.T) {
	stores, uow := newTestStores()
	borrower := seedProfile(t, stores, domain.OwnerKindBorrower, 500)
	investor := seedProfile(t, stores, domain.OwnerKindInvestor, 0)
	seedPool(t, stores, domain.Pool{
		InvestorID:     investor.ID,
		Name:           "selective",
		TargetAmount:   decimal.NewFromInt(10000),
		RaisedAmount:   decimal.NewFromInt(10000),
		ExpectedReturn: decimal.NewFromInt(2),
		MinScore:       800,
		CreatedAt:      time.Now().UTC(),
	})

	svc := newMatchingService(stores, uow)
	resp, err := svc.CreateCreditRequest(context.Background(), models.CreateCreditRequest{
		BorrowerID:   borrower.ID,
		Amount:       decimal.NewFromInt(1000),
		TermMonths:   6,
		InterestRate: decimal.NewFromInt(2),
	})
	require.NoError(t, err)
	require.True(t, resp.Success)
	assert.Equal(t, string(domain.CreditRequestStatusRejected), resp.Data.Status)
	assert.Nil(t, resp.Data.Match)

	loans, err := stores.Loans.ListByBorrower(context.Background(), borrower.ID)
	require.NoError(t, err)
	assert.Empty(t, loans)

	_, err = stores.Wallets.GetByOwner(context.Background(), borrower.Ref(), "BRL")
	assert.True(t, errors.Is(err, commons.ErrRecordNotFound))
}

func TestCreateCreditRequestManualStaysPending(t *testing.T) {
	stores, uow := newTestStores()
	borrower := seedProfile(t, stores, domain.OwnerKindBorrower, 750)
	investor := seedProfile(t, stores, domain.OwnerKindInvestor, 0)
	seedPool(t, stores, domain.Pool{
		InvestorID:     investor.ID,
		Name:           "open",
		TargetAmount:   decimal.NewFromInt(10000),
		RaisedAmount:   decimal.NewFromInt(10000),
		ExpectedReturn: decimal.NewFromInt(2),
		CreatedAt:      time.Now().UTC(),
	})

	svc := newMatchingService(stores, uow)
	resp, err := svc.CreateCreditRequest(context.Background(), models.CreateCreditRequest{
		BorrowerID:   borrower.ID,
		Amount:       decimal.NewFromInt(1000),
		TermMonths:   6,
		InterestRate: decimal.NewFromInt(2),
		ApprovalMode: "manual",
	})
	require.NoError(t, err)
	assert.Equal(t, string(domain.CreditRequestStatusPending), resp.Data.Status)
	assert.Nil(t, resp.Data.Match)
}

func TestCreateCreditRequestBelowFloor(t *testing.T) {
	stores, uow := newTestStores()
	borrower := seedProfile(t, stores, domain.OwnerKindBorrower, 750)

	svc := newMatchingService(stores, uow)
	resp, err := svc.CreateCreditRequest(context.Background(), models.CreateCreditRequest{
		BorrowerID:   borrower.ID,
		Amount:       decimal.NewFromInt(99),
		TermMonths:   6,
		InterestRate: decimal.NewFromInt(2),
	})
	require.Error(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, "validation failed", resp.Message)

	requests, err := stores.CreditRequests.ListByBorrower(context.Background(), borrower.ID)
	require.NoError(t, err)
	assert.Empty(t, requests)
}

func TestCreateCreditRequestHonorsCollateralRequirement(t *testing.T) {
	stores, uow := newTestStores()
	borrower := seedProfile(t, stores, domain.OwnerKindBorrower, 750)
	investor := seedProfile(t, stores, domain.OwnerKindInvestor, 0)
	seedPool(t, stores, domain.Pool{
		InvestorID:         investor.ID,
		Name:               "secured",
		TargetAmount:       decimal.NewFromInt(10000),
		RaisedAmount:       decimal.NewFromInt(10000),
		ExpectedReturn:     decimal.NewFromInt(2),
		RequiresCollateral: true,
		CreatedAt:          time.Now().UTC(),
	})

	svc := newMatchingService(stores, uow)
	resp, err := svc.CreateCreditRequest(context.Background(), models.CreateCreditRequest{
		BorrowerID:   borrower.ID,
		Amount:       decimal.NewFromInt(1000),
		TermMonths:   6,
		InterestRate: decimal.NewFromInt(2),
	})
	require.NoError(t, err)
	assert.Equal(t, string(domain.CreditRequestStatusRejected), resp.Data.Status)

	resp, err = svc.CreateCreditRequest(context.Background(), models.CreateCreditRequest{
		BorrowerID:     borrower.ID,
		Amount:         decimal.NewFromInt(1000),
		TermMonths:     6,
		InterestRate:   decimal.NewFromInt(2),
		CollateralType: "vehicle",
	})
	require.NoError(t, err)
	assert.Equal(t, string(domain.CreditRequestStatusApproved), resp.Data.Status)
}

func TestCreateCreditRequestAvailabilityShrinksWithAllocations(t *testing.T) {
	stores, uow := newTestStores()
	borrower := seedProfile(t, stores, domain.OwnerKindBorrower, 750)
	investor := seedProfile(t, stores, domain.OwnerKindInvestor, 0)
	seedPool(t, stores, domain.Pool{
		InvestorID:     investor.ID,
		Name:           "small",
		TargetAmount:   decimal.NewFromInt(10000),
		RaisedAmount:   decimal.NewFromInt(10000),
		ExpectedReturn: decimal.NewFromInt(2),
		CreatedAt:      time.Now().UTC(),
	})

	svc := newMatchingService(stores, uow)
	first, err := svc.CreateCreditRequest(context.Background(), models.CreateCreditRequest{
		BorrowerID:   borrower.ID,
		Amount:       decimal.NewFromInt(6000),
		TermMonths:   6,
		InterestRate: decimal.NewFromInt(2),
	})
	require.NoError(t, err)
	assert.Equal(t, string(domain.CreditRequestStatusApproved), first.Data.Status)

	// Only 4000 remains uncommitted, so an equal second request cannot match.
	second, err := svc.CreateCreditRequest(context.Background(), models.CreateCreditRequest{
		BorrowerID:   borrower.ID,
		Amount:       decimal.NewFromInt(6000),
		TermMonths:   6,
		InterestRate: decimal.NewFromInt(2),
	})
	require.NoError(t, err)
	assert.Equal(t, string(domain.CreditRequestStatusRejected), second.Data.Status)
}

func TestCreateCreditRequestRaisesRateToPoolMinimum(t *testing.T) {
	stores, uow := newTestStores()
	borrower := seedProfile(t, stores, domain.OwnerKindBorrower, 750)
	investor := seedProfile(t, stores, domain.OwnerKindInvestor, 0)
	seedPool(t, stores, domain.Pool{
		InvestorID:      investor.ID,
		Name:            "floor",
		TargetAmount:    decimal.NewFromInt(10000),
		RaisedAmount:    decimal.NewFromInt(10000),
		ExpectedReturn:  decimal.NewFromInt(2),
		MinInterestRate: decimal.NewFromFloat(3.5),
		CreatedAt:       time.Now().UTC(),
	})

	svc := newMatchingService(stores, uow)
	resp, err := svc.CreateCreditRequest(context.Background(), models.CreateCreditRequest{
		BorrowerID:   borrower.ID,
		Amount:       decimal.NewFromInt(1000),
		TermMonths:   6,
		InterestRate: decimal.NewFromInt(2),
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Data.Match)
	assert.Equal(t, "3.50", resp.Data.Match.EffectiveRate)

	loans, err := stores.Loans.ListByBorrower(context.Background(), borrower.ID)
	require.NoError(t, err)
	require.Len(t, loans, 1)
	assert.Equal(t, "3.5", loans[0].InterestRate.String())
}

func TestInvestDirectFundsPendingRequest(t *testing.T) {
	stores, uow := newTestStores()
	borrower := seedProfile(t, stores, domain.OwnerKindBorrower, 750)
	investor := seedProfile(t, stores, domain.OwnerKindInvestor, 0)
	seedWallet(t, stores, investor.Ref(), decimal.NewFromInt(8000))

	svc := newMatchingService(stores, uow)
	created, err := svc.CreateCreditRequest(context.Background(), models.CreateCreditRequest{
		BorrowerID:   borrower.ID,
		Amount:       decimal.NewFromInt(5000),
		TermMonths:   12,
		InterestRate: decimal.NewFromInt(2),
		ApprovalMode: "manual",
	})
	require.NoError(t, err)

	resp, err := svc.InvestDirect(context.Background(), models.DirectInvestRequest{
		InvestorID:      investor.ID,
		CreditRequestID: created.Data.ID,
	})
	require.NoError(t, err)
	require.True(t, resp.Success)
	require.NotNil(t, resp.Data.Match)
	assert.Equal(t, investor.ID, resp.Data.Match.InvestorID)
	assert.Empty(t, resp.Data.Match.PoolID)

	assert.Equal(t, "3000", walletBalance(t, stores, investor.Ref()).String())
	assert.Equal(t, "5000", walletBalance(t, stores, borrower.Ref()).String())

	loans, err := stores.Loans.ListByBorrower(context.Background(), borrower.ID)
	require.NoError(t, err)
	require.Len(t, loans, 1)
	require.NotNil(t, loans[0].InvestorID)
	assert.Equal(t, investor.ID, *loans[0].InvestorID)

	installments, err := stores.Installments.ListByLoan(context.Background(), loans[0].ID)
	require.NoError(t, err)
	assert.Len(t, installments, 12)
}

func TestInvestDirectInsufficientFundsKeepsRequestPending(t *testing.T) {
	stores, uow := newTestStores()
	borrower := seedProfile(t, stores, domain.OwnerKindBorrower, 750)
	investor := seedProfile(t, stores, domain.OwnerKindInvestor, 0)
	seedWallet(t, stores, investor.Ref(), decimal.NewFromInt(100))

	svc := newMatchingService(stores, uow)
	created, err := svc.CreateCreditRequest(context.Background(), models.CreateCreditRequest{
		BorrowerID:   borrower.ID,
		Amount:       decimal.NewFromInt(5000),
		TermMonths:   12,
		InterestRate: decimal.NewFromInt(2),
		ApprovalMode: "manual",
	})
	require.NoError(t, err)

	resp, err := svc.InvestDirect(context.Background(), models.DirectInvestRequest{
		InvestorID:      investor.ID,
		CreditRequestID: created.Data.ID,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, commons.ErrInsufficientFunds))
	assert.False(t, resp.Success)

	request, err := stores.CreditRequests.GetByID(context.Background(), created.Data.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.CreditRequestStatusPending, request.Status)

	loans, err := stores.Loans.ListByBorrower(context.Background(), borrower.ID)
	require.NoError(t, err)
	assert.Empty(t, loans)
	assert.Equal(t, "100", walletBalance(t, stores, investor.Ref()).String())
}

func TestInvestDirectRejectsBorrowerAsFunder(t *testing.T) {
	stores, uow := newTestStores()
	borrower := seedProfile(t, stores, domain.OwnerKindBorrower, 750)

	svc := newMatchingService(stores, uow)
	resp, err := svc.InvestDirect(context.Background(), models.DirectInvestRequest{
		InvestorID:      borrower.ID,
		CreditRequestID: "whatever",
	})
	require.Error(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, "validation failed", resp.Message)
}

func TestCompatiblePoolsFiltersByScoreTermAndAvailability(t *testing.T) {
	stores, uow := newTestStores()
	borrower := seedProfile(t, stores, domain.OwnerKindBorrower, 720)
	investor := seedProfile(t, stores, domain.OwnerKindInvestor, 0)
	now := time.Now().UTC()

	open := seedPool(t, stores, domain.Pool{
		InvestorID:     investor.ID,
		Name:           "open",
		TargetAmount:   decimal.NewFromInt(10000),
		RaisedAmount:   decimal.NewFromInt(10000),
		ExpectedReturn: decimal.NewFromInt(2),
		MinScore:       700,
		CreatedAt:      now,
	})
	seedPool(t, stores, domain.Pool{
		InvestorID:     investor.ID,
		Name:           "elite",
		TargetAmount:   decimal.NewFromInt(10000),
		RaisedAmount:   decimal.NewFromInt(10000),
		ExpectedReturn: decimal.NewFromInt(3),
		MinScore:       900,
		CreatedAt:      now,
	})
	seedPool(t, stores, domain.Pool{
		InvestorID:     investor.ID,
		Name:           "short-term",
		TargetAmount:   decimal.NewFromInt(10000),
		RaisedAmount:   decimal.NewFromInt(10000),
		ExpectedReturn: decimal.NewFromInt(2),
		MinScore:       700,
		MaxTermMonths:  6,
		CreatedAt:      now,
	})

	svc := newMatchingService(stores, uow)
	resp, err := svc.CompatiblePools(context.Background(), borrower.ID, decimal.NewFromInt(2000), 12)
	require.NoError(t, err)
	require.True(t, resp.Success)
	require.Len(t, *resp.Data, 1)
	assert.Equal(t, open.ID, (*resp.Data)[0].PoolID)
	assert.Equal(t, "10000.00", (*resp.Data)[0].AvailableAmount)
}
