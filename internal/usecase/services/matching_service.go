package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/thiagomes07/inovacamp/internal/adapter/http/models"
	"github.com/thiagomes07/inovacamp/internal/adapter/repository/repo_interfaces"
	"github.com/thiagomes07/inovacamp/internal/commons"
	"github.com/thiagomes07/inovacamp/internal/domain"
	"github.com/thiagomes07/inovacamp/internal/logger"
)

type MatchingService struct {
	stores          repo_interfaces.Stores
	uow             repo_interfaces.UnitOfWork
	schedule        *ScheduleService
	minCreditAmount decimal.Decimal
}

func NewMatchingService(
	stores repo_interfaces.Stores,
	uow repo_interfaces.UnitOfWork,
	schedule *ScheduleService,
	minCreditAmount decimal.Decimal,
) *MatchingService {
	return &MatchingService{
		stores:          stores,
		uow:             uow,
		schedule:        schedule,
		minCreditAmount: minCreditAmount,
	}
}

// poolEligible is the matching predicate. All four conditions must hold; the
// availability figure is re-checked inside the allocation transaction before
// any money moves.
func poolEligible(pool domain.Pool, score int, collateral domain.CollateralType, termMonths int, amount decimal.Decimal, available decimal.Decimal) bool {
	if score < pool.MinScore {
		return false
	}
	if pool.RequiresCollateral && (collateral == "" || collateral == domain.CollateralNone) {
		return false
	}
	if termMonths > pool.MaxTermMonths {
		return false
	}
	return available.GreaterThanOrEqual(amount)
}

func effectiveRate(requested decimal.Decimal, poolMinimum decimal.Decimal) decimal.Decimal {
	if poolMinimum.GreaterThan(requested) {
		return poolMinimum
	}
	return requested
}

func (s *MatchingService) CreateCreditRequest(ctx context.Context, req models.CreateCreditRequest) (commons.Response[models.CreditRequestResponse], error) {
	logger.Info("matching service create credit request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		return commons.ErrorResponse[models.CreditRequestResponse]("validation failed", err.Error()), err
	}
	if req.Amount.LessThan(s.minCreditAmount) {
		err := fmt.Errorf("amount must be at least %s", s.minCreditAmount.StringFixed(2))
		return commons.ErrorResponse[models.CreditRequestResponse]("validation failed", err.Error()), err
	}

	borrower, err := s.stores.Profiles.GetByID(ctx, strings.TrimSpace(req.BorrowerID))
	if err != nil {
		return commons.ErrorResponse[models.CreditRequestResponse]("failed to create credit request", "Borrower not found"), err
	}

	collateral := domain.CollateralType(strings.ToLower(strings.TrimSpace(req.CollateralType)))
	if collateral == "" {
		collateral = domain.CollateralNone
	}
	mode := domain.ApprovalMode(strings.ToLower(strings.TrimSpace(req.ApprovalMode)))
	if mode == "" {
		mode = domain.ApprovalModeAutomatic
	}

	now := time.Now().UTC()
	request := domain.CreditRequest{
		ID:                    uuid.NewString(),
		BorrowerID:            borrower.ID,
		AmountRequested:       req.Amount,
		TermMonths:            req.TermMonths,
		InterestRate:          req.InterestRate,
		Status:                domain.CreditRequestStatusPending,
		CollateralType:        collateral,
		CollateralDescription: strings.TrimSpace(req.CollateralDescription),
		RequestedAt:           now,
		UpdatedAt:             now,
	}

	// The request commits before matching; a failed allocation attempt leaves
	// it pending rather than losing it.
	if request, err = s.stores.CreditRequests.Create(ctx, request); err != nil {
		logger.Error("matching service create credit request failed", err, logger.Fields{
			"borrowerId": borrower.ID,
		})
		return commons.ErrorResponse[models.CreditRequestResponse]("failed to create credit request", "Unable to create credit request right now"), err
	}

	var match *models.MatchResponse
	if mode != domain.ApprovalModeManual {
		match, err = s.matchAndAllocate(ctx, borrower, &request)
		switch {
		case errors.Is(err, commons.ErrNoEligiblePool):
			if mode == domain.ApprovalModeAutomatic {
				if err := s.stores.CreditRequests.UpdateStatus(ctx, request.ID, domain.CreditRequestStatusRejected, nil); err != nil {
					return commons.ErrorResponse[models.CreditRequestResponse]("failed to create credit request", "Unable to update credit request right now"), err
				}
				request.Status = domain.CreditRequestStatusRejected
			}
		case err != nil:
			logger.Error("matching service allocation failed", err, logger.Fields{
				"creditRequestId": request.ID,
			})
			return commons.ErrorResponse[models.CreditRequestResponse]("failed to allocate credit request", "Request recorded; allocation could not complete"), err
		}
	}

	logger.Info("matching service create credit request success", logger.Fields{
		"creditRequestId": request.ID,
		"status":          request.Status,
		"matched":         match != nil,
	})

	return commons.SuccessResponse("credit request processed successfully", toCreditRequestResponse(request, match)), nil
}

// matchAndAllocate walks the active pools in priority order and funds the
// request from the first one that passes the predicate both outside and
// inside the transaction.
func (s *MatchingService) matchAndAllocate(ctx context.Context, borrower domain.Profile, request *domain.CreditRequest) (*models.MatchResponse, error) {
	pools, err := s.stores.Pools.ListActiveOrdered(ctx)
	if err != nil {
		return nil, err
	}

	for _, pool := range pools {
		committed, err := s.stores.Allocations.SumActiveByPool(ctx, pool.ID)
		if err != nil {
			return nil, err
		}
		available := pool.RaisedAmount.Sub(committed)
		if !poolEligible(pool, borrower.CalculatedScore, request.CollateralType, request.TermMonths, request.AmountRequested, available) {
			continue
		}

		match, err := s.allocateFromPool(ctx, borrower, request, pool.ID)
		if errors.Is(err, commons.ErrNoEligiblePool) {
			// Lost the availability race to a concurrent allocation; the
			// next pool may still qualify.
			continue
		}
		if err != nil {
			return nil, err
		}
		return match, nil
	}

	return nil, commons.ErrNoEligiblePool
}

func (s *MatchingService) allocateFromPool(ctx context.Context, borrower domain.Profile, request *domain.CreditRequest, poolID string) (*models.MatchResponse, error) {
	var match models.MatchResponse

	err := s.uow.RunAtomic(ctx, func(ctx context.Context, st repo_interfaces.Stores) error {
		pool, err := st.Pools.GetByID(ctx, poolID)
		if err != nil {
			return err
		}
		committed, err := st.Allocations.SumActiveByPool(ctx, pool.ID)
		if err != nil {
			return err
		}
		available := pool.RaisedAmount.Sub(committed)
		if pool.Status != domain.PoolStatusActive || available.LessThan(request.AmountRequested) {
			return commons.ErrNoEligiblePool
		}

		now := time.Now().UTC()
		rate := effectiveRate(request.InterestRate, pool.MinInterestRate)
		loanID := uuid.NewString()

		if _, err := st.Allocations.Create(ctx, domain.PoolAllocation{
			ID:              uuid.NewString(),
			PoolID:          pool.ID,
			CreditRequestID: request.ID,
			AllocatedAmount: request.AmountRequested,
			Status:          domain.LoanStatusActive,
			AllocatedAt:     now,
		}); err != nil {
			return err
		}

		pID := pool.ID
		if _, err := st.Loans.Create(ctx, domain.Loan{
			ID:              loanID,
			CreditRequestID: request.ID,
			BorrowerID:      borrower.ID,
			PoolID:          &pID,
			Principal:       request.AmountRequested,
			InterestRate:    rate,
			TermMonths:      request.TermMonths,
			Status:          domain.LoanStatusActive,
			DisbursedAt:     now,
			UpdatedAt:       now,
		}); err != nil {
			return err
		}

		if err := st.CreditRequests.UpdateStatus(ctx, request.ID, domain.CreditRequestStatusApproved, &now); err != nil {
			return err
		}

		if err := s.disburse(ctx, st, domain.InvestorRef(pool.InvestorID), borrower.Ref(), request.AmountRequested, "loan disbursement from pool "+pool.Name, now); err != nil {
			return err
		}

		installments := s.schedule.Build(loanID, request.AmountRequested, rate, request.TermMonths, now)
		if err := st.Installments.CreateBatch(ctx, installments); err != nil {
			return err
		}

		request.Status = domain.CreditRequestStatusApproved
		request.ApprovedAt = &now
		match = models.MatchResponse{
			PoolID:            pool.ID,
			LoanID:            loanID,
			EffectiveRate:     rate.StringFixed(2),
			InstallmentAmount: installments[0].AmountDue.StringFixed(2),
			Installments:      len(installments),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &match, nil
}

// disburse credits the borrower wallet and writes the investment transaction.
// Pool capital was already collected at contribution time, so no wallet is
// debited here.
func (s *MatchingService) disburse(ctx context.Context, st repo_interfaces.Stores, from domain.PartyRef, to domain.PartyRef, amount decimal.Decimal, description string, now time.Time) error {
	wallet, err := getOrCreateWallet(ctx, st.Wallets, to, string(domain.DefaultCurrency))
	if err != nil {
		return err
	}
	if err := st.Wallets.Credit(ctx, wallet.ID, amount); err != nil {
		return err
	}

	_, err = st.Transactions.Create(ctx, domain.Transaction{
		ID:          uuid.NewString(),
		Sender:      from,
		Receiver:    to,
		WalletID:    wallet.ID,
		Amount:      amount,
		Currency:    string(domain.DefaultCurrency),
		Type:        domain.TransactionInvestment,
		Status:      domain.TransactionStatusCompleted,
		Description: description,
		CreatedAt:   now,
	})
	return err
}

func (s *MatchingService) InvestDirect(ctx context.Context, req models.DirectInvestRequest) (commons.Response[models.CreditRequestResponse], error) {
	logger.Info("matching service direct invest request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		return commons.ErrorResponse[models.CreditRequestResponse]("validation failed", err.Error()), err
	}

	investor, err := s.stores.Profiles.GetByID(ctx, strings.TrimSpace(req.InvestorID))
	if err != nil {
		return commons.ErrorResponse[models.CreditRequestResponse]("failed to invest", "Investor not found"), err
	}
	if investor.Kind != domain.OwnerKindInvestor {
		err := errors.New("only investors can fund credit requests")
		return commons.ErrorResponse[models.CreditRequestResponse]("validation failed", err.Error()), err
	}

	request, err := s.stores.CreditRequests.GetByID(ctx, strings.TrimSpace(req.CreditRequestID))
	if err != nil {
		return commons.ErrorResponse[models.CreditRequestResponse]("failed to invest", "Credit request not found"), err
	}
	if request.Status != domain.CreditRequestStatusPending {
		err := fmt.Errorf("credit request is %s, not pending", request.Status)
		return commons.ErrorResponse[models.CreditRequestResponse]("failed to invest", err.Error()), err
	}

	borrower, err := s.stores.Profiles.GetByID(ctx, request.BorrowerID)
	if err != nil {
		return commons.ErrorResponse[models.CreditRequestResponse]("failed to invest", "Borrower not found"), err
	}

	var match models.MatchResponse
	err = s.uow.RunAtomic(ctx, func(ctx context.Context, st repo_interfaces.Stores) error {
		investorWallet, err := getOrCreateWallet(ctx, st.Wallets, investor.Ref(), string(domain.DefaultCurrency))
		if err != nil {
			return err
		}
		if err := st.Wallets.Debit(ctx, investorWallet.ID, request.AmountRequested); err != nil {
			return err
		}

		now := time.Now().UTC()
		loanID := uuid.NewString()
		investorID := investor.ID

		if _, err := st.Loans.Create(ctx, domain.Loan{
			ID:              loanID,
			CreditRequestID: request.ID,
			BorrowerID:      borrower.ID,
			InvestorID:      &investorID,
			Principal:       request.AmountRequested,
			InterestRate:    request.InterestRate,
			TermMonths:      request.TermMonths,
			Status:          domain.LoanStatusActive,
			DisbursedAt:     now,
			UpdatedAt:       now,
		}); err != nil {
			return err
		}

		if err := st.CreditRequests.UpdateStatus(ctx, request.ID, domain.CreditRequestStatusApproved, &now); err != nil {
			return err
		}

		if err := s.disburse(ctx, st, investor.Ref(), borrower.Ref(), request.AmountRequested, "direct loan disbursement", now); err != nil {
			return err
		}

		installments := s.schedule.Build(loanID, request.AmountRequested, request.InterestRate, request.TermMonths, now)
		if err := st.Installments.CreateBatch(ctx, installments); err != nil {
			return err
		}

		request.Status = domain.CreditRequestStatusApproved
		request.ApprovedAt = &now
		match = models.MatchResponse{
			InvestorID:        investor.ID,
			LoanID:            loanID,
			EffectiveRate:     request.InterestRate.StringFixed(2),
			InstallmentAmount: installments[0].AmountDue.StringFixed(2),
			Installments:      len(installments),
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, commons.ErrInsufficientFunds) {
			return commons.ErrorResponse[models.CreditRequestResponse]("failed to invest", "Insufficient funds"), err
		}
		logger.Error("matching service direct invest failed", err, logger.Fields{
			"creditRequestId": request.ID,
			"investorId":      investor.ID,
		})
		return commons.ErrorResponse[models.CreditRequestResponse]("failed to invest", "Unable to fund credit request right now"), err
	}

	return commons.SuccessResponse("credit request funded successfully", toCreditRequestResponse(request, &match)), nil
}

func (s *MatchingService) GetCreditRequest(ctx context.Context, id string) (commons.Response[models.CreditRequestResponse], error) {
	request, err := s.stores.CreditRequests.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return commons.ErrorResponse[models.CreditRequestResponse]("failed to get credit request", "Credit request not found"), err
	}
	return commons.SuccessResponse("credit request retrieved successfully", toCreditRequestResponse(request, nil)), nil
}

func (s *MatchingService) ListByBorrower(ctx context.Context, borrowerID string) (commons.Response[[]models.CreditRequestResponse], error) {
	requests, err := s.stores.CreditRequests.ListByBorrower(ctx, strings.TrimSpace(borrowerID))
	if err != nil {
		return commons.ErrorResponse[[]models.CreditRequestResponse]("failed to list credit requests", "Unable to list credit requests right now"), err
	}

	responses := make([]models.CreditRequestResponse, 0, len(requests))
	for _, request := range requests {
		responses = append(responses, toCreditRequestResponse(request, nil))
	}
	return commons.SuccessResponse("credit requests retrieved successfully", responses), nil
}

func (s *MatchingService) CompatiblePools(ctx context.Context, borrowerID string, amount decimal.Decimal, termMonths int) (commons.Response[[]models.CompatiblePoolResponse], error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		err := errors.New("amount must be greater than zero")
		return commons.ErrorResponse[[]models.CompatiblePoolResponse]("validation failed", err.Error()), err
	}
	if termMonths <= 0 {
		err := errors.New("termMonths must be greater than zero")
		return commons.ErrorResponse[[]models.CompatiblePoolResponse]("validation failed", err.Error()), err
	}

	borrower, err := s.stores.Profiles.GetByID(ctx, strings.TrimSpace(borrowerID))
	if err != nil {
		return commons.ErrorResponse[[]models.CompatiblePoolResponse]("failed to list compatible pools", "Borrower not found"), err
	}

	pools, err := s.stores.Pools.ListActiveOrdered(ctx)
	if err != nil {
		return commons.ErrorResponse[[]models.CompatiblePoolResponse]("failed to list compatible pools", "Unable to list pools right now"), err
	}

	responses := make([]models.CompatiblePoolResponse, 0)
	for _, pool := range pools {
		committed, err := s.stores.Allocations.SumActiveByPool(ctx, pool.ID)
		if err != nil {
			return commons.ErrorResponse[[]models.CompatiblePoolResponse]("failed to list compatible pools", "Unable to compute availability right now"), err
		}
		available := pool.RaisedAmount.Sub(committed)
		// Collateral is unknown for an exploratory query; pools requiring it
		// are still listed so the borrower knows the option exists.
		if borrower.CalculatedScore < pool.MinScore || termMonths > pool.MaxTermMonths || available.LessThan(amount) {
			continue
		}
		responses = append(responses, models.CompatiblePoolResponse{
			PoolID:          pool.ID,
			Name:            pool.Name,
			ExpectedReturn:  pool.ExpectedReturn.StringFixed(2),
			MinScore:        pool.MinScore,
			MinInterestRate: pool.MinInterestRate.StringFixed(2),
			MaxTermMonths:   pool.MaxTermMonths,
			AvailableAmount: available.StringFixed(2),
		})
	}
	return commons.SuccessResponse("compatible pools retrieved successfully", responses), nil
}
