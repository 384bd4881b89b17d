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

const (
	defaultMinScore      = 700
	defaultMaxTermMonths = 24
)

type PoolService struct {
	stores        repo_interfaces.Stores
	uow           repo_interfaces.UnitOfWork
	minPoolTarget decimal.Decimal
}

func NewPoolService(stores repo_interfaces.Stores, uow repo_interfaces.UnitOfWork, minPoolTarget decimal.Decimal) *PoolService {
	return &PoolService{stores: stores, uow: uow, minPoolTarget: minPoolTarget}
}

func (s *PoolService) CreatePool(ctx context.Context, req models.CreatePoolRequest) (commons.Response[models.PoolResponse], error) {
	logger.Info("pool service create pool request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		return commons.ErrorResponse[models.PoolResponse]("validation failed", err.Error()), err
	}
	if req.TargetAmount.LessThan(s.minPoolTarget) {
		err := fmt.Errorf("targetAmount must be at least %s", s.minPoolTarget.StringFixed(2))
		return commons.ErrorResponse[models.PoolResponse]("validation failed", err.Error()), err
	}

	investorID := strings.TrimSpace(req.InvestorID)
	investor, err := s.stores.Profiles.GetByID(ctx, investorID)
	if err != nil {
		return commons.ErrorResponse[models.PoolResponse]("failed to create pool", "Investor not found"), err
	}
	if investor.Kind != domain.OwnerKindInvestor {
		err := errors.New("pool owner must be an investor")
		return commons.ErrorResponse[models.PoolResponse]("validation failed", err.Error()), err
	}

	minScore := defaultMinScore
	if req.MinScore != nil {
		minScore = *req.MinScore
	}
	maxTermMonths := defaultMaxTermMonths
	if req.MaxTermMonths != nil {
		maxTermMonths = *req.MaxTermMonths
	}

	now := time.Now().UTC()
	pool := domain.Pool{
		ID:                 uuid.NewString(),
		InvestorID:         investor.ID,
		Name:               strings.TrimSpace(req.Name),
		TargetAmount:       req.TargetAmount,
		RaisedAmount:       req.TargetAmount,
		RiskProfile:        domain.RiskProfile(strings.ToLower(strings.TrimSpace(req.RiskProfile))),
		ExpectedReturn:     req.ExpectedReturn,
		MinScore:           minScore,
		RequiresCollateral: req.RequiresCollateral,
		MinInterestRate:    req.MinInterestRate,
		MaxTermMonths:      maxTermMonths,
		Status:             domain.PoolStatusActive,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	// Creation commits the full target from the owner's wallet, so the pool
	// is lendable immediately.
	err = s.uow.RunAtomic(ctx, func(ctx context.Context, st repo_interfaces.Stores) error {
		wallet, err := getOrCreateWallet(ctx, st.Wallets, investor.Ref(), string(domain.DefaultCurrency))
		if err != nil {
			return err
		}
		if err := st.Wallets.Debit(ctx, wallet.ID, pool.TargetAmount); err != nil {
			return err
		}
		if _, err := st.Pools.Create(ctx, pool); err != nil {
			return err
		}

		_, err = st.Transactions.Create(ctx, domain.Transaction{
			ID:          uuid.NewString(),
			Sender:      investor.Ref(),
			Receiver:    investor.Ref(),
			WalletID:    wallet.ID,
			Amount:      pool.TargetAmount,
			Currency:    string(domain.DefaultCurrency),
			Type:        domain.TransactionPoolContribution,
			Status:      domain.TransactionStatusCompleted,
			Description: "contribution to pool " + pool.Name,
			CreatedAt:   now,
		})
		return err
	})
	if err != nil {
		if errors.Is(err, commons.ErrInsufficientFunds) {
			return commons.ErrorResponse[models.PoolResponse]("failed to create pool", "Insufficient funds"), err
		}
		logger.Error("pool service create pool failed", err, logger.Fields{
			"investorId": investor.ID,
		})
		return commons.ErrorResponse[models.PoolResponse]("failed to create pool", "Unable to create pool right now"), err
	}

	logger.Info("pool service create pool success", logger.Fields{
		"poolId":     pool.ID,
		"investorId": investor.ID,
	})

	return commons.SuccessResponse("pool created successfully", toPoolResponse(pool, pool.RaisedAmount)), nil
}

func (s *PoolService) GetPool(ctx context.Context, id string) (commons.Response[models.PoolResponse], error) {
	pool, err := s.stores.Pools.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return commons.ErrorResponse[models.PoolResponse]("failed to get pool", "Pool not found"), err
	}

	available, err := s.availableAmount(ctx, pool)
	if err != nil {
		return commons.ErrorResponse[models.PoolResponse]("failed to get pool", "Unable to compute availability right now"), err
	}

	return commons.SuccessResponse("pool retrieved successfully", toPoolResponse(pool, available)), nil
}

func (s *PoolService) ListPools(ctx context.Context, status string) (commons.Response[[]models.PoolResponse], error) {
	status = strings.ToLower(strings.TrimSpace(status))
	switch status {
	case "", "funding", "active", "closed":
	default:
		err := errors.New("status must be one of funding, active, closed")
		return commons.ErrorResponse[[]models.PoolResponse]("validation failed", err.Error()), err
	}

	pools, err := s.stores.Pools.List(ctx, domain.PoolStatus(status))
	if err != nil {
		return commons.ErrorResponse[[]models.PoolResponse]("failed to list pools", "Unable to list pools right now"), err
	}

	responses := make([]models.PoolResponse, 0, len(pools))
	for _, pool := range pools {
		available, err := s.availableAmount(ctx, pool)
		if err != nil {
			return commons.ErrorResponse[[]models.PoolResponse]("failed to list pools", "Unable to compute availability right now"), err
		}
		responses = append(responses, toPoolResponse(pool, available))
	}
	return commons.SuccessResponse("pools retrieved successfully", responses), nil
}

func (s *PoolService) UpdatePool(ctx context.Context, id string, req models.UpdatePoolRequest) (commons.Response[models.PoolResponse], error) {
	if err := req.Validate(); err != nil {
		return commons.ErrorResponse[models.PoolResponse]("validation failed", err.Error()), err
	}

	pool, err := s.stores.Pools.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return commons.ErrorResponse[models.PoolResponse]("failed to update pool", "Pool not found"), err
	}

	if req.Name != nil {
		pool.Name = strings.TrimSpace(*req.Name)
	}
	if req.ExpectedReturn != nil {
		pool.ExpectedReturn = *req.ExpectedReturn
	}
	if req.MinScore != nil {
		pool.MinScore = *req.MinScore
	}
	if req.RequiresCollateral != nil {
		pool.RequiresCollateral = *req.RequiresCollateral
	}
	if req.MinInterestRate != nil {
		pool.MinInterestRate = *req.MinInterestRate
	}
	if req.MaxTermMonths != nil {
		pool.MaxTermMonths = *req.MaxTermMonths
	}

	updated, err := s.stores.Pools.Update(ctx, pool)
	if err != nil {
		logger.Error("pool service update pool failed", err, logger.Fields{
			"poolId": pool.ID,
		})
		return commons.ErrorResponse[models.PoolResponse]("failed to update pool", "Unable to update pool right now"), err
	}

	available, err := s.availableAmount(ctx, updated)
	if err != nil {
		return commons.ErrorResponse[models.PoolResponse]("failed to update pool", "Unable to compute availability right now"), err
	}
	return commons.SuccessResponse("pool updated successfully", toPoolResponse(updated, available)), nil
}

func (s *PoolService) UpdatePoolStatus(ctx context.Context, id string, req models.UpdatePoolStatusRequest) (commons.Response[models.PoolResponse], error) {
	if err := req.Validate(); err != nil {
		return commons.ErrorResponse[models.PoolResponse]("validation failed", err.Error()), err
	}

	id = strings.TrimSpace(id)
	status := domain.PoolStatus(strings.ToLower(strings.TrimSpace(req.Status)))
	if err := s.stores.Pools.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, commons.ErrRecordNotFound) {
			return commons.ErrorResponse[models.PoolResponse]("failed to update pool status", "Pool not found"), err
		}
		return commons.ErrorResponse[models.PoolResponse]("failed to update pool status", "Unable to update pool status right now"), err
	}

	return s.GetPool(ctx, id)
}

func (s *PoolService) IncreaseCapital(ctx context.Context, id string, req models.IncreaseCapitalRequest) (commons.Response[models.PoolResponse], error) {
	if err := req.Validate(); err != nil {
		return commons.ErrorResponse[models.PoolResponse]("validation failed", err.Error()), err
	}

	pool, err := s.stores.Pools.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return commons.ErrorResponse[models.PoolResponse]("failed to increase capital", "Pool not found"), err
	}

	owner := domain.InvestorRef(pool.InvestorID)
	err = s.uow.RunAtomic(ctx, func(ctx context.Context, st repo_interfaces.Stores) error {
		wallet, err := getOrCreateWallet(ctx, st.Wallets, owner, string(domain.DefaultCurrency))
		if err != nil {
			return err
		}
		if err := st.Wallets.Debit(ctx, wallet.ID, req.Amount); err != nil {
			return err
		}
		if pool, err = st.Pools.AddCapital(ctx, pool.ID, req.Amount); err != nil {
			return err
		}

		_, err = st.Transactions.Create(ctx, domain.Transaction{
			ID:          uuid.NewString(),
			Sender:      owner,
			Receiver:    owner,
			WalletID:    wallet.ID,
			Amount:      req.Amount,
			Currency:    string(domain.DefaultCurrency),
			Type:        domain.TransactionPoolContribution,
			Status:      domain.TransactionStatusCompleted,
			Description: "capital increase for pool " + pool.Name,
			CreatedAt:   time.Now().UTC(),
		})
		return err
	})
	if err != nil {
		if errors.Is(err, commons.ErrInsufficientFunds) {
			return commons.ErrorResponse[models.PoolResponse]("failed to increase capital", "Insufficient funds"), err
		}
		logger.Error("pool service increase capital failed", err, logger.Fields{
			"poolId": pool.ID,
		})
		return commons.ErrorResponse[models.PoolResponse]("failed to increase capital", "Unable to increase capital right now"), err
	}

	available, err := s.availableAmount(ctx, pool)
	if err != nil {
		return commons.ErrorResponse[models.PoolResponse]("failed to increase capital", "Unable to compute availability right now"), err
	}
	return commons.SuccessResponse("capital increased successfully", toPoolResponse(pool, available)), nil
}

func (s *PoolService) availableAmount(ctx context.Context, pool domain.Pool) (decimal.Decimal, error) {
	committed, err := s.stores.Allocations.SumActiveByPool(ctx, pool.ID)
	if err != nil {
		return decimal.Zero, err
	}
	return pool.RaisedAmount.Sub(committed), nil
}
