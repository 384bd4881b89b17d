package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/thiagomes07/inovacamp/internal/adapter/http/models"
	"github.com/thiagomes07/inovacamp/internal/adapter/repository/repo_interfaces"
	"github.com/thiagomes07/inovacamp/internal/commons"
	"github.com/thiagomes07/inovacamp/internal/domain"
	"github.com/thiagomes07/inovacamp/internal/logger"
)

type LoanService struct {
	stores repo_interfaces.Stores
	uow    repo_interfaces.UnitOfWork
}

func NewLoanService(stores repo_interfaces.Stores, uow repo_interfaces.UnitOfWork) *LoanService {
	return &LoanService{stores: stores, uow: uow}
}

// RecordPayment settles the earliest unpaid installment of a loan: borrower
// wallet debited, funding-source wallet credited, installment marked paid.
// Settling the last installment closes the loan and releases the pool
// allocation.
func (s *LoanService) RecordPayment(ctx context.Context, loanID string) (commons.Response[models.RecordPaymentResponse], error) {
	loanID = strings.TrimSpace(loanID)
	logger.Info("loan service record payment", logger.Fields{
		"loanId": loanID,
	})

	var response models.RecordPaymentResponse
	err := s.uow.RunAtomic(ctx, func(ctx context.Context, st repo_interfaces.Stores) error {
		loan, err := st.Loans.GetByID(ctx, loanID)
		if err != nil {
			return err
		}
		if loan.Status != domain.LoanStatusActive {
			return fmt.Errorf("loan is %s, not active", loan.Status)
		}

		installment, err := st.Installments.NextPending(ctx, loan.ID)
		if err != nil {
			if errors.Is(err, commons.ErrRecordNotFound) {
				return errors.New("loan has no outstanding installments")
			}
			return err
		}

		borrowerWallet, err := getOrCreateWallet(ctx, st.Wallets, domain.BorrowerRef(loan.BorrowerID), string(domain.DefaultCurrency))
		if err != nil {
			return err
		}
		if err := st.Wallets.Debit(ctx, borrowerWallet.ID, installment.AmountDue); err != nil {
			return err
		}

		fundingOwner, err := loan.FundingOwner(func(poolID string) (string, error) {
			pool, err := st.Pools.GetByID(ctx, poolID)
			if err != nil {
				return "", err
			}
			return pool.InvestorID, nil
		})
		if err != nil {
			return err
		}
		fundingWallet, err := getOrCreateWallet(ctx, st.Wallets, fundingOwner, string(domain.DefaultCurrency))
		if err != nil {
			return err
		}
		if err := st.Wallets.Credit(ctx, fundingWallet.ID, installment.AmountDue); err != nil {
			return err
		}

		now := time.Now().UTC()
		transaction := domain.Transaction{
			ID:          uuid.NewString(),
			Sender:      domain.BorrowerRef(loan.BorrowerID),
			Receiver:    fundingOwner,
			WalletID:    borrowerWallet.ID,
			Amount:      installment.AmountDue,
			Currency:    string(domain.DefaultCurrency),
			Type:        domain.TransactionLoanPayment,
			Status:      domain.TransactionStatusCompleted,
			Description: fmt.Sprintf("installment %d of loan %s", installment.Number, loan.ID),
			CreatedAt:   now,
		}
		if _, err := st.Transactions.Create(ctx, transaction); err != nil {
			return err
		}

		if err := st.Installments.MarkPaid(ctx, installment.ID, installment.AmountDue, now); err != nil {
			return err
		}

		loanStatus := loan.Status
		if _, err := st.Installments.NextPending(ctx, loan.ID); errors.Is(err, commons.ErrRecordNotFound) {
			loanStatus = domain.LoanStatusPaid
			if err := st.Loans.UpdateStatus(ctx, loan.ID, domain.LoanStatusPaid); err != nil {
				return err
			}
			if loan.PoolID != nil {
				if err := st.Allocations.UpdateStatusByRequest(ctx, loan.CreditRequestID, domain.LoanStatusPaid); err != nil {
					return err
				}
			}
			if err := st.CreditRequests.UpdateStatus(ctx, loan.CreditRequestID, domain.CreditRequestStatusCompleted, nil); err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		response = models.RecordPaymentResponse{
			LoanID:            loan.ID,
			InstallmentNumber: installment.Number,
			AmountPaid:        installment.AmountDue.StringFixed(2),
			LoanStatus:        string(loanStatus),
			TransactionID:     transaction.ID,
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, commons.ErrInsufficientFunds) {
			return commons.ErrorResponse[models.RecordPaymentResponse]("payment failed", "Insufficient funds"), err
		}
		if errors.Is(err, commons.ErrRecordNotFound) {
			return commons.ErrorResponse[models.RecordPaymentResponse]("payment failed", "Loan not found"), err
		}
		logger.Error("loan service record payment failed", err, logger.Fields{
			"loanId": loanID,
		})
		return commons.ErrorResponse[models.RecordPaymentResponse]("payment failed", err.Error()), err
	}

	logger.Info("loan service record payment success", logger.Fields{
		"loanId":     response.LoanID,
		"number":     response.InstallmentNumber,
		"loanStatus": response.LoanStatus,
	})

	return commons.SuccessResponse("payment recorded successfully", response), nil
}

func (s *LoanService) ListByBorrower(ctx context.Context, borrowerID string) (commons.Response[[]models.LoanResponse], error) {
	loans, err := s.stores.Loans.ListByBorrower(ctx, strings.TrimSpace(borrowerID))
	if err != nil {
		return commons.ErrorResponse[[]models.LoanResponse]("failed to list loans", "Unable to list loans right now"), err
	}

	responses := make([]models.LoanResponse, 0, len(loans))
	for _, loan := range loans {
		installments, err := s.stores.Installments.ListByLoan(ctx, loan.ID)
		if err != nil {
			return commons.ErrorResponse[[]models.LoanResponse]("failed to list loans", "Unable to list installments right now"), err
		}
		responses = append(responses, toLoanResponse(loan, installments))
	}
	return commons.SuccessResponse("loans retrieved successfully", responses), nil
}

func (s *LoanService) MarkOverdue(ctx context.Context) (int64, error) {
	changed, err := s.stores.Installments.MarkOverdue(ctx, time.Now().UTC())
	if err != nil {
		logger.Error("loan service overdue sweep failed", err, nil)
		return 0, err
	}
	if changed > 0 {
		logger.Info("loan service overdue sweep", logger.Fields{
			"installments": changed,
		})
	}
	return changed, nil
}
