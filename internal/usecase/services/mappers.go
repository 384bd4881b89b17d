package services

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/thiagomes07/inovacamp/internal/adapter/http/models"
	"github.com/thiagomes07/inovacamp/internal/domain"
)

func toWalletResponse(wallet domain.Wallet) models.WalletResponse {
	return models.WalletResponse{
		ID:        wallet.ID,
		OwnerKind: string(wallet.Owner.Kind),
		OwnerID:   wallet.Owner.ID,
		Currency:  wallet.Currency,
		Balance:   wallet.Balance.StringFixed(2),
		Blocked:   wallet.Blocked.StringFixed(2),
		CreatedAt: wallet.CreatedAt.Format(time.RFC3339),
		UpdatedAt: wallet.UpdatedAt.Format(time.RFC3339),
	}
}

func toTransactionResponse(transaction domain.Transaction) models.TransactionResponse {
	return models.TransactionResponse{
		ID:           transaction.ID,
		SenderKind:   string(transaction.Sender.Kind),
		SenderID:     transaction.Sender.ID,
		ReceiverKind: string(transaction.Receiver.Kind),
		ReceiverID:   transaction.Receiver.ID,
		WalletID:     transaction.WalletID,
		Amount:       transaction.Amount.StringFixed(2),
		Currency:     transaction.Currency,
		Type:         string(transaction.Type),
		Status:       string(transaction.Status),
		Description:  transaction.Description,
		CreatedAt:    transaction.CreatedAt.Format(time.RFC3339),
	}
}

func toPoolResponse(pool domain.Pool, available decimal.Decimal) models.PoolResponse {
	return models.PoolResponse{
		ID:                 pool.ID,
		InvestorID:         pool.InvestorID,
		Name:               pool.Name,
		TargetAmount:       pool.TargetAmount.StringFixed(2),
		RaisedAmount:       pool.RaisedAmount.StringFixed(2),
		AvailableAmount:    available.StringFixed(2),
		RiskProfile:        string(pool.RiskProfile),
		ExpectedReturn:     pool.ExpectedReturn.StringFixed(2),
		MinScore:           pool.MinScore,
		RequiresCollateral: pool.RequiresCollateral,
		MinInterestRate:    pool.MinInterestRate.StringFixed(2),
		MaxTermMonths:      pool.MaxTermMonths,
		Status:             string(pool.Status),
		CreatedAt:          pool.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          pool.UpdatedAt.Format(time.RFC3339),
	}
}

func toCreditRequestResponse(request domain.CreditRequest, match *models.MatchResponse) models.CreditRequestResponse {
	response := models.CreditRequestResponse{
		ID:                    request.ID,
		BorrowerID:            request.BorrowerID,
		Amount:                request.AmountRequested.StringFixed(2),
		TermMonths:            request.TermMonths,
		InterestRate:          request.InterestRate.StringFixed(2),
		Status:                string(request.Status),
		CollateralType:        string(request.CollateralType),
		CollateralDescription: request.CollateralDescription,
		RequestedAt:           request.RequestedAt.Format(time.RFC3339),
		Match:                 match,
	}
	if request.ApprovedAt != nil {
		response.ApprovedAt = request.ApprovedAt.Format(time.RFC3339)
	}
	return response
}

func toInstallmentResponse(installment domain.Installment) models.InstallmentResponse {
	response := models.InstallmentResponse{
		ID:         installment.ID,
		Number:     installment.Number,
		AmountDue:  installment.AmountDue.StringFixed(2),
		AmountPaid: installment.AmountPaid.StringFixed(2),
		DueDate:    installment.DueDate.Format(time.RFC3339),
		Status:     string(installment.Status),
	}
	if installment.PaidAt != nil {
		response.PaidAt = installment.PaidAt.Format(time.RFC3339)
	}
	return response
}

func toLoanResponse(loan domain.Loan, installments []domain.Installment) models.LoanResponse {
	response := models.LoanResponse{
		ID:              loan.ID,
		CreditRequestID: loan.CreditRequestID,
		BorrowerID:      loan.BorrowerID,
		Principal:       loan.Principal.StringFixed(2),
		InterestRate:    loan.InterestRate.StringFixed(2),
		TermMonths:      loan.TermMonths,
		Status:          string(loan.Status),
		DisbursedAt:     loan.DisbursedAt.Format(time.RFC3339),
	}
	if loan.InvestorID != nil {
		response.InvestorID = *loan.InvestorID
	}
	if loan.PoolID != nil {
		response.PoolID = *loan.PoolID
	}
	for _, installment := range installments {
		response.Installments = append(response.Installments, toInstallmentResponse(installment))
	}
	return response
}

func toProfileResponse(profile domain.Profile) models.ProfileResponse {
	return models.ProfileResponse{
		ID:              profile.ID,
		Kind:            string(profile.Kind),
		Email:           profile.Email,
		FullName:        profile.FullName,
		Document:        profile.Document,
		KYCApproved:     profile.KYCApproved,
		CalculatedScore: profile.CalculatedScore,
		CreatedAt:       profile.CreatedAt.Format(time.RFC3339),
	}
}
