package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type LoanStatus string

const (
	LoanStatusActive    LoanStatus = "active"
	LoanStatusPaid      LoanStatus = "paid"
	LoanStatusDefaulted LoanStatus = "defaulted"
)

// Loan is the materialized obligation created once a credit request is funded.
// Exactly one of PoolID and InvestorID is set: pool funding and direct investor
// funding are mutually exclusive sources.
type Loan struct {
	ID              string
	CreditRequestID string
	BorrowerID      string
	InvestorID      *string
	PoolID          *string
	Principal       decimal.Decimal
	InterestRate    decimal.Decimal
	TermMonths      int
	Status          LoanStatus
	DisbursedAt     time.Time
	UpdatedAt       time.Time
}

// FundingOwner returns the party whose wallet disbursed the loan and receives
// the repayments.
func (l Loan) FundingOwner(poolOwner func(poolID string) (string, error)) (PartyRef, error) {
	if l.PoolID != nil {
		investorID, err := poolOwner(*l.PoolID)
		if err != nil {
			return PartyRef{}, err
		}
		return InvestorRef(investorID), nil
	}
	return InvestorRef(*l.InvestorID), nil
}

type InstallmentStatus string

const (
	InstallmentStatusPending InstallmentStatus = "pending"
	InstallmentStatusPaid    InstallmentStatus = "paid"
	InstallmentStatusOverdue InstallmentStatus = "overdue"
)

type Installment struct {
	ID         string
	LoanID     string
	Number     int
	AmountDue  decimal.Decimal
	AmountPaid decimal.Decimal
	DueDate    time.Time
	PaidAt     *time.Time
	Status     InstallmentStatus
}
