package models

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

type CreateCreditRequest struct {
	BorrowerID            string          `json:"borrowerId"`
	Amount                decimal.Decimal `json:"amount"`
	TermMonths            int             `json:"termMonths"`
	InterestRate          decimal.Decimal `json:"interestRate"`
	CollateralType        string          `json:"collateralType,omitempty"`
	CollateralDescription string          `json:"collateralDescription,omitempty"`
	ApprovalMode          string          `json:"approvalMode,omitempty"`
}

func (r CreateCreditRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.BorrowerID) == "" {
		errs = append(errs, "borrowerId is required")
	}
	if r.Amount.LessThanOrEqual(decimal.Zero) {
		errs = append(errs, "amount must be greater than zero")
	}
	if r.TermMonths <= 0 {
		errs = append(errs, "termMonths must be greater than zero")
	}
	if r.InterestRate.IsNegative() {
		errs = append(errs, "interestRate cannot be negative")
	}

	if collateral := strings.ToLower(strings.TrimSpace(r.CollateralType)); collateral != "" {
		switch collateral {
		case "vehicle", "property", "investment", "none":
		default:
			errs = append(errs, "collateralType must be one of vehicle, property, investment, none")
		}
	}

	if mode := strings.ToLower(strings.TrimSpace(r.ApprovalMode)); mode != "" {
		switch mode {
		case "automatic", "manual", "both":
		default:
			errs = append(errs, "approvalMode must be one of automatic, manual, both")
		}
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

type DirectInvestRequest struct {
	InvestorID      string `json:"investorId"`
	CreditRequestID string `json:"creditRequestId"`
}

func (r DirectInvestRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.InvestorID) == "" {
		errs = append(errs, "investorId is required")
	}
	if strings.TrimSpace(r.CreditRequestID) == "" {
		errs = append(errs, "creditRequestId is required")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

// MatchResponse is present on the credit request response only when a funding
// source was bound in the same call.
type MatchResponse struct {
	PoolID            string `json:"poolId,omitempty"`
	InvestorID        string `json:"investorId,omitempty"`
	LoanID            string `json:"loanId"`
	EffectiveRate     string `json:"effectiveRate"`
	InstallmentAmount string `json:"installmentAmount"`
	Installments      int    `json:"installments"`
}

type CreditRequestResponse struct {
	ID                    string         `json:"id"`
	BorrowerID            string         `json:"borrowerId"`
	Amount                string         `json:"amount"`
	TermMonths            int            `json:"termMonths"`
	InterestRate          string         `json:"interestRate"`
	Status                string         `json:"status"`
	CollateralType        string         `json:"collateralType"`
	CollateralDescription string         `json:"collateralDescription,omitempty"`
	RequestedAt           string         `json:"requestedAt"`
	ApprovedAt            string         `json:"approvedAt,omitempty"`
	Match                 *MatchResponse `json:"match,omitempty"`
}

type CompatiblePoolResponse struct {
	PoolID          string `json:"poolId"`
	Name            string `json:"name"`
	ExpectedReturn  string `json:"expectedReturn"`
	MinScore        int    `json:"minScore"`
	MinInterestRate string `json:"minInterestRate"`
	MaxTermMonths   int    `json:"maxTermMonths"`
	AvailableAmount string `json:"availableAmount"`
}
