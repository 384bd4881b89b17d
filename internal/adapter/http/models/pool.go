package models

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

type CreatePoolRequest struct {
	InvestorID         string          `json:"investorId"`
	Name               string          `json:"name"`
	TargetAmount       decimal.Decimal `json:"targetAmount"`
	RiskProfile        string          `json:"riskProfile"`
	ExpectedReturn     decimal.Decimal `json:"expectedReturn"`
	MinScore           *int            `json:"minScore,omitempty"`
	RequiresCollateral bool            `json:"requiresCollateral"`
	MinInterestRate    decimal.Decimal `json:"minInterestRate"`
	MaxTermMonths      *int            `json:"maxTermMonths,omitempty"`
}

func (r CreatePoolRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.InvestorID) == "" {
		errs = append(errs, "investorId is required")
	}
	if strings.TrimSpace(r.Name) == "" {
		errs = append(errs, "name is required")
	}
	if r.TargetAmount.LessThanOrEqual(decimal.Zero) {
		errs = append(errs, "targetAmount must be greater than zero")
	}

	risk := strings.ToLower(strings.TrimSpace(r.RiskProfile))
	if risk != "low" && risk != "medium" && risk != "high" {
		errs = append(errs, "riskProfile must be one of low, medium, high")
	}

	if r.ExpectedReturn.IsNegative() {
		errs = append(errs, "expectedReturn cannot be negative")
	}
	if r.MinScore != nil && (*r.MinScore < 0 || *r.MinScore > 999) {
		errs = append(errs, "minScore must be between 0 and 999")
	}
	if r.MinInterestRate.IsNegative() {
		errs = append(errs, "minInterestRate cannot be negative")
	}
	if r.MaxTermMonths != nil && *r.MaxTermMonths <= 0 {
		errs = append(errs, "maxTermMonths must be greater than zero")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

type IncreaseCapitalRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

func (r IncreaseCapitalRequest) Validate() error {
	if r.Amount.LessThanOrEqual(decimal.Zero) {
		return errors.New("amount must be greater than zero")
	}
	return nil
}

type UpdatePoolStatusRequest struct {
	Status string `json:"status"`
}

func (r UpdatePoolStatusRequest) Validate() error {
	status := strings.ToLower(strings.TrimSpace(r.Status))
	if status != "funding" && status != "active" && status != "closed" {
		return errors.New("status must be one of funding, active, closed")
	}
	return nil
}

// UpdatePoolRequest carries partial criteria edits; nil fields keep the
// current value.
type UpdatePoolRequest struct {
	Name               *string          `json:"name,omitempty"`
	ExpectedReturn     *decimal.Decimal `json:"expectedReturn,omitempty"`
	MinScore           *int             `json:"minScore,omitempty"`
	RequiresCollateral *bool            `json:"requiresCollateral,omitempty"`
	MinInterestRate    *decimal.Decimal `json:"minInterestRate,omitempty"`
	MaxTermMonths      *int             `json:"maxTermMonths,omitempty"`
}

func (r UpdatePoolRequest) Validate() error {
	var errs []string

	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		errs = append(errs, "name cannot be empty")
	}
	if r.ExpectedReturn != nil && r.ExpectedReturn.IsNegative() {
		errs = append(errs, "expectedReturn cannot be negative")
	}
	if r.MinScore != nil && (*r.MinScore < 0 || *r.MinScore > 999) {
		errs = append(errs, "minScore must be between 0 and 999")
	}
	if r.MinInterestRate != nil && r.MinInterestRate.IsNegative() {
		errs = append(errs, "minInterestRate cannot be negative")
	}
	if r.MaxTermMonths != nil && *r.MaxTermMonths <= 0 {
		errs = append(errs, "maxTermMonths must be greater than zero")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

type PoolResponse struct {
	ID                 string `json:"id"`
	InvestorID         string `json:"investorId"`
	Name               string `json:"name"`
	TargetAmount       string `json:"targetAmount"`
	RaisedAmount       string `json:"raisedAmount"`
	AvailableAmount    string `json:"availableAmount"`
	RiskProfile        string `json:"riskProfile"`
	ExpectedReturn     string `json:"expectedReturn"`
	MinScore           int    `json:"minScore"`
	RequiresCollateral bool   `json:"requiresCollateral"`
	MinInterestRate    string `json:"minInterestRate"`
	MaxTermMonths      int    `json:"maxTermMonths"`
	Status             string `json:"status"`
	CreatedAt          string `json:"createdAt"`
	UpdatedAt          string `json:"updatedAt"`
}
