package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type RiskProfile string

const (
	RiskProfileLow    RiskProfile = "low"
	RiskProfileMedium RiskProfile = "medium"
	RiskProfileHigh   RiskProfile = "high"
)

type PoolStatus string

const (
	PoolStatusFunding PoolStatus = "funding"
	PoolStatusActive  PoolStatus = "active"
	PoolStatusClosed  PoolStatus = "closed"
)

// Pool is a pre-committed block of investor capital. RaisedAmount is the capital
// actually deposited; the amount still lendable is RaisedAmount minus the sum of
// active allocations, never tracked as a separate mutable column.
type Pool struct {
	ID                 string
	InvestorID         string
	Name               string
	TargetAmount       decimal.Decimal
	RaisedAmount       decimal.Decimal
	RiskProfile        RiskProfile
	ExpectedReturn     decimal.Decimal
	MinScore           int
	RequiresCollateral bool
	MinInterestRate    decimal.Decimal
	MaxTermMonths      int
	Status             PoolStatus
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// PoolAllocation links a funded credit request to the pool that financed it.
// Created exactly once per successful match; only Status changes afterwards,
// tracking the loan outcome.
type PoolAllocation struct {
	ID              string
	PoolID          string
	CreditRequestID string
	AllocatedAmount decimal.Decimal
	Status          LoanStatus
	AllocatedAt     time.Time
}
