package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreditRequestStatus string

const (
	CreditRequestStatusPending   CreditRequestStatus = "pending"
	CreditRequestStatusApproved  CreditRequestStatus = "approved"
	CreditRequestStatusRejected  CreditRequestStatus = "rejected"
	CreditRequestStatusActive    CreditRequestStatus = "active"
	CreditRequestStatusCompleted CreditRequestStatus = "completed"
)

type CollateralType string

const (
	CollateralVehicle    CollateralType = "vehicle"
	CollateralProperty   CollateralType = "property"
	CollateralInvestment CollateralType = "investment"
	CollateralNone       CollateralType = "none"
)

// ApprovalMode controls what happens when no pool qualifies: automatic rejects
// the request, manual and both leave it pending for marketplace placement.
type ApprovalMode string

const (
	ApprovalModeAutomatic ApprovalMode = "automatic"
	ApprovalModeManual    ApprovalMode = "manual"
	ApprovalModeBoth      ApprovalMode = "both"
)

type CreditRequest struct {
	ID                    string
	BorrowerID            string
	AmountRequested       decimal.Decimal
	TermMonths            int
	InterestRate          decimal.Decimal
	Status                CreditRequestStatus
	CollateralType        CollateralType
	CollateralDescription string
	RequestedAt           time.Time
	ApprovedAt            *time.Time
	UpdatedAt             time.Time
}
