package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionTransfer         TransactionType = "transfer"
	TransactionDeposit          TransactionType = "deposit"
	TransactionWithdrawal       TransactionType = "withdrawal"
	TransactionInvestment       TransactionType = "investment"
	TransactionPoolContribution TransactionType = "pool_contribution"
	TransactionLoanPayment      TransactionType = "loan_payment"
)

type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusFailed    TransactionStatus = "failed"
)

// Transaction is the append-only audit record of one money movement. A row is
// written only when the movement is realized; a rolled-back transfer leaves no row.
type Transaction struct {
	ID          string
	Sender      PartyRef
	Receiver    PartyRef
	WalletID    string
	Amount      decimal.Decimal
	Currency    string
	Type        TransactionType
	Status      TransactionStatus
	Description string
	CreatedAt   time.Time
}
