package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Wallet struct {
	ID        string
	Owner     PartyRef
	Currency  string
	Balance   decimal.Decimal
	Blocked   decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}
