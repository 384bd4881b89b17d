package models

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/thiagomes07/inovacamp/internal/domain"
)

type TransferRequest struct {
	SenderKind   string          `json:"senderKind"`
	SenderID     string          `json:"senderId"`
	ReceiverKind string          `json:"receiverKind"`
	ReceiverID   string          `json:"receiverId"`
	Amount       decimal.Decimal `json:"amount"`
	Currency     string          `json:"currency"`
	Description  string          `json:"description,omitempty"`
}

func (r TransferRequest) Validate() error {
	var errs []string

	errs = appendPartyErrors(errs, "sender", r.SenderKind, r.SenderID)
	errs = appendPartyErrors(errs, "receiver", r.ReceiverKind, r.ReceiverID)

	if r.Amount.LessThanOrEqual(decimal.Zero) {
		errs = append(errs, "amount must be greater than zero")
	}
	errs = appendCurrencyErrors(errs, r.Currency)

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

type WithdrawRequest struct {
	OwnerKind string          `json:"ownerKind"`
	OwnerID   string          `json:"ownerId"`
	Amount    decimal.Decimal `json:"amount"`
	Currency  string          `json:"currency"`
	TargetKey string          `json:"targetKey"`
}

func (r WithdrawRequest) Validate() error {
	var errs []string

	errs = appendPartyErrors(errs, "owner", r.OwnerKind, r.OwnerID)
	if r.Amount.LessThanOrEqual(decimal.Zero) {
		errs = append(errs, "amount must be greater than zero")
	}
	errs = appendCurrencyErrors(errs, r.Currency)
	if strings.TrimSpace(r.TargetKey) == "" {
		errs = append(errs, "targetKey is required")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

type TransferResponse struct {
	TransactionID string `json:"transactionId"`
	Type          string `json:"type"`
	Status        string `json:"status"`
	Amount        string `json:"amount"`
	Currency      string `json:"currency"`
	CreatedAt     string `json:"createdAt"`
}

type WalletResponse struct {
	ID        string `json:"id"`
	OwnerKind string `json:"ownerKind"`
	OwnerID   string `json:"ownerId"`
	Currency  string `json:"currency"`
	Balance   string `json:"balance"`
	Blocked   string `json:"blocked"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

type TransactionResponse struct {
	ID           string `json:"id"`
	SenderKind   string `json:"senderKind"`
	SenderID     string `json:"senderId"`
	ReceiverKind string `json:"receiverKind"`
	ReceiverID   string `json:"receiverId"`
	WalletID     string `json:"walletId"`
	Amount       string `json:"amount"`
	Currency     string `json:"currency"`
	Type         string `json:"type"`
	Status       string `json:"status"`
	Description  string `json:"description,omitempty"`
	CreatedAt    string `json:"createdAt"`
}

func appendPartyErrors(errs []string, field, kind, id string) []string {
	if _, err := domain.ParseOwnerKind(strings.ToLower(strings.TrimSpace(kind))); err != nil {
		errs = append(errs, field+"Kind must be borrower or investor")
	}
	if strings.TrimSpace(id) == "" {
		errs = append(errs, field+"Id is required")
	}
	return errs
}

func appendCurrencyErrors(errs []string, currency string) []string {
	code := strings.ToUpper(strings.TrimSpace(currency))
	if code == "" {
		errs = append(errs, "currency is required")
	} else if !domain.IsSupportedCurrency(code) {
		errs = append(errs, "currency must be one of BRL, USDT, USDC, EUR")
	}
	return errs
}
