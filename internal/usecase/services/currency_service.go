package services

import (
	"context"

	"github.com/thiagomes07/inovacamp/internal/commons"
	"github.com/thiagomes07/inovacamp/internal/domain"
)

// CurrencyService exposes the closed set of supported currency codes. No
// conversion happens anywhere in the engine; amounts only move between
// wallets of the same currency.
type CurrencyService struct{}

func NewCurrencyService() *CurrencyService {
	return &CurrencyService{}
}

func (s *CurrencyService) SupportedCurrencies(_ context.Context) (commons.Response[[]string], error) {
	currencies := domain.SupportedCurrencies()
	codes := make([]string, 0, len(currencies))
	for _, currency := range currencies {
		codes = append(codes, string(currency))
	}
	return commons.SuccessResponse("currencies retrieved successfully", codes), nil
}
