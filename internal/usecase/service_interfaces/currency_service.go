package service_interfaces

import (
	"context"

	"github.com/thiagomes07/inovacamp/internal/commons"
)

type CurrencyService interface {
	SupportedCurrencies(ctx context.Context) (commons.Response[[]string], error)
}
