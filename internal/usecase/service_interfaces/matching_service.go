package service_interfaces

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/thiagomes07/inovacamp/internal/adapter/http/models"
	"github.com/thiagomes07/inovacamp/internal/commons"
)

type MatchingService interface {
	CreateCreditRequest(ctx context.Context, req models.CreateCreditRequest) (commons.Response[models.CreditRequestResponse], error)
	GetCreditRequest(ctx context.Context, id string) (commons.Response[models.CreditRequestResponse], error)
	ListByBorrower(ctx context.Context, borrowerID string) (commons.Response[[]models.CreditRequestResponse], error)
	CompatiblePools(ctx context.Context, borrowerID string, amount decimal.Decimal, termMonths int) (commons.Response[[]models.CompatiblePoolResponse], error)
	InvestDirect(ctx context.Context, req models.DirectInvestRequest) (commons.Response[models.CreditRequestResponse], error)
}
