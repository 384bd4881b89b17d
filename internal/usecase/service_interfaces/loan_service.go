package service_interfaces

import (
	"context"

	"github.com/thiagomes07/inovacamp/internal/adapter/http/models"
	"github.com/thiagomes07/inovacamp/internal/commons"
)

type LoanService interface {
	RecordPayment(ctx context.Context, loanID string) (commons.Response[models.RecordPaymentResponse], error)
	ListByBorrower(ctx context.Context, borrowerID string) (commons.Response[[]models.LoanResponse], error)
	// MarkOverdue is run by the scheduled sweep, not the HTTP surface.
	MarkOverdue(ctx context.Context) (int64, error)
}
