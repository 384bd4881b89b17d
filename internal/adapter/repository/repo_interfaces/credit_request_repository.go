package repo_interfaces

import (
	"context"
	"time"

	"github.com/thiagomes07/inovacamp/internal/domain"
)

type CreditRequestRepository interface {
	Create(ctx context.Context, request domain.CreditRequest) (domain.CreditRequest, error)
	GetByID(ctx context.Context, id string) (domain.CreditRequest, error)
	ListByBorrower(ctx context.Context, borrowerID string) ([]domain.CreditRequest, error)
	ListPending(ctx context.Context) ([]domain.CreditRequest, error)
	UpdateStatus(ctx context.Context, id string, status domain.CreditRequestStatus, approvedAt *time.Time) error
}
