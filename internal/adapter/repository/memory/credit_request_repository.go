package memory

import (
	"context"
	"sort"
	"time"

	"github.com/thiagomes07/inovacamp/internal/commons"
	"github.com/thiagomes07/inovacamp/internal/domain"
)

type CreditRequestRepository struct {
	s    *Store
	inTx bool
}

func NewCreditRequestRepository(s *Store) *CreditRequestRepository {
	return &CreditRequestRepository{s: s}
}

func (r *CreditRequestRepository) lock() func() {
	if r.inTx {
		return func() {}
	}
	r.s.mu.Lock()
	return r.s.mu.Unlock
}

func (r *CreditRequestRepository) Create(_ context.Context, request domain.CreditRequest) (domain.CreditRequest, error) {
	defer r.lock()()
	r.s.creditRequests[request.ID] = request
	return request, nil
}

func (r *CreditRequestRepository) GetByID(_ context.Context, id string) (domain.CreditRequest, error) {
	defer r.lock()()
	request, ok := r.s.creditRequests[id]
	if !ok {
		return domain.CreditRequest{}, commons.ErrRecordNotFound
	}
	return request, nil
}

func (r *CreditRequestRepository) ListByBorrower(_ context.Context, borrowerID string) ([]domain.CreditRequest, error) {
	defer r.lock()()
	var requests []domain.CreditRequest
	for _, request := range r.s.creditRequests {
		if request.BorrowerID == borrowerID {
			requests = append(requests, request)
		}
	}
	sortRequestsByAge(requests)
	return requests, nil
}

func (r *CreditRequestRepository) ListPending(_ context.Context) ([]domain.CreditRequest, error) {
	defer r.lock()()
	var requests []domain.CreditRequest
	for _, request := range r.s.creditRequests {
		if request.Status == domain.CreditRequestStatusPending {
			requests = append(requests, request)
		}
	}
	sortRequestsByAge(requests)
	return requests, nil
}

func (r *CreditRequestRepository) UpdateStatus(_ context.Context, id string, status domain.CreditRequestStatus, approvedAt *time.Time) error {
	defer r.lock()()
	request, ok := r.s.creditRequests[id]
	if !ok {
		return commons.ErrRecordNotFound
	}
	request.Status = status
	if approvedAt != nil {
		request.ApprovedAt = approvedAt
	}
	request.UpdatedAt = time.Now().UTC()
	r.s.creditRequests[id] = request
	return nil
}

func sortRequestsByAge(requests []domain.CreditRequest) {
	sort.Slice(requests, func(i, j int) bool {
		if !requests[i].RequestedAt.Equal(requests[j].RequestedAt) {
			return requests[i].RequestedAt.Before(requests[j].RequestedAt)
		}
		return requests[i].ID < requests[j].ID
	})
}
