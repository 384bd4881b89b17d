package memory

import (
	"context"
	"time"

	"github.com/thiagomes07/inovacamp/internal/commons"
	"github.com/thiagomes07/inovacamp/internal/domain"
)

type ProfileRepository struct {
	s    *Store
	inTx bool
}

func NewProfileRepository(s *Store) *ProfileRepository {
	return &ProfileRepository{s: s}
}

func (r *ProfileRepository) lock() func() {
	if r.inTx {
		return func() {}
	}
	r.s.mu.Lock()
	return r.s.mu.Unlock
}

func (r *ProfileRepository) Create(_ context.Context, profile domain.Profile) (domain.Profile, error) {
	defer r.lock()()
	for _, existing := range r.s.profiles {
		if existing.Email == profile.Email {
			return domain.Profile{}, commons.ErrDuplicateRecord
		}
	}
	r.s.profiles[profile.ID] = profile
	return profile, nil
}

func (r *ProfileRepository) GetByID(_ context.Context, id string) (domain.Profile, error) {
	defer r.lock()()
	profile, ok := r.s.profiles[id]
	if !ok {
		return domain.Profile{}, commons.ErrRecordNotFound
	}
	return profile, nil
}

func (r *ProfileRepository) GetByEmail(_ context.Context, email string) (domain.Profile, error) {
	defer r.lock()()
	for _, profile := range r.s.profiles {
		if profile.Email == email {
			return profile, nil
		}
	}
	return domain.Profile{}, commons.ErrRecordNotFound
}

func (r *ProfileRepository) UpdateScore(_ context.Context, id string, score int) error {
	defer r.lock()()
	profile, ok := r.s.profiles[id]
	if !ok {
		return commons.ErrRecordNotFound
	}
	profile.CalculatedScore = score
	profile.UpdatedAt = time.Now().UTC()
	r.s.profiles[id] = profile
	return nil
}
