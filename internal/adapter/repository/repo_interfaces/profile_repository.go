package repo_interfaces

import (
	"context"

	"github.com/thiagomes07/inovacamp/internal/domain"
)

type ProfileRepository interface {
	Create(ctx context.Context, profile domain.Profile) (domain.Profile, error)
	GetByID(ctx context.Context, id string) (domain.Profile, error)
	GetByEmail(ctx context.Context, email string) (domain.Profile, error)
	UpdateScore(ctx context.Context, id string, score int) error
}
