package service_interfaces

import (
	"context"

	"github.com/thiagomes07/inovacamp/internal/adapter/http/models"
	"github.com/thiagomes07/inovacamp/internal/commons"
)

type ProfileService interface {
	Register(ctx context.Context, req models.RegisterProfileRequest) (commons.Response[models.ProfileResponse], error)
	GetProfile(ctx context.Context, kind string, id string) (commons.Response[models.ProfileResponse], error)
}
