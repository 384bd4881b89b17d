package service_interfaces

import (
	"context"

	"github.com/thiagomes07/inovacamp/internal/adapter/http/models"
	"github.com/thiagomes07/inovacamp/internal/commons"
)

type PoolService interface {
	CreatePool(ctx context.Context, req models.CreatePoolRequest) (commons.Response[models.PoolResponse], error)
	GetPool(ctx context.Context, id string) (commons.Response[models.PoolResponse], error)
	ListPools(ctx context.Context, status string) (commons.Response[[]models.PoolResponse], error)
	UpdatePool(ctx context.Context, id string, req models.UpdatePoolRequest) (commons.Response[models.PoolResponse], error)
	UpdatePoolStatus(ctx context.Context, id string, req models.UpdatePoolStatusRequest) (commons.Response[models.PoolResponse], error)
	IncreaseCapital(ctx context.Context, id string, req models.IncreaseCapitalRequest) (commons.Response[models.PoolResponse], error)
}
