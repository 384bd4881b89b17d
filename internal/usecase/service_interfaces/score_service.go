package service_interfaces

import (
	"context"

	"github.com/thiagomes07/inovacamp/internal/adapter/http/models"
	"github.com/thiagomes07/inovacamp/internal/commons"
)

type ScoreService interface {
	RecordDocuments(ctx context.Context, req models.RecordDocumentsRequest) (commons.Response[models.ScoreResponse], error)
	GetScore(ctx context.Context, userID string) (commons.Response[models.ScoreResponse], error)
}
