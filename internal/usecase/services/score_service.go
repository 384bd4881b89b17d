package services

import (
	"context"
	"math"
	"strings"

	"github.com/thiagomes07/inovacamp/internal/adapter/http/models"
	"github.com/thiagomes07/inovacamp/internal/adapter/repository/repo_interfaces"
	"github.com/thiagomes07/inovacamp/internal/commons"
	"github.com/thiagomes07/inovacamp/internal/domain"
	"github.com/thiagomes07/inovacamp/internal/logger"
)

const (
	maxScore     = 1000
	saturationK  = 1.5
	scoreCeiling = 999
)

// saturateScore maps accumulated raw points onto the bounded score band. The
// curve approaches maxScore asymptotically, so each further document is worth
// less than the one before it.
func saturateScore(raw int64) int {
	if raw <= 0 {
		return 0
	}
	score := int(maxScore * (1 - math.Exp(-saturationK*float64(raw)/maxScore)))
	if score > scoreCeiling {
		score = scoreCeiling
	}
	return score
}

// rawFromScore inverts the saturation curve so accumulation can resume from a
// stored score without keeping the raw total around.
func rawFromScore(score int) int64 {
	if score <= 0 {
		return 0
	}
	if score > scoreCeiling {
		score = scoreCeiling
	}
	return int64(-maxScore * math.Log(1-float64(score)/maxScore) / saturationK)
}

func documentPoints(docType domain.DocumentType, qualityScore int) int64 {
	return domain.DocumentBasePoints[docType] * int64(qualityScore) / 100
}

type ScoreService struct {
	profileRepo repo_interfaces.ProfileRepository
}

func NewScoreService(profileRepo repo_interfaces.ProfileRepository) *ScoreService {
	return &ScoreService{profileRepo: profileRepo}
}

func (s *ScoreService) RecordDocuments(ctx context.Context, req models.RecordDocumentsRequest) (commons.Response[models.ScoreResponse], error) {
	logger.Info("score service record documents", logger.Fields{
		"userId":    req.UserID,
		"documents": len(req.Documents),
	})

	if err := req.Validate(); err != nil {
		return commons.ErrorResponse[models.ScoreResponse]("validation failed", err.Error()), err
	}

	profile, err := s.profileRepo.GetByID(ctx, strings.TrimSpace(req.UserID))
	if err != nil {
		logger.Error("score service record documents profile lookup failed", err, logger.Fields{
			"userId": req.UserID,
		})
		return commons.ErrorResponse[models.ScoreResponse]("failed to record documents", "User not found"), err
	}

	raw := rawFromScore(profile.CalculatedScore)
	for _, doc := range req.Documents {
		docType := domain.DocumentType(strings.ToLower(strings.TrimSpace(doc.Type)))
		raw += documentPoints(docType, doc.QualityScore)
	}
	score := saturateScore(raw)

	if err := s.profileRepo.UpdateScore(ctx, profile.ID, score); err != nil {
		logger.Error("score service update score failed", err, logger.Fields{
			"userId": profile.ID,
		})
		return commons.ErrorResponse[models.ScoreResponse]("failed to record documents", "Unable to update score right now"), err
	}

	logger.Info("score service record documents success", logger.Fields{
		"userId": profile.ID,
		"score":  score,
	})

	return commons.SuccessResponse("score updated successfully", models.ScoreResponse{
		UserID: profile.ID,
		Score:  score,
	}), nil
}

func (s *ScoreService) GetScore(ctx context.Context, userID string) (commons.Response[models.ScoreResponse], error) {
	profile, err := s.profileRepo.GetByID(ctx, strings.TrimSpace(userID))
	if err != nil {
		return commons.ErrorResponse[models.ScoreResponse]("failed to get score", "User not found"), err
	}

	return commons.SuccessResponse("score retrieved successfully", models.ScoreResponse{
		UserID: profile.ID,
		Score:  profile.CalculatedScore,
	}), nil
}
