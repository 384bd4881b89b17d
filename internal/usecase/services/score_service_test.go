package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thiagomes07/inovacamp/internal/adapter/http/models"
	"github.com/thiagomes07/inovacamp/internal/domain"
)

func TestSaturateScoreFirstIdentityDocument(t *testing.T) {
	points := documentPoints(domain.DocumentVerifyIdentity, 100)
	assert.Equal(t, int64(150), points)
	assert.Equal(t, 201, saturateScore(points))
}

func TestSaturateScoreBounds(t *testing.T) {
	assert.Equal(t, 0, saturateScore(0))
	assert.Equal(t, 0, saturateScore(-50))
	assert.Equal(t, 999, saturateScore(100000))
}

func TestRawFromScoreInvertsWithinTruncation(t *testing.T) {
	for _, score := range []int{0, 100, 201, 500, 998} {
		got := saturateScore(rawFromScore(score))
		assert.InDelta(t, score, got, 1, "score %d", score)
	}
}

func TestDocumentPointsScalesWithQuality(t *testing.T) {
	assert.Equal(t, int64(125), documentPoints(domain.DocumentIncomeProof, 50))
	assert.Equal(t, int64(0), documentPoints(domain.DocumentCustom, 0))
}

func TestRecordDocumentsDiminishingReturns(t *testing.T) {
	stores, _ := newTestStores()
	borrower := seedProfile(t, stores, domain.OwnerKindBorrower, 0)
	svc := NewScoreService(stores.Profiles)

	req := models.RecordDocumentsRequest{
		UserID: borrower.ID,
		Documents: []models.DocumentEvidence{
			{Type: "verify_identity", QualityScore: 100},
		},
	}

	resp, err := svc.RecordDocuments(context.Background(), req)
	require.NoError(t, err)
	require.True(t, resp.Success)
	assert.Equal(t, 201, resp.Data.Score)

	// Resubmitting the same evidence is worth less on the saturating curve.
	resp, err = svc.RecordDocuments(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 361, resp.Data.Score)

	profile, err := stores.Profiles.GetByID(context.Background(), borrower.ID)
	require.NoError(t, err)
	assert.Equal(t, 361, profile.CalculatedScore)
}

func TestRecordDocumentsUnknownTypeRejected(t *testing.T) {
	stores, _ := newTestStores()
	borrower := seedProfile(t, stores, domain.OwnerKindBorrower, 0)
	svc := NewScoreService(stores.Profiles)

	resp, err := svc.RecordDocuments(context.Background(), models.RecordDocumentsRequest{
		UserID: borrower.ID,
		Documents: []models.DocumentEvidence{
			{Type: "passport_selfie", QualityScore: 90},
		},
	})
	require.Error(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, "validation failed", resp.Message)

	profile, err := stores.Profiles.GetByID(context.Background(), borrower.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, profile.CalculatedScore)
}

func TestGetScoreUnknownUser(t *testing.T) {
	stores, _ := newTestStores()
	svc := NewScoreService(stores.Profiles)

	resp, err := svc.GetScore(context.Background(), "missing")
	require.Error(t, err)
	assert.False(t, resp.Success)
}

func TestGetScore(t *testing.T) {
	stores, _ := newTestStores()
	borrower := seedProfile(t, stores, domain.OwnerKindBorrower, 740)
	svc := NewScoreService(stores.Profiles)

	resp, err := svc.GetScore(context.Background(), borrower.ID)
	require.NoError(t, err)
	require.True(t, resp.Success)
	assert.Equal(t, 740, resp.Data.Score)
}
