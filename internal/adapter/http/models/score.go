package models

import (
	"errors"
	"strings"

	"github.com/thiagomes07/inovacamp/internal/domain"
)

type DocumentEvidence struct {
	Type         string `json:"type"`
	QualityScore int    `json:"qualityScore"`
}

type RecordDocumentsRequest struct {
	UserID    string             `json:"userId"`
	Documents []DocumentEvidence `json:"documents"`
}

func (r RecordDocumentsRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.UserID) == "" {
		errs = append(errs, "userId is required")
	}
	if len(r.Documents) == 0 {
		errs = append(errs, "documents is required")
	}
	for _, doc := range r.Documents {
		docType := domain.DocumentType(strings.ToLower(strings.TrimSpace(doc.Type)))
		if _, ok := domain.DocumentBasePoints[docType]; !ok {
			errs = append(errs, "document type "+doc.Type+" is not supported")
		}
		if doc.QualityScore < 0 || doc.QualityScore > 100 {
			errs = append(errs, "qualityScore must be between 0 and 100")
		}
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

type ScoreResponse struct {
	UserID string `json:"userId"`
	Score  int    `json:"score"`
}
