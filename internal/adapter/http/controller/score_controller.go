package controller

import (
	"encoding/json"
	"net/http"

	"github.com/thiagomes07/inovacamp/internal/adapter/http/models"
	"github.com/thiagomes07/inovacamp/internal/commons"
	"github.com/thiagomes07/inovacamp/internal/usecase/service_interfaces"
)

type ScoreController struct {
	service service_interfaces.ScoreService
}

func NewScoreController(service service_interfaces.ScoreService) *ScoreController {
	return &ScoreController{service: service}
}

func (c *ScoreController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	register(mux, authMiddleware, "POST /api/v1/score/documents", c.recordDocuments)
	register(mux, authMiddleware, "GET /api/v1/score/{userId}", c.getScore)
}

func (c *ScoreController) recordDocuments(w http.ResponseWriter, r *http.Request) {
	var req models.RecordDocumentsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.ScoreResponse]("invalid request body", err.Error()))
		return
	}

	response, err := c.service.RecordDocuments(r.Context(), req)
	if err != nil {
		logHandlerError(r, err)
		writeJSON(w, statusFor(response.Message, err), response)
		return
	}
	writeJSON(w, http.StatusOK, response)
}

func (c *ScoreController) getScore(w http.ResponseWriter, r *http.Request) {
	response, err := c.service.GetScore(r.Context(), r.PathValue("userId"))
	if err != nil {
		writeJSON(w, statusFor(response.Message, err), response)
		return
	}
	writeJSON(w, http.StatusOK, response)
}
