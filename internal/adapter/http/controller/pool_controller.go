package controller

import (
	"encoding/json"
	"net/http"

	"github.com/thiagomes07/inovacamp/internal/adapter/http/models"
	"github.com/thiagomes07/inovacamp/internal/commons"
	"github.com/thiagomes07/inovacamp/internal/usecase/service_interfaces"
)

type PoolController struct {
	service service_interfaces.PoolService
}

func NewPoolController(service service_interfaces.PoolService) *PoolController {
	return &PoolController{service: service}
}

func (c *PoolController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	register(mux, authMiddleware, "POST /api/v1/pools", c.createPool)
	register(mux, authMiddleware, "GET /api/v1/pools", c.listPools)
	register(mux, authMiddleware, "GET /api/v1/pools/{id}", c.getPool)
	register(mux, authMiddleware, "PUT /api/v1/pools/{id}", c.updatePool)
	register(mux, authMiddleware, "PUT /api/v1/pools/{id}/status", c.updatePoolStatus)
	register(mux, authMiddleware, "POST /api/v1/pools/{id}/increase-capital", c.increaseCapital)
}

func (c *PoolController) createPool(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePoolRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.PoolResponse]("invalid request body", err.Error()))
		return
	}

	response, err := c.service.CreatePool(r.Context(), req)
	if err != nil {
		logHandlerError(r, err)
		writeJSON(w, statusFor(response.Message, err), response)
		return
	}
	writeJSON(w, http.StatusCreated, response)
}

func (c *PoolController) listPools(w http.ResponseWriter, r *http.Request) {
	response, err := c.service.ListPools(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		writeJSON(w, statusFor(response.Message, err), response)
		return
	}
	writeJSON(w, http.StatusOK, response)
}

func (c *PoolController) getPool(w http.ResponseWriter, r *http.Request) {
	response, err := c.service.GetPool(r.Context(), r.PathValue("id"))
	if err != nil {
		writeJSON(w, statusFor(response.Message, err), response)
		return
	}
	writeJSON(w, http.StatusOK, response)
}

func (c *PoolController) updatePool(w http.ResponseWriter, r *http.Request) {
	var req models.UpdatePoolRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.PoolResponse]("invalid request body", err.Error()))
		return
	}

	response, err := c.service.UpdatePool(r.Context(), r.PathValue("id"), req)
	if err != nil {
		logHandlerError(r, err)
		writeJSON(w, statusFor(response.Message, err), response)
		return
	}
	writeJSON(w, http.StatusOK, response)
}

func (c *PoolController) updatePoolStatus(w http.ResponseWriter, r *http.Request) {
	var req models.UpdatePoolStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.PoolResponse]("invalid request body", err.Error()))
		return
	}

	response, err := c.service.UpdatePoolStatus(r.Context(), r.PathValue("id"), req)
	if err != nil {
		logHandlerError(r, err)
		writeJSON(w, statusFor(response.Message, err), response)
		return
	}
	writeJSON(w, http.StatusOK, response)
}

func (c *PoolController) increaseCapital(w http.ResponseWriter, r *http.Request) {
	var req models.IncreaseCapitalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.PoolResponse]("invalid request body", err.Error()))
		return
	}

	response, err := c.service.IncreaseCapital(r.Context(), r.PathValue("id"), req)
	if err != nil {
		logHandlerError(r, err)
		writeJSON(w, statusFor(response.Message, err), response)
		return
	}
	writeJSON(w, http.StatusOK, response)
}
