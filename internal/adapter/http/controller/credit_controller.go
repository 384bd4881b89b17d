package controller

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/thiagomes07/inovacamp/internal/adapter/http/models"
	"github.com/thiagomes07/inovacamp/internal/commons"
	"github.com/thiagomes07/inovacamp/internal/usecase/service_interfaces"
)

type CreditController struct {
	service service_interfaces.MatchingService
}

func NewCreditController(service service_interfaces.MatchingService) *CreditController {
	return &CreditController{service: service}
}

func (c *CreditController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	register(mux, authMiddleware, "POST /api/v1/credit/request", c.createCreditRequest)
	register(mux, authMiddleware, "GET /api/v1/credit/requests/{id}", c.getCreditRequest)
	register(mux, authMiddleware, "GET /api/v1/credit/user/{id}", c.listByBorrower)
	register(mux, authMiddleware, "GET /api/v1/credit/compatible-pools/{userId}", c.compatiblePools)
	register(mux, authMiddleware, "POST /api/v1/credit/invest", c.investDirect)
}

func (c *CreditController) createCreditRequest(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCreditRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.CreditRequestResponse]("invalid request body", err.Error()))
		return
	}

	response, err := c.service.CreateCreditRequest(r.Context(), req)
	if err != nil {
		logHandlerError(r, err)
		writeJSON(w, statusFor(response.Message, err), response)
		return
	}
	writeJSON(w, http.StatusCreated, response)
}

func (c *CreditController) getCreditRequest(w http.ResponseWriter, r *http.Request) {
	response, err := c.service.GetCreditRequest(r.Context(), r.PathValue("id"))
	if err != nil {
		writeJSON(w, statusFor(response.Message, err), response)
		return
	}
	writeJSON(w, http.StatusOK, response)
}

func (c *CreditController) listByBorrower(w http.ResponseWriter, r *http.Request) {
	response, err := c.service.ListByBorrower(r.Context(), r.PathValue("id"))
	if err != nil {
		writeJSON(w, statusFor(response.Message, err), response)
		return
	}
	writeJSON(w, http.StatusOK, response)
}

func (c *CreditController) compatiblePools(w http.ResponseWriter, r *http.Request) {
	amount, err := decimal.NewFromString(r.URL.Query().Get("amount"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[[]models.CompatiblePoolResponse]("validation failed", "amount must be numeric"))
		return
	}
	termMonths, err := strconv.Atoi(r.URL.Query().Get("termMonths"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[[]models.CompatiblePoolResponse]("validation failed", "termMonths must be an integer"))
		return
	}

	response, err := c.service.CompatiblePools(r.Context(), r.PathValue("userId"), amount, termMonths)
	if err != nil {
		writeJSON(w, statusFor(response.Message, err), response)
		return
	}
	writeJSON(w, http.StatusOK, response)
}

func (c *CreditController) investDirect(w http.ResponseWriter, r *http.Request) {
	var req models.DirectInvestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.CreditRequestResponse]("invalid request body", err.Error()))
		return
	}

	response, err := c.service.InvestDirect(r.Context(), req)
	if err != nil {
		logHandlerError(r, err)
		writeJSON(w, statusFor(response.Message, err), response)
		return
	}
	writeJSON(w, http.StatusCreated, response)
}
