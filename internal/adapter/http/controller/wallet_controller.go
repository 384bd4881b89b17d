package controller

import (
	"encoding/json"
	"net/http"

	"github.com/thiagomes07/inovacamp/internal/adapter/http/models"
	"github.com/thiagomes07/inovacamp/internal/commons"
	"github.com/thiagomes07/inovacamp/internal/usecase/service_interfaces"
)

type WalletController struct {
	service service_interfaces.LedgerService
}

func NewWalletController(service service_interfaces.LedgerService) *WalletController {
	return &WalletController{service: service}
}

func (c *WalletController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	register(mux, authMiddleware, "POST /api/v1/transfers", c.transfer)
	register(mux, authMiddleware, "POST /api/v1/transfers/withdraw", c.withdraw)
	register(mux, authMiddleware, "GET /api/v1/wallets/{ownerKind}/{ownerId}", c.getWallets)
	register(mux, authMiddleware, "GET /api/v1/wallets/{ownerKind}/{ownerId}/transactions", c.getTransactions)
}

func (c *WalletController) transfer(w http.ResponseWriter, r *http.Request) {
	var req models.TransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.TransferResponse]("invalid request body", err.Error()))
		return
	}

	response, err := c.service.Transfer(r.Context(), req)
	if err != nil {
		logHandlerError(r, err)
		writeJSON(w, statusFor(response.Message, err), response)
		return
	}
	writeJSON(w, http.StatusCreated, response)
}

func (c *WalletController) withdraw(w http.ResponseWriter, r *http.Request) {
	var req models.WithdrawRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.TransferResponse]("invalid request body", err.Error()))
		return
	}

	response, err := c.service.Withdraw(r.Context(), req)
	if err != nil {
		logHandlerError(r, err)
		writeJSON(w, statusFor(response.Message, err), response)
		return
	}
	writeJSON(w, http.StatusCreated, response)
}

func (c *WalletController) getWallets(w http.ResponseWriter, r *http.Request) {
	response, err := c.service.GetWallets(r.Context(), r.PathValue("ownerKind"), r.PathValue("ownerId"))
	if err != nil {
		writeJSON(w, statusFor(response.Message, err), response)
		return
	}
	writeJSON(w, http.StatusOK, response)
}

func (c *WalletController) getTransactions(w http.ResponseWriter, r *http.Request) {
	response, err := c.service.GetTransactions(r.Context(), r.PathValue("ownerKind"), r.PathValue("ownerId"))
	if err != nil {
		writeJSON(w, statusFor(response.Message, err), response)
		return
	}
	writeJSON(w, http.StatusOK, response)
}
