package controller

import (
	"net/http"

	"github.com/thiagomes07/inovacamp/internal/usecase/service_interfaces"
)

type LoanController struct {
	service service_interfaces.LoanService
}

func NewLoanController(service service_interfaces.LoanService) *LoanController {
	return &LoanController{service: service}
}

func (c *LoanController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	register(mux, authMiddleware, "POST /api/v1/loans/{id}/payments", c.recordPayment)
	register(mux, authMiddleware, "GET /api/v1/loans/user/{id}", c.listByBorrower)
}

func (c *LoanController) recordPayment(w http.ResponseWriter, r *http.Request) {
	response, err := c.service.RecordPayment(r.Context(), r.PathValue("id"))
	if err != nil {
		logHandlerError(r, err)
		writeJSON(w, statusFor(response.Message, err), response)
		return
	}
	writeJSON(w, http.StatusCreated, response)
}

func (c *LoanController) listByBorrower(w http.ResponseWriter, r *http.Request) {
	response, err := c.service.ListByBorrower(r.Context(), r.PathValue("id"))
	if err != nil {
		writeJSON(w, statusFor(response.Message, err), response)
		return
	}
	writeJSON(w, http.StatusOK, response)
}
