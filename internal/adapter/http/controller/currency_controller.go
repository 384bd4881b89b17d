package controller

import (
	"net/http"

	"github.com/thiagomes07/inovacamp/internal/usecase/service_interfaces"
)

type CurrencyController struct {
	service service_interfaces.CurrencyService
}

func NewCurrencyController(service service_interfaces.CurrencyService) *CurrencyController {
	return &CurrencyController{service: service}
}

func (c *CurrencyController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	register(mux, authMiddleware, "GET /api/v1/currencies", c.supportedCurrencies)
}

func (c *CurrencyController) supportedCurrencies(w http.ResponseWriter, r *http.Request) {
	response, err := c.service.SupportedCurrencies(r.Context())
	if err != nil {
		writeJSON(w, statusFor(response.Message, err), response)
		return
	}
	writeJSON(w, http.StatusOK, response)
}
