package controller

import (
	"encoding/json"
	"net/http"

	"github.com/thiagomes07/inovacamp/internal/adapter/http/models"
	"github.com/thiagomes07/inovacamp/internal/commons"
	"github.com/thiagomes07/inovacamp/internal/usecase/service_interfaces"
)

type ProfileController struct {
	service service_interfaces.ProfileService
}

func NewProfileController(service service_interfaces.ProfileService) *ProfileController {
	return &ProfileController{service: service}
}

func (c *ProfileController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	register(mux, authMiddleware, "POST /api/v1/profiles", c.registerProfile)
	register(mux, authMiddleware, "GET /api/v1/profiles/{kind}/{id}", c.getProfile)
}

func (c *ProfileController) registerProfile(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.ProfileResponse]("invalid request body", err.Error()))
		return
	}

	response, err := c.service.Register(r.Context(), req)
	if err != nil {
		logHandlerError(r, err)
		writeJSON(w, statusFor(response.Message, err), response)
		return
	}
	writeJSON(w, http.StatusCreated, response)
}

func (c *ProfileController) getProfile(w http.ResponseWriter, r *http.Request) {
	response, err := c.service.GetProfile(r.Context(), r.PathValue("kind"), r.PathValue("id"))
	if err != nil {
		writeJSON(w, statusFor(response.Message, err), response)
		return
	}
	writeJSON(w, http.StatusOK, response)
}
