package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/thiagomes07/inovacamp/internal/commons"
	"github.com/thiagomes07/inovacamp/internal/logger"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func register(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler, pattern string, handler http.HandlerFunc) {
	var h http.Handler = handler
	if authMiddleware != nil {
		h = authMiddleware(h)
	}
	mux.Handle(pattern, h)
}

// statusFromError maps service failures onto HTTP statuses; the envelope in
// the body carries the caller-facing message.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, commons.ErrRecordNotFound):
		return http.StatusNotFound
	case errors.Is(err, commons.ErrDuplicateRecord):
		return http.StatusConflict
	case errors.Is(err, commons.ErrInsufficientFunds):
		return http.StatusUnprocessableEntity
	case errors.Is(err, commons.ErrTransactionConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func statusFor(message string, err error) int {
	if message == "validation failed" {
		return http.StatusBadRequest
	}
	return statusFromError(err)
}

func logHandlerError(r *http.Request, err error) {
	logger.Error("http handler error", err, logger.Fields{
		"method": r.Method,
		"path":   r.URL.Path,
		"query":  r.URL.RawQuery,
	})
}
