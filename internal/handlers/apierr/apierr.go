// Package apierr maps domain errors to HTTP responses.
package apierr

import (
	"errors"
	"net/http"

	"github.com/GlebRadaev/ordertracker/internal/domain"
	"github.com/GlebRadaev/ordertracker/pkg/utils"
)

func Respond(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		utils.RespondWithErrorDetails(w, http.StatusBadRequest, "Invalid request", err)
	case errors.Is(err, domain.ErrOrderNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Order not found")
	case errors.Is(err, domain.ErrNoExternalStore):
		utils.RespondWithErrorDetails(w, http.StatusBadRequest, "No external storage configured", err)
	case errors.Is(err, domain.ErrUnauthorized):
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid credentials")
	default:
		utils.RespondWithErrorDetails(w, http.StatusInternalServerError, "Internal server error", err)
	}
}
