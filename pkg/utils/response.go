package utils

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

type Response struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func RespondWithJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		zap.L().Error("can't encode response", zap.Error(err))
	}
}

func RespondWithError(w http.ResponseWriter, code int, message string) {
	RespondWithJSON(w, code, Response{Error: message})
}

// RespondWithErrorDetails keeps the generic message for the client and adds
// the underlying error text as diagnostic detail.
func RespondWithErrorDetails(w http.ResponseWriter, code int, message string, err error) {
	resp := Response{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	RespondWithJSON(w, code, resp)
}
