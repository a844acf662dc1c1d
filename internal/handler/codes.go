package handler

import (
	"encoding/json"
	"net/http"

	"github.com/knedy989-code/Cookie-RNG/internal/codes"
	"github.com/knedy989-code/Cookie-RNG/internal/logger"
)

// RedeemCodeRequest carries the secret code.
type RedeemCodeRequest struct {
	Code string `json:"code"`
}

// HandleRedeemCode redeems a secret code.
func HandleRedeemCode(service codes.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RedeemCodeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.FromContext(r.Context()).Error("Failed to decode redeem request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		res, err := service.Redeem(r.Context(), req.Code)
		if err != nil {
			// Deliberately silent about which codes exist.
			statusCode, userMsg := mapServiceErrorToUserMessage(err)
			respondError(w, statusCode, userMsg)
			return
		}

		respondJSON(w, http.StatusOK, res)
	}
}

// HandleSpawnChrono materializes a replicated chrono cookie.
func HandleSpawnChrono(service codes.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := service.SpawnChrono(r.Context())
		if err != nil {
			logger.FromContext(r.Context()).Error("Failed to spawn chrono cookie", "error", err)
			statusCode, userMsg := mapServiceErrorToUserMessage(err)
			respondError(w, statusCode, userMsg)
			return
		}

		respondJSON(w, http.StatusOK, res)
	}
}
