package handler

import (
	"encoding/json"
	"net/http"

	"github.com/knedy989-code/Cookie-RNG/internal/logger"
	"github.com/knedy989-code/Cookie-RNG/internal/progression"
)

// BuyUpgradeRequest selects the upgrade track to buy.
type BuyUpgradeRequest struct {
	Track string `json:"track"`
}

// HandleGetUpgrades lists upgrade levels and next costs.
func HandleGetUpgrades(service progression.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, service.Overview(r.Context()))
	}
}

// HandleBuyUpgrade purchases one level of an upgrade track.
func HandleBuyUpgrade(service progression.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req BuyUpgradeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.FromContext(r.Context()).Error("Failed to decode upgrade request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		res, err := service.BuyUpgrade(r.Context(), progression.Track(req.Track))
		if err != nil {
			logger.FromContext(r.Context()).Error("Failed to buy upgrade", "track", req.Track, "error", err)
			statusCode, userMsg := mapServiceErrorToUserMessage(err)
			respondError(w, statusCode, userMsg)
			return
		}

		respondJSON(w, http.StatusOK, res)
	}
}

// HandleAscend performs the prestige reset.
func HandleAscend(service progression.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := service.Ascend(r.Context())
		if err != nil {
			logger.FromContext(r.Context()).Error("Failed to ascend", "error", err)
			statusCode, userMsg := mapServiceErrorToUserMessage(err)
			respondError(w, statusCode, userMsg)
			return
		}

		respondJSON(w, http.StatusOK, res)
	}
}
