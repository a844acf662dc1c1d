package handler

import (
	"encoding/json"
	"net/http"

	"github.com/knedy989-code/Cookie-RNG/internal/item"
	"github.com/knedy989-code/Cookie-RNG/internal/logger"
	"github.com/knedy989-code/Cookie-RNG/internal/oracle"
)

// RollRequest selects the pool to roll from.
type RollRequest struct {
	Pool string `json:"pool"`
}

// HandleRoll performs one weighted roll from a pool.
func HandleRoll(service item.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RollRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.FromContext(r.Context()).Error("Failed to decode roll request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		res, err := service.Roll(r.Context(), item.Pool(req.Pool))
		if err != nil {
			logger.FromContext(r.Context()).Error("Failed to roll", "pool", req.Pool, "error", err)
			statusCode, userMsg := mapServiceErrorToUserMessage(err)
			respondError(w, statusCode, userMsg)
			return
		}

		respondJSON(w, http.StatusOK, res)
	}
}

// HandleGetPools lists the roll pools, their costs, and weights.
func HandleGetPools(service item.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, DataResponse{Data: service.PoolDefinitions()})
	}
}

// HandleOracleRoll bakes a one-of-a-kind cookie through the oracle.
func HandleOracleRoll(service oracle.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := service.Roll(r.Context())
		if err != nil {
			logger.FromContext(r.Context()).Error("Failed to bake oracle cookie", "error", err)
			statusCode, userMsg := mapServiceErrorToUserMessage(err)
			respondError(w, statusCode, userMsg)
			return
		}

		respondJSON(w, http.StatusOK, res)
	}
}
