package handler

import (
	"encoding/json"
	"net/http"

	"github.com/knedy989-code/Cookie-RNG/internal/crate"
	"github.com/knedy989-code/Cookie-RNG/internal/logger"
)

// OpenCrateRequest selects the crate to open.
type OpenCrateRequest struct {
	CrateID string `json:"crate_id"`
}

// HandleOpenCrate spends the crate cost and resolves one outcome.
func HandleOpenCrate(service crate.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req OpenCrateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.FromContext(r.Context()).Error("Failed to decode crate request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		res, err := service.Open(r.Context(), req.CrateID)
		if err != nil {
			logger.FromContext(r.Context()).Error("Failed to open crate", "crate", req.CrateID, "error", err)
			statusCode, userMsg := mapServiceErrorToUserMessage(err)
			respondError(w, statusCode, userMsg)
			return
		}

		respondJSON(w, http.StatusOK, res)
	}
}

// HandleGetCrates lists the crate catalog.
func HandleGetCrates(service crate.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, DataResponse{Data: service.Definitions()})
	}
}
