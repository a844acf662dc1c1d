package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/knedy989-code/Cookie-RNG/internal/inventory"
	"github.com/knedy989-code/Cookie-RNG/internal/logger"
)

// CookieRequest identifies a cookie instance in the collection.
type CookieRequest struct {
	CookieID string `json:"cookie_id"`
}

// HandleEquipCookie makes a cookie the click target.
func HandleEquipCookie(service inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CookieRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.FromContext(r.Context()).Error("Failed to decode equip request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		if err := service.Equip(r.Context(), req.CookieID); err != nil {
			logger.FromContext(r.Context()).Error("Failed to equip cookie", "cookie", req.CookieID, "error", err)
			statusCode, userMsg := mapServiceErrorToUserMessage(err)
			respondError(w, statusCode, userMsg)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Cookie equipped"})
	}
}

// HandleSellCookie sells a cookie for Bits.
func HandleSellCookie(service inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CookieRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.FromContext(r.Context()).Error("Failed to decode sell request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		res, err := service.Sell(r.Context(), req.CookieID)
		if err != nil {
			logger.FromContext(r.Context()).Error("Failed to sell cookie", "cookie", req.CookieID, "error", err)
			statusCode, userMsg := mapServiceErrorToUserMessage(err)
			respondError(w, statusCode, userMsg)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{
			Message: fmt.Sprintf("Sold %s for %s Bits", res.CookieName, formatBits(res.Value)),
			Data:    res,
		})
	}
}
