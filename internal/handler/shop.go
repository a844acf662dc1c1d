package handler

import (
	"encoding/json"
	"net/http"

	"github.com/knedy989-code/Cookie-RNG/internal/logger"
	"github.com/knedy989-code/Cookie-RNG/internal/shop"
)

// BuyItemRequest selects the consumable to buy.
type BuyItemRequest struct {
	ItemID string `json:"item_id"`
}

// HandleGetShopItems lists the consumable catalog.
func HandleGetShopItems(service shop.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, DataResponse{Data: service.Items(r.Context())})
	}
}

// HandleBuyItem purchases and applies one consumable.
func HandleBuyItem(service shop.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req BuyItemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.FromContext(r.Context()).Error("Failed to decode buy item request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		res, err := service.BuyItem(r.Context(), req.ItemID)
		if err != nil {
			logger.FromContext(r.Context()).Error("Failed to buy item", "item", req.ItemID, "error", err)
			statusCode, userMsg := mapServiceErrorToUserMessage(err)
			respondError(w, statusCode, userMsg)
			return
		}

		respondJSON(w, http.StatusOK, res)
	}
}

// HandleGetBundle returns the active bundle offer, or 404 when none is
// live.
func HandleGetBundle(service shop.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		offer := service.ActiveOffer(r.Context())
		if offer == nil {
			respondError(w, http.StatusNotFound, ErrMsgNoActiveBundle)
			return
		}

		respondJSON(w, http.StatusOK, offer)
	}
}

// HandleBuyBundle purchases the active bundle offer.
func HandleBuyBundle(service shop.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := service.BuyBundle(r.Context())
		if err != nil {
			logger.FromContext(r.Context()).Error("Failed to buy bundle", "error", err)
			statusCode, userMsg := mapServiceErrorToUserMessage(err)
			respondError(w, statusCode, userMsg)
			return
		}

		respondJSON(w, http.StatusOK, res)
	}
}
