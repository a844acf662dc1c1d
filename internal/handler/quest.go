package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/knedy989-code/Cookie-RNG/internal/logger"
	"github.com/knedy989-code/Cookie-RNG/internal/quest"
)

// ClaimQuestRequest selects the quest to claim.
type ClaimQuestRequest struct {
	QuestID string `json:"quest_id"`
}

// HandleGetQuests lists all quests with live progress.
func HandleGetQuests(service quest.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, DataResponse{Data: service.List(r.Context())})
	}
}

// HandleClaimQuest pays out a completed quest.
func HandleClaimQuest(service quest.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ClaimQuestRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.FromContext(r.Context()).Error("Failed to decode claim request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		res, err := service.Claim(r.Context(), req.QuestID)
		if err != nil {
			logger.FromContext(r.Context()).Error("Failed to claim quest", "quest", req.QuestID, "error", err)
			statusCode, userMsg := mapServiceErrorToUserMessage(err)
			respondError(w, statusCode, userMsg)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{
			Message: fmt.Sprintf("Quest complete! +%s Bits", formatBits(res.Reward)),
			Data:    res,
		})
	}
}
