package handler

import (
	"net/http"

	"github.com/knedy989-code/Cookie-RNG/internal/domain"
	"github.com/knedy989-code/Cookie-RNG/internal/economy"
	"github.com/knedy989-code/Cookie-RNG/internal/logger"
	"github.com/knedy989-code/Cookie-RNG/internal/state"
)

// HandleGetState returns the full game aggregate.
func HandleGetState(store *state.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, store.Snapshot())
	}
}

// HandleClick applies one cookie click.
func HandleClick(service economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := service.Click(r.Context())
		if err != nil {
			logger.FromContext(r.Context()).Error("Failed to apply click", "error", err)
			statusCode, userMsg := mapServiceErrorToUserMessage(err)
			respondError(w, statusCode, userMsg)
			return
		}

		respondJSON(w, http.StatusOK, res)
	}
}

// SoundResponse reports the sound setting after a toggle.
type SoundResponse struct {
	SoundEnabled bool `json:"sound_enabled"`
}

// HandleToggleSound flips the sound setting.
func HandleToggleSound(store *state.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var enabled bool
		err := store.Update(func(gs *domain.GameState) error {
			gs.SoundEnabled = !gs.SoundEnabled
			enabled = gs.SoundEnabled
			return nil
		})
		if err != nil {
			logger.FromContext(r.Context()).Error("Failed to toggle sound", "error", err)
			statusCode, userMsg := mapServiceErrorToUserMessage(err)
			respondError(w, statusCode, userMsg)
			return
		}

		respondJSON(w, http.StatusOK, SoundResponse{SoundEnabled: enabled})
	}
}
