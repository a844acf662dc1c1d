package handler

import (
	"errors"
	"net/http"

	"github.com/knedy989-code/Cookie-RNG/internal/domain"
)

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgInvalidRequest      = "Invalid request body"
	ErrMsgNotEnoughBits       = "Not enough Bits!"
	ErrMsgCookieNotFound      = "That cookie is not in your collection"
	ErrMsgUnknownPool         = "Unknown roll pool"
	ErrMsgUnknownCrate        = "Unknown crate"
	ErrMsgUnknownShopItem     = "Unknown shop item"
	ErrMsgUnknownUpgrade      = "Unknown upgrade"
	ErrMsgUnknownQuest        = "Unknown quest"
	ErrMsgQuestNotComplete    = "Quest is not complete yet"
	ErrMsgQuestAlreadyClaimed = "Quest reward already claimed"
	ErrMsgNoActiveBundle      = "No bundle offer is active right now"
	ErrMsgAccessDenied        = "ACCESS DENIED"
	ErrMsgSpawnerLocked       = "The chrono spawner is locked"
)

// mapServiceErrorToUserMessage maps domain errors to HTTP status codes
// and messages the player can act on.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusBadRequest, ErrMsgNotEnoughBits
	case errors.Is(err, domain.ErrCookieNotFound), errors.Is(err, domain.ErrNoCookieEquipped):
		return http.StatusBadRequest, ErrMsgCookieNotFound
	case errors.Is(err, domain.ErrUnknownPool):
		return http.StatusBadRequest, ErrMsgUnknownPool
	case errors.Is(err, domain.ErrUnknownCrate):
		return http.StatusBadRequest, ErrMsgUnknownCrate
	case errors.Is(err, domain.ErrUnknownShopItem):
		return http.StatusBadRequest, ErrMsgUnknownShopItem
	case errors.Is(err, domain.ErrUnknownUpgrade):
		return http.StatusBadRequest, ErrMsgUnknownUpgrade
	case errors.Is(err, domain.ErrUnknownQuest):
		return http.StatusBadRequest, ErrMsgUnknownQuest
	case errors.Is(err, domain.ErrQuestNotComplete):
		return http.StatusBadRequest, ErrMsgQuestNotComplete
	case errors.Is(err, domain.ErrQuestAlreadyClaimed):
		return http.StatusBadRequest, ErrMsgQuestAlreadyClaimed
	case errors.Is(err, domain.ErrNoActiveBundle):
		return http.StatusNotFound, ErrMsgNoActiveBundle
	case errors.Is(err, domain.ErrUnknownCode):
		return http.StatusBadRequest, ErrMsgAccessDenied
	case errors.Is(err, domain.ErrSpawnerLocked):
		return http.StatusForbidden, ErrMsgSpawnerLocked
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
