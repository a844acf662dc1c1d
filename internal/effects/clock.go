// Package effects manages timed buffs and shield charges on the game
// aggregate. Buff grants extend the current window rather than replace
// it, so stacking purchases never wastes paid time.
package effects

import (
	"context"
	"time"

	"github.com/knedy989-code/Cookie-RNG/internal/domain"
	"github.com/knedy989-code/Cookie-RNG/internal/logger"
	"github.com/knedy989-code/Cookie-RNG/internal/state"
)

// GrantMultiplier applies a click multiplier for the given duration.
// If a window is already running the new duration is appended to it.
func GrantMultiplier(gs *domain.GameState, factor float64, duration time.Duration, now time.Time) {
	end := gs.MultiplierExpiresAt
	if end.Before(now) {
		end = now
	}
	gs.Multiplier = factor
	gs.MultiplierExpiresAt = end.Add(duration)
}

// AddShield grants protected clicks that absorb durability loss.
func AddShield(gs *domain.GameState, clicks int) {
	gs.ShieldClicks += clicks
}

// Expired reports whether the multiplier window has lapsed.
func Expired(gs *domain.GameState, now time.Time) bool {
	return gs.Multiplier > 1 &&
		!gs.MultiplierExpiresAt.IsZero() &&
		now.After(gs.MultiplierExpiresAt)
}

// ClearMultiplier resets the multiplier to its neutral value.
func ClearMultiplier(gs *domain.GameState) {
	gs.Multiplier = 1
	gs.MultiplierExpiresAt = time.Time{}
}

// Service polls for buff expiry.
type Service interface {
	Tick(ctx context.Context) error
}

type service struct {
	store *state.Store
	now   func() time.Time
}

// NewService creates the effect clock.
func NewService(store *state.Store) Service {
	return &service{store: store, now: time.Now}
}

// Tick clears the multiplier once its window has lapsed. Runs every
// second from the scheduler, matching the click-path read granularity.
func (s *service) Tick(ctx context.Context) error {
	now := s.now()

	var lapsed bool
	s.store.View(func(gs *domain.GameState) {
		lapsed = Expired(gs, now)
	})
	if !lapsed {
		return nil
	}

	err := s.store.Update(func(gs *domain.GameState) error {
		if Expired(gs, s.now()) {
			ClearMultiplier(gs)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.FromContext(ctx).Info(LogMsgBuffExpired)
	return nil
}
