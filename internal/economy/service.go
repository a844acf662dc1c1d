package economy

import (
	"context"

	"github.com/knedy989-code/Cookie-RNG/internal/domain"
	"github.com/knedy989-code/Cookie-RNG/internal/event"
	"github.com/knedy989-code/Cookie-RNG/internal/logger"
	"github.com/knedy989-code/Cookie-RNG/internal/state"
)

// ClickResult reports the outcome of a single click.
type ClickResult struct {
	Power            float64 `json:"power"`
	Bits             float64 `json:"bits"`
	ShieldClicksLeft int     `json:"shield_clicks_left"`
	Broke            bool    `json:"broke"`
	BrokenCookie     string  `json:"broken_cookie,omitempty"`
}

// Service applies clicks and the passive income tick.
type Service interface {
	Click(ctx context.Context) (*ClickResult, error)
	AutoIncomeTick(ctx context.Context) error
}

type service struct {
	store *state.Store
	bus   event.Bus
}

// NewService creates a new economy service.
func NewService(store *state.Store, bus event.Bus) Service {
	return &service{store: store, bus: bus}
}

// Click grants click power, spends a shield charge or a point of
// durability on the active cookie, and removes the cookie if it breaks.
func (s *service) Click(ctx context.Context) (*ClickResult, error) {
	log := logger.FromContext(ctx)

	var res ClickResult
	var broken *domain.Cookie

	err := s.store.Update(func(gs *domain.GameState) error {
		power := ClickPower(gs)
		Earn(gs, power)
		gs.ClickCount++

		active := gs.ActiveCookie()
		if active != nil && !gs.CheatMode {
			if gs.ShieldClicks > 0 {
				gs.ShieldClicks--
			} else {
				active.Durability--
				if active.Durability <= 0 {
					b := *active
					broken = &b
					gs.RemoveCookie(active.InstanceID)
				}
			}
		}

		res = ClickResult{
			Power:            power,
			Bits:             gs.Bits,
			ShieldClicksLeft: gs.ShieldClicks,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if broken != nil {
		res.Broke = true
		res.BrokenCookie = broken.Name
		log.Info(LogMsgCookieCrumbled, "cookie", broken.Name, "rarity", broken.Rarity)
		if err := s.bus.Publish(ctx, event.NewCookieBrokenEvent(broken.Name, broken.Rarity)); err != nil {
			log.Warn("event publish failed", "error", err)
		}
	}

	if err := s.bus.Publish(ctx, event.NewClickEvent(res.Power)); err != nil {
		log.Warn("event publish failed", "error", err)
	}

	log.Debug(LogMsgClickApplied, "power", res.Power, "bits", res.Bits)
	return &res, nil
}

// AutoIncomeTick grants one second of passive income. Without an
// auto-clicker level the tick leaves the aggregate untouched.
func (s *service) AutoIncomeTick(ctx context.Context) error {
	var idle bool
	s.store.View(func(gs *domain.GameState) {
		idle = AutoIncomePerSecond(gs) <= 0
	})
	if idle {
		return nil
	}

	var granted float64
	err := s.store.Update(func(gs *domain.GameState) error {
		granted = AutoIncomePerSecond(gs)
		Earn(gs, granted)
		return nil
	})
	if err != nil {
		return err
	}

	logger.FromContext(ctx).Debug(LogMsgAutoIncome, "amount", granted)
	return nil
}
