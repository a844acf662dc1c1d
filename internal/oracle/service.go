// Package oracle bakes one-of-a-kind Divine cookies through an external
// generation backend. A backend failure never eats the player's Bits:
// the spend and the mint happen together, with a deterministic fallback
// cookie standing in for the generated one.
package oracle

import (
	"context"
	"fmt"
	"time"

	"github.com/knedy989-code/Cookie-RNG/internal/domain"
	"github.com/knedy989-code/Cookie-RNG/internal/economy"
	"github.com/knedy989-code/Cookie-RNG/internal/event"
	"github.com/knedy989-code/Cookie-RNG/internal/logger"
	"github.com/knedy989-code/Cookie-RNG/internal/state"
)

// RollResult reports a completed oracle bake.
type RollResult struct {
	Cookie   domain.Cookie `json:"cookie"`
	Cost     float64       `json:"cost"`
	Bits     float64       `json:"bits"`
	Fallback bool          `json:"fallback"`
}

// Service bakes oracle cookies.
type Service interface {
	Roll(ctx context.Context) (*RollResult, error)
}

type service struct {
	store  *state.Store
	bus    event.Bus
	client Client
	now    func() time.Time
}

// NewService creates a new oracle service.
func NewService(store *state.Store, bus event.Bus, client Client) Service {
	return &service{store: store, bus: bus, client: client, now: time.Now}
}

// Roll checks affordability, asks the backend for a cookie, and mints
// it in one atomic update. The backend call happens outside the state
// lock; affordability is re-checked by the spend itself.
func (s *service) Roll(ctx context.Context) (*RollResult, error) {
	var affordable bool
	s.store.View(func(gs *domain.GameState) {
		affordable = economy.CanAfford(gs, RollCost)
	})
	if !affordable {
		return nil, fmt.Errorf("%w: oracle bake costs %d bits", domain.ErrInsufficientFunds, RollCost)
	}

	log := logger.FromContext(ctx)

	gen, err := s.client.Generate(ctx)
	fallback := err != nil
	if fallback {
		log.Warn(LogMsgOracleMalfunction, "error", err)
		gen = &Generated{
			Name:        glitchName,
			Description: glitchDescription,
			ColorHex:    glitchColorHex,
			BaseValue:   glitchBaseValue,
		}
	}

	var res RollResult
	err = s.store.Update(func(gs *domain.GameState) error {
		if err := economy.Spend(gs, RollCost); err != nil {
			return err
		}

		cookie := s.mint(gen)
		gs.Cookies = append(gs.Cookies, cookie)
		gs.EquippedCookieID = cookie.InstanceID
		gs.UnlockRarity(domain.RarityDivine)

		res = RollResult{Cookie: cookie, Cost: RollCost, Bits: gs.Bits, Fallback: fallback}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info(LogMsgOracleBaked, "cookie", res.Cookie.Name, "fallback", fallback)
	if err := s.bus.Publish(ctx, event.NewCookieRolledEvent("oracle", res.Cookie.Name, domain.RarityDivine, RollCost)); err != nil {
		log.Warn("event publish failed", "error", err)
	}

	return &res, nil
}

func (s *service) mint(gen *Generated) domain.Cookie {
	now := s.now()
	maxDur := domain.RarityMaxDurability[domain.RarityDivine]
	return domain.Cookie{
		InstanceID:    fmt.Sprintf("oracle_%d", now.UnixNano()),
		TemplateID:    "oracle",
		Name:          gen.Name,
		Description:   gen.Description,
		Rarity:        domain.RarityDivine,
		BaseValue:     gen.BaseValue,
		ColorHex:      gen.ColorHex,
		Durability:    maxDur,
		MaxDurability: maxDur,
		ObtainedAt:    now.UnixMilli(),
		AIGenerated:   true,
	}
}
