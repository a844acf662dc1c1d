// Package crate implements the crate opening flow: cumulative
// probability bands, independent payout draws, and atomic
// spend-and-resolve against the aggregate.
package crate

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/knedy989-code/Cookie-RNG/internal/domain"
	"github.com/knedy989-code/Cookie-RNG/internal/economy"
	"github.com/knedy989-code/Cookie-RNG/internal/effects"
	"github.com/knedy989-code/Cookie-RNG/internal/event"
	"github.com/knedy989-code/Cookie-RNG/internal/inventory"
	"github.com/knedy989-code/Cookie-RNG/internal/logger"
	"github.com/knedy989-code/Cookie-RNG/internal/state"
	"github.com/knedy989-code/Cookie-RNG/internal/utils"
)

// Result reports a resolved crate opening.
type Result struct {
	CrateID string  `json:"crate_id"`
	Kind    string  `json:"kind"`
	Value   float64 `json:"value"`
	Message string  `json:"message"`
	Bits    float64 `json:"bits"`
}

// Service opens crates.
type Service interface {
	Open(ctx context.Context, crateID string) (*Result, error)
	Definitions() map[string]Definition
}

type service struct {
	store  *state.Store
	bus    event.Bus
	crates map[string]Definition
	rnd    func() float64
	now    func() time.Time
}

// NewService creates a new crate service.
func NewService(store *state.Store, bus event.Bus) Service {
	return &service{
		store:  store,
		bus:    bus,
		crates: Definitions(),
		rnd:    utils.RandomFloat,
		now:    time.Now,
	}
}

// Definitions exposes the crate table for the HTTP surface.
func (s *service) Definitions() map[string]Definition {
	return s.crates
}

// Open spends the crate cost and resolves one outcome. The spend stands
// even when a repair outcome finds no cookie to heal.
func (s *service) Open(ctx context.Context, crateID string) (*Result, error) {
	def, ok := s.crates[crateID]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownCrate, crateID)
	}

	var res Result
	var drawn Outcome
	err := s.store.Update(func(gs *domain.GameState) error {
		if err := economy.Spend(gs, def.Cost); err != nil {
			return err
		}

		outcome := s.drawOutcome(def)
		drawn = outcome
		value := s.drawValue(outcome)

		switch outcome.Kind {
		case OutcomeCurrency, OutcomeJackpot:
			economy.Earn(gs, value)
		case OutcomeRepair:
			inventory.RepairFull(gs)
		case OutcomeBuff:
			effects.GrantMultiplier(gs, outcome.Multiplier, outcome.Duration, s.now())
		}

		res = Result{
			CrateID: crateID,
			Kind:    outcome.Kind,
			Value:   value,
			Message: outcome.Message,
			Bits:    gs.Bits,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log := logger.FromContext(ctx)
	log.Info(LogMsgCrateOpened, "crate", crateID, "kind", res.Kind, "value", res.Value)
	if err := s.bus.Publish(ctx, event.NewCrateOpenedEvent(crateID, res.Kind, res.Value)); err != nil {
		log.Warn("event publish failed", "error", err)
	}
	if res.Kind == OutcomeBuff {
		if err := s.bus.Publish(ctx, event.NewBuffGrantedEvent(crateID, drawn.Multiplier, drawn.Duration)); err != nil {
			log.Warn("event publish failed", "error", err)
		}
	}

	return &res, nil
}

func (s *service) drawOutcome(def Definition) Outcome {
	roll := s.rnd()
	for _, o := range def.Outcomes {
		if roll < o.UpTo {
			return o
		}
	}
	return def.Outcomes[len(def.Outcomes)-1]
}

// drawValue resolves the payout of a band. The payout roll is a second,
// independent draw.
func (s *service) drawValue(o Outcome) float64 {
	if o.Kind == OutcomeRepair || o.Kind == OutcomeBuff {
		return 0
	}
	if o.Span <= 0 {
		return o.Min
	}
	return o.Min + math.Floor(s.rnd()*o.Span)
}
