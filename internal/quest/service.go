// Package quest derives quest progress from the live aggregate and pays
// out rewards on claim. Only claims are persisted; progress is always
// recomputed from the counters that drive it.
package quest

import (
	"context"
	"fmt"

	"github.com/knedy989-code/Cookie-RNG/internal/domain"
	"github.com/knedy989-code/Cookie-RNG/internal/economy"
	"github.com/knedy989-code/Cookie-RNG/internal/event"
	"github.com/knedy989-code/Cookie-RNG/internal/logger"
	"github.com/knedy989-code/Cookie-RNG/internal/state"
)

// Status is one quest with live progress.
type Status struct {
	Definition
	Progress float64 `json:"progress"`
	Complete bool    `json:"complete"`
	Claimed  bool    `json:"claimed"`
}

// ClaimResult reports a paid-out quest.
type ClaimResult struct {
	QuestID string  `json:"quest_id"`
	Reward  float64 `json:"reward"`
	Bits    float64 `json:"bits"`
}

// Service exposes quest listing and claiming.
type Service interface {
	List(ctx context.Context) []Status
	Claim(ctx context.Context, questID string) (*ClaimResult, error)
}

type service struct {
	store *state.Store
	bus   event.Bus
	defs  []Definition
	byID  map[string]Definition
}

// NewService creates a new quest service.
func NewService(store *state.Store, bus event.Bus) Service {
	defs := Definitions()
	byID := make(map[string]Definition, len(defs))
	for _, d := range defs {
		byID[d.ID] = d
	}
	return &service{store: store, bus: bus, defs: defs, byID: byID}
}

// List returns every quest with progress computed from the aggregate.
func (s *service) List(_ context.Context) []Status {
	out := make([]Status, 0, len(s.defs))
	s.store.View(func(gs *domain.GameState) {
		for _, d := range s.defs {
			p := progress(gs, d.Kind)
			out = append(out, Status{
				Definition: d,
				Progress:   p,
				Complete:   p >= d.Target,
				Claimed:    gs.QuestClaimed(d.ID),
			})
		}
	})
	return out
}

// Claim pays out a completed quest once. The reward counts toward
// lifetime earnings, so claiming an earn quest can complete the next.
func (s *service) Claim(ctx context.Context, questID string) (*ClaimResult, error) {
	def, ok := s.byID[questID]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownQuest, questID)
	}

	var res ClaimResult
	err := s.store.Update(func(gs *domain.GameState) error {
		if gs.QuestClaimed(def.ID) {
			return fmt.Errorf("%w: %q", domain.ErrQuestAlreadyClaimed, def.ID)
		}
		if progress(gs, def.Kind) < def.Target {
			return fmt.Errorf("%w: %q", domain.ErrQuestNotComplete, def.ID)
		}

		economy.Earn(gs, def.Reward)
		gs.ClaimedQuestIDs = append(gs.ClaimedQuestIDs, def.ID)

		res = ClaimResult{QuestID: def.ID, Reward: def.Reward, Bits: gs.Bits}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log := logger.FromContext(ctx)
	log.Info(LogMsgQuestClaimed, "quest", def.ID, "reward", def.Reward)
	if err := s.bus.Publish(ctx, event.NewQuestClaimedEvent(def.ID, def.Reward)); err != nil {
		log.Warn("event publish failed", "error", err)
	}

	return &res, nil
}

func progress(gs *domain.GameState, kind Kind) float64 {
	switch kind {
	case KindTotalClicks:
		return float64(gs.ClickCount)
	case KindTotalEarned:
		return gs.TotalBitsEarned
	case KindCollectionSize:
		return float64(gs.DistinctCookieNames())
	case KindUpgradeLevels:
		return float64(gs.ClickPowerLevel + gs.LuckLevel + gs.AutoClickerLevel)
	}
	return 0
}
