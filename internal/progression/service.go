// Package progression handles upgrade purchases and the ascension
// prestige reset.
package progression

import (
	"context"
	"fmt"

	"github.com/knedy989-code/Cookie-RNG/internal/domain"
	"github.com/knedy989-code/Cookie-RNG/internal/economy"
	"github.com/knedy989-code/Cookie-RNG/internal/event"
	"github.com/knedy989-code/Cookie-RNG/internal/logger"
	"github.com/knedy989-code/Cookie-RNG/internal/state"
)

// TrackStatus describes one upgrade line for the HTTP surface.
type TrackStatus struct {
	Track    Track   `json:"track"`
	Level    int     `json:"level"`
	NextCost float64 `json:"next_cost"`
}

// Overview lists all upgrade lines plus the ascension tier.
type Overview struct {
	Tracks        []TrackStatus `json:"tracks"`
	AscensionLvl  int           `json:"ascension_level"`
	AscensionCost float64       `json:"ascension_cost"`
}

// PurchaseResult reports a completed upgrade purchase.
type PurchaseResult struct {
	Track    Track   `json:"track"`
	NewLevel int     `json:"new_level"`
	Cost     float64 `json:"cost"`
	Bits     float64 `json:"bits"`
}

// AscendResult reports a completed ascension.
type AscendResult struct {
	NewLevel int `json:"new_level"`
}

// Service exposes progression operations.
type Service interface {
	Overview(ctx context.Context) *Overview
	BuyUpgrade(ctx context.Context, track Track) (*PurchaseResult, error)
	Ascend(ctx context.Context) (*AscendResult, error)
}

type service struct {
	store *state.Store
	bus   event.Bus
}

// NewService creates a new progression service.
func NewService(store *state.Store, bus event.Bus) Service {
	return &service{store: store, bus: bus}
}

// Overview returns current levels and next costs for every track.
func (s *service) Overview(_ context.Context) *Overview {
	var out Overview
	s.store.View(func(gs *domain.GameState) {
		out = Overview{
			Tracks: []TrackStatus{
				{Track: TrackClickPower, Level: gs.ClickPowerLevel, NextCost: ClickPowerCost(gs.ClickPowerLevel)},
				{Track: TrackLuck, Level: gs.LuckLevel, NextCost: LuckCost(gs.LuckLevel)},
				{Track: TrackAutoClicker, Level: gs.AutoClickerLevel, NextCost: AutoClickerCost(gs.AutoClickerLevel)},
			},
			AscensionLvl:  gs.AscensionLevel,
			AscensionCost: AscensionCost(gs.AscensionLevel),
		}
	})
	return &out
}

// BuyUpgrade spends the current level's cost and raises the track by
// one. Cheat mode jumps straight to the shortcut level for free.
func (s *service) BuyUpgrade(ctx context.Context, track Track) (*PurchaseResult, error) {
	var res PurchaseResult
	var cheated bool

	err := s.store.Update(func(gs *domain.GameState) error {
		if gs.CheatMode {
			applyCheatShortcut(gs, track)
			cheated = true
			res = PurchaseResult{Track: track, NewLevel: trackLevel(gs, track), Bits: gs.Bits}
			return nil
		}

		level, cost, err := trackCost(gs, track)
		if err != nil {
			return err
		}
		if err := economy.Spend(gs, cost); err != nil {
			return err
		}
		setTrackLevel(gs, track, level+1)

		res = PurchaseResult{Track: track, NewLevel: level + 1, Cost: cost, Bits: gs.Bits}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log := logger.FromContext(ctx)
	if cheated {
		log.Info(LogMsgCheatMaximized, "track", track, "level", res.NewLevel)
	} else {
		log.Info(LogMsgUpgradePurchased, "track", track, "level", res.NewLevel, "cost", res.Cost)
	}
	return &res, nil
}

// Ascend performs the prestige reset: balance, clicks, cookies,
// upgrades, and buffs are wiped; lifetime earnings, settings, quest
// claims, and cheat flags survive; the ascension tier rises by one.
func (s *service) Ascend(ctx context.Context) (*AscendResult, error) {
	var res AscendResult

	err := s.store.Update(func(gs *domain.GameState) error {
		cost := AscensionCost(gs.AscensionLevel)
		if !gs.CheatMode && gs.Bits < cost {
			return fmt.Errorf("%w: ascension needs %.0f bits", domain.ErrInsufficientFunds, cost)
		}

		next := gs.AscensionLevel + 1
		if gs.CheatMode && next < cheatAscensionLevel {
			next = cheatAscensionLevel
		}

		fresh := domain.NewGameState()
		fresh.AscensionLevel = next
		fresh.TotalBitsEarned = gs.TotalBitsEarned
		fresh.ClaimedQuestIDs = gs.ClaimedQuestIDs
		fresh.SoundEnabled = gs.SoundEnabled
		fresh.CheatMode = gs.CheatMode
		fresh.ChronoSpawnerUnlocked = gs.ChronoSpawnerUnlocked

		*gs = *fresh
		res = AscendResult{NewLevel: gs.AscensionLevel}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log := logger.FromContext(ctx)
	log.Info(LogMsgAscended, "new_level", res.NewLevel)
	if err := s.bus.Publish(ctx, event.NewAscendedEvent(res.NewLevel)); err != nil {
		log.Warn("event publish failed", "error", err)
	}

	return &res, nil
}

func trackCost(gs *domain.GameState, track Track) (int, float64, error) {
	switch track {
	case TrackClickPower:
		return gs.ClickPowerLevel, ClickPowerCost(gs.ClickPowerLevel), nil
	case TrackLuck:
		return gs.LuckLevel, LuckCost(gs.LuckLevel), nil
	case TrackAutoClicker:
		return gs.AutoClickerLevel, AutoClickerCost(gs.AutoClickerLevel), nil
	default:
		return 0, 0, fmt.Errorf("%w: %q", domain.ErrUnknownUpgrade, track)
	}
}

func trackLevel(gs *domain.GameState, track Track) int {
	switch track {
	case TrackClickPower:
		return gs.ClickPowerLevel
	case TrackLuck:
		return gs.LuckLevel
	case TrackAutoClicker:
		return gs.AutoClickerLevel
	}
	return 0
}

func setTrackLevel(gs *domain.GameState, track Track, level int) {
	switch track {
	case TrackClickPower:
		gs.ClickPowerLevel = level
	case TrackLuck:
		gs.LuckLevel = level
	case TrackAutoClicker:
		gs.AutoClickerLevel = level
	}
}

func applyCheatShortcut(gs *domain.GameState, track Track) {
	switch track {
	case TrackClickPower:
		gs.ClickPowerLevel = cheatClickPowerLevel
	case TrackLuck:
		gs.LuckLevel = cheatLuckLevel
	case TrackAutoClicker:
		gs.AutoClickerLevel = cheatAutoLevel
	}
}
