// Package inventory manages the owned cookie collection: equipping,
// selling, and repairs applied by consumables and crates.
package inventory

import (
	"context"
	"fmt"
	"math"

	"github.com/knedy989-code/Cookie-RNG/internal/domain"
	"github.com/knedy989-code/Cookie-RNG/internal/economy"
	"github.com/knedy989-code/Cookie-RNG/internal/event"
	"github.com/knedy989-code/Cookie-RNG/internal/logger"
	"github.com/knedy989-code/Cookie-RNG/internal/state"
)

// SellResult reports a completed sale.
type SellResult struct {
	CookieName string  `json:"cookie_name"`
	Value      float64 `json:"value"`
	Bits       float64 `json:"bits"`
}

// Service exposes collection operations.
type Service interface {
	Equip(ctx context.Context, instanceID string) error
	Sell(ctx context.Context, instanceID string) (*SellResult, error)
}

type service struct {
	store *state.Store
	bus   event.Bus
}

// NewService creates a new inventory service.
func NewService(store *state.Store, bus event.Bus) Service {
	return &service{store: store, bus: bus}
}

// Equip makes the given cookie the click target.
func (s *service) Equip(ctx context.Context, instanceID string) error {
	err := s.store.Update(func(gs *domain.GameState) error {
		if gs.CookieByID(instanceID) == nil {
			return fmt.Errorf("%w: %s", domain.ErrCookieNotFound, instanceID)
		}
		gs.EquippedCookieID = instanceID
		return nil
	})
	if err != nil {
		return err
	}

	logger.FromContext(ctx).Info(LogMsgCookieEquipped, "instance_id", instanceID)
	return nil
}

// Sell removes the cookie and credits floor(baseValue*10) Bits. The
// proceeds do not count toward lifetime earnings.
func (s *service) Sell(ctx context.Context, instanceID string) (*SellResult, error) {
	var res SellResult

	err := s.store.Update(func(gs *domain.GameState) error {
		cookie := gs.CookieByID(instanceID)
		if cookie == nil {
			return fmt.Errorf("%w: %s", domain.ErrCookieNotFound, instanceID)
		}

		value := math.Floor(cookie.BaseValue * SellValueRate)
		res = SellResult{CookieName: cookie.Name, Value: value}

		gs.RemoveCookie(instanceID)
		economy.Credit(gs, value)
		res.Bits = gs.Bits
		return nil
	})
	if err != nil {
		return nil, err
	}

	log := logger.FromContext(ctx)
	log.Info(LogMsgCookieSold, "cookie", res.CookieName, "value", res.Value)
	if err := s.bus.Publish(ctx, event.NewCookieSoldEvent(res.CookieName, res.Value)); err != nil {
		log.Warn("event publish failed", "error", err)
	}

	return &res, nil
}

// RepairActive heals the active cookie by half its max durability per
// repair charge, capped at the ceiling. Returns false when there is no
// cookie to repair.
func RepairActive(gs *domain.GameState, charges int) bool {
	active := gs.ActiveCookie()
	if active == nil || charges <= 0 {
		return false
	}
	heal := int(math.Floor(float64(active.MaxDurability)*RepairFraction)) * charges
	active.Durability = min(active.MaxDurability, active.Durability+heal)
	return true
}

// RepairFull restores the active cookie to max durability.
func RepairFull(gs *domain.GameState) bool {
	active := gs.ActiveCookie()
	if active == nil {
		return false
	}
	active.Durability = active.MaxDurability
	return true
}
