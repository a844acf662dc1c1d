// Package shop sells consumables and runs the limited-time bundle
// spawner. The active offer is ephemeral service state, not part of the
// persisted aggregate: a restart simply forfeits the offer.
package shop

import (
	"context"
	"fmt"
	"sync"
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

// PurchaseResult reports a completed consumable purchase.
type PurchaseResult struct {
	ItemID  string  `json:"item_id"`
	Message string  `json:"message"`
	Bits    float64 `json:"bits"`
}

// Offer is the currently spawned bundle plus its deadline.
type Offer struct {
	Bundle    Bundle    `json:"bundle"`
	ExpiresAt time.Time `json:"expires_at"`
}

// BundleResult reports a completed bundle purchase.
type BundleResult struct {
	BundleID string  `json:"bundle_id"`
	Cost     float64 `json:"cost"`
	Bits     float64 `json:"bits"`
}

// Service exposes the item shop and bundle offers.
type Service interface {
	Items(ctx context.Context) []Item
	BuyItem(ctx context.Context, itemID string) (*PurchaseResult, error)
	ActiveOffer(ctx context.Context) *Offer
	BuyBundle(ctx context.Context) (*BundleResult, error)
	SpawnTick(ctx context.Context) error
}

type service struct {
	store   *state.Store
	bus     event.Bus
	items   map[string]Item
	bundles []Bundle

	mu    sync.Mutex
	offer *Offer

	rnd func() float64
	now func() time.Time
}

// NewService creates a new shop service.
func NewService(store *state.Store, bus event.Bus) Service {
	items := make(map[string]Item, len(Items()))
	for _, it := range Items() {
		items[it.ID] = it
	}
	return &service{
		store:   store,
		bus:     bus,
		items:   items,
		bundles: Bundles(),
		rnd:     utils.RandomFloat,
		now:     time.Now,
	}
}

// Items returns the consumable catalog.
func (s *service) Items(_ context.Context) []Item {
	return Items()
}

// BuyItem spends the item cost and applies its effect. A repair kit
// bought with no cookie in the collection still charges; the spend is
// the gamble.
func (s *service) BuyItem(ctx context.Context, itemID string) (*PurchaseResult, error) {
	item, ok := s.items[itemID]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownShopItem, itemID)
	}

	var res PurchaseResult
	err := s.store.Update(func(gs *domain.GameState) error {
		if err := economy.Spend(gs, item.Cost); err != nil {
			return err
		}

		msg := "Item purchased!"
		switch item.ID {
		case ItemRepairKit:
			if inventory.RepairActive(gs, 1) {
				msg = "Cookie repaired!"
			}
		case ItemShield:
			effects.AddShield(gs, ShieldClicksPerCharge)
			msg = "Titanium Wrapper applied! Next 100 clicks safe."
		case ItemSugarRush:
			effects.GrantMultiplier(gs, SugarRushMultiplier, SugarRushDuration, s.now())
			msg = "Sugar Rush! 2x Click Power for 60s."
		}

		res = PurchaseResult{ItemID: item.ID, Message: msg, Bits: gs.Bits}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgItemPurchased, "item", item.ID, "cost", item.Cost)
	return &res, nil
}

// ActiveOffer returns the live bundle offer, or nil when none is up or
// the deadline passed.
func (s *service) ActiveOffer(_ context.Context) *Offer {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.offer == nil {
		return nil
	}
	if s.now().After(s.offer.ExpiresAt) {
		s.offer = nil
		return nil
	}
	cp := *s.offer
	return &cp
}

// BuyBundle spends the active offer's discounted cost and applies its
// aggregated contents in one update. The offer is consumed either way
// once payment clears.
func (s *service) BuyBundle(ctx context.Context) (*BundleResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.offer == nil || s.now().After(s.offer.ExpiresAt) {
		s.offer = nil
		return nil, domain.ErrNoActiveBundle
	}
	bundle := s.offer.Bundle

	var repairs, shields, sugar int
	for _, bi := range bundle.Items {
		switch bi.ItemID {
		case ItemRepairKit:
			repairs += bi.Count
		case ItemShield:
			shields += bi.Count
		case ItemSugarRush:
			sugar += bi.Count
		}
	}

	var res BundleResult
	err := s.store.Update(func(gs *domain.GameState) error {
		if err := economy.Spend(gs, bundle.Cost); err != nil {
			return err
		}

		if repairs > 0 {
			inventory.RepairActive(gs, repairs)
		}
		if shields > 0 {
			effects.AddShield(gs, shields*ShieldClicksPerCharge)
		}
		if sugar > 0 {
			effects.GrantMultiplier(gs, SugarRushMultiplier, time.Duration(sugar)*SugarRushDuration, s.now())
		}

		res = BundleResult{BundleID: bundle.ID, Cost: bundle.Cost, Bits: gs.Bits}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.offer = nil

	log := logger.FromContext(ctx)
	log.Info(LogMsgBundlePurchased, "bundle", bundle.ID, "cost", bundle.Cost)
	if err := s.bus.Publish(ctx, event.NewBundlePurchasedEvent(bundle.ID, bundle.Cost)); err != nil {
		log.Warn("event publish failed", "error", err)
	}

	return &res, nil
}

// SpawnTick rolls for a new bundle offer. Scheduled every 10 seconds;
// a live offer suppresses the roll.
func (s *service) SpawnTick(ctx context.Context) error {
	s.mu.Lock()

	if s.offer != nil && s.now().Before(s.offer.ExpiresAt) {
		s.mu.Unlock()
		return nil
	}
	s.offer = nil

	if s.rnd() >= BundleSpawnChance {
		s.mu.Unlock()
		return nil
	}

	idx := int(s.rnd() * float64(len(s.bundles)))
	if idx >= len(s.bundles) {
		idx = len(s.bundles) - 1
	}
	bundle := s.bundles[idx]
	s.offer = &Offer{Bundle: bundle, ExpiresAt: s.now().Add(bundle.Duration)}
	s.mu.Unlock()

	log := logger.FromContext(ctx)
	log.Info(LogMsgBundleSpawned, "bundle", bundle.ID)
	if err := s.bus.Publish(ctx, event.NewBundleSpawnedEvent(bundle.ID)); err != nil {
		log.Warn("event publish failed", "error", err)
	}
	return nil
}
