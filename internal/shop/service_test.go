package shop

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/knedy989-code/Cookie-RNG/internal/domain"
	"github.com/knedy989-code/Cookie-RNG/internal/event"
	"github.com/knedy989-code/Cookie-RNG/internal/state"
)

func sequenceRnd(values ...float64) func() float64 {
	i := 0
	return func() float64 {
		v := values[i%len(values)]
		i++
		return v
	}
}

func newTestService(gs *domain.GameState, rnd func() float64) (*service, *state.Store) {
	store := state.NewStore(gs)
	items := make(map[string]Item, len(Items()))
	for _, it := range Items() {
		items[it.ID] = it
	}
	svc := &service{
		store:   store,
		bus:     event.NewMemoryBus(),
		items:   items,
		bundles: Bundles(),
		rnd:     rnd,
		now:     time.Now,
	}
	return svc, store
}

func TestBuyItem_RepairKit(t *testing.T) {
	gs := domain.NewGameState()
	gs.Bits = 250
	gs.Cookies = []domain.Cookie{{InstanceID: "c1", Name: "A", BaseValue: 1, Durability: 10, MaxDurability: 100}}
	gs.EquippedCookieID = "c1"
	svc, store := newTestService(gs, sequenceRnd(0))

	res, err := svc.BuyItem(context.Background(), ItemRepairKit)
	require.NoError(t, err)
	assert.Equal(t, "Cookie repaired!", res.Message)

	store.View(func(gs *domain.GameState) {
		assert.Equal(t, 60, gs.Cookies[0].Durability) // 10 + floor(100*0.5)
		assert.Zero(t, gs.Bits)
	})
}

func TestBuyItem_RepairKitWithoutCookieStillCharges(t *testing.T) {
	gs := domain.NewGameState()
	gs.Bits = 250
	svc, store := newTestService(gs, sequenceRnd(0))

	res, err := svc.BuyItem(context.Background(), ItemRepairKit)
	require.NoError(t, err)
	assert.Equal(t, "Item purchased!", res.Message)

	store.View(func(gs *domain.GameState) {
		assert.Zero(t, gs.Bits)
	})
}

func TestBuyItem_Shield(t *testing.T) {
	gs := domain.NewGameState()
	gs.Bits = 1000
	svc, store := newTestService(gs, sequenceRnd(0))

	_, err := svc.BuyItem(context.Background(), ItemShield)
	require.NoError(t, err)
	_, err = svc.BuyItem(context.Background(), ItemShield)
	require.NoError(t, err)

	store.View(func(gs *domain.GameState) {
		assert.Equal(t, 200, gs.ShieldClicks)
		assert.Zero(t, gs.Bits)
	})
}

func TestBuyItem_SugarRush(t *testing.T) {
	gs := domain.NewGameState()
	gs.Bits = 400
	svc, store := newTestService(gs, sequenceRnd(0))

	_, err := svc.BuyItem(context.Background(), ItemSugarRush)
	require.NoError(t, err)

	store.View(func(gs *domain.GameState) {
		assert.Equal(t, 2.0, gs.Multiplier)
		assert.False(t, gs.MultiplierExpiresAt.IsZero())
	})
}

func TestBuyItem_Unknown(t *testing.T) {
	svc, _ := newTestService(domain.NewGameState(), sequenceRnd(0))

	_, err := svc.BuyItem(context.Background(), "mystery_meat")
	assert.ErrorIs(t, err, domain.ErrUnknownShopItem)
}

func TestBuyItem_InsufficientFunds(t *testing.T) {
	gs := domain.NewGameState()
	gs.Bits = 249
	svc, store := newTestService(gs, sequenceRnd(0))

	_, err := svc.BuyItem(context.Background(), ItemRepairKit)
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)

	store.View(func(gs *domain.GameState) {
		assert.Equal(t, 249.0, gs.Bits)
	})
}

func TestSpawnTick_SpawnsUnderChance(t *testing.T) {
	// First roll 0.1 passes the 15% gate; second roll 0.0 picks the
	// first bundle.
	svc, _ := newTestService(domain.NewGameState(), sequenceRnd(0.1, 0.0))

	require.NoError(t, svc.SpawnTick(context.Background()))

	offer := svc.ActiveOffer(context.Background())
	require.NotNil(t, offer)
	assert.Equal(t, BundleSafety, offer.Bundle.ID)
	assert.True(t, offer.ExpiresAt.After(time.Now()))
}

func TestSpawnTick_NoSpawnOverChance(t *testing.T) {
	svc, _ := newTestService(domain.NewGameState(), sequenceRnd(0.5))

	require.NoError(t, svc.SpawnTick(context.Background()))
	assert.Nil(t, svc.ActiveOffer(context.Background()))
}

func TestSpawnTick_ActiveOfferSuppressesRoll(t *testing.T) {
	svc, _ := newTestService(domain.NewGameState(), sequenceRnd(0.1, 0.99))

	require.NoError(t, svc.SpawnTick(context.Background()))
	first := svc.ActiveOffer(context.Background())
	require.NotNil(t, first)

	// Second tick must not replace the live offer.
	require.NoError(t, svc.SpawnTick(context.Background()))
	second := svc.ActiveOffer(context.Background())
	require.NotNil(t, second)
	assert.Equal(t, first.Bundle.ID, second.Bundle.ID)
}

func TestBuyBundle_NoOffer(t *testing.T) {
	svc, _ := newTestService(domain.NewGameState(), sequenceRnd(0.5))

	_, err := svc.BuyBundle(context.Background())
	assert.ErrorIs(t, err, domain.ErrNoActiveBundle)
}

func TestBuyBundle_ExpiredOffer(t *testing.T) {
	svc, _ := newTestService(domain.NewGameState(), sequenceRnd(0))
	svc.offer = &Offer{Bundle: Bundles()[0], ExpiresAt: time.Now().Add(-time.Second)}

	_, err := svc.BuyBundle(context.Background())
	assert.ErrorIs(t, err, domain.ErrNoActiveBundle)
	assert.Nil(t, svc.offer)
}

func TestBuyBundle_MegaAppliesEverything(t *testing.T) {
	gs := domain.NewGameState()
	gs.Bits = 1200
	gs.Cookies = []domain.Cookie{{InstanceID: "c1", Name: "A", BaseValue: 1, Durability: 0, MaxDurability: 100}}
	gs.EquippedCookieID = "c1"
	svc, store := newTestService(gs, sequenceRnd(0))
	svc.offer = &Offer{Bundle: Bundles()[2], ExpiresAt: time.Now().Add(time.Minute)}

	before := time.Now()
	res, err := svc.BuyBundle(context.Background())
	require.NoError(t, err)
	assert.Equal(t, BundleMega, res.BundleID)
	assert.Equal(t, 1200.0, res.Cost)
	assert.Nil(t, svc.offer) // offer consumed

	store.View(func(gs *domain.GameState) {
		assert.Zero(t, gs.Bits)
		// 2 repair charges heal floor(100*0.5)*2 = 100, capped at max.
		assert.Equal(t, 100, gs.Cookies[0].Durability)
		assert.Equal(t, 200, gs.ShieldClicks)
		assert.Equal(t, 2.0, gs.Multiplier)
		// 1 sugar vial extends by 60s.
		assert.True(t, gs.MultiplierExpiresAt.After(before.Add(59*time.Second)))
	})
}

func TestBuyBundle_InsufficientFundsKeepsOffer(t *testing.T) {
	gs := domain.NewGameState()
	gs.Bits = 100
	svc, _ := newTestService(gs, sequenceRnd(0))
	svc.offer = &Offer{Bundle: Bundles()[0], ExpiresAt: time.Now().Add(time.Minute)}

	_, err := svc.BuyBundle(context.Background())
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	assert.NotNil(t, svc.offer)
}
