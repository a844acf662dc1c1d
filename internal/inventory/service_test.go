package inventory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/knedy989-code/Cookie-RNG/internal/domain"
	"github.com/knedy989-code/Cookie-RNG/internal/event"
	"github.com/knedy989-code/Cookie-RNG/internal/state"
)

func newTestService(gs *domain.GameState) (Service, *state.Store) {
	store := state.NewStore(gs)
	return NewService(store, event.NewMemoryBus()), store
}

func twoCookieState() *domain.GameState {
	gs := domain.NewGameState()
	gs.Cookies = []domain.Cookie{
		{InstanceID: "c1", Name: "Sugar Cookie", Rarity: domain.RarityCommon, BaseValue: 1, Durability: 10, MaxDurability: 50},
		{InstanceID: "c2", Name: "Ruby Glaze", Rarity: domain.RarityLegendary, BaseValue: 18, Durability: 100, MaxDurability: 2500},
	}
	return gs
}

func TestEquip(t *testing.T) {
	svc, store := newTestService(twoCookieState())

	require.NoError(t, svc.Equip(context.Background(), "c1"))
	store.View(func(gs *domain.GameState) {
		assert.Equal(t, "c1", gs.EquippedCookieID)
	})

	err := svc.Equip(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrCookieNotFound)
}

func TestSell_CreditsBalanceOnly(t *testing.T) {
	gs := twoCookieState()
	gs.EquippedCookieID = "c2"
	svc, store := newTestService(gs)

	res, err := svc.Sell(context.Background(), "c2")
	require.NoError(t, err)
	assert.Equal(t, 180.0, res.Value)

	store.View(func(gs *domain.GameState) {
		assert.Len(t, gs.Cookies, 1)
		assert.Equal(t, 180.0, gs.Bits)
		assert.Zero(t, gs.TotalBitsEarned, "sale proceeds are not earnings")
		assert.Empty(t, gs.EquippedCookieID, "equip slot cleared when sold")
	})
}

func TestSell_UnknownCookie(t *testing.T) {
	svc, _ := newTestService(twoCookieState())

	_, err := svc.Sell(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrCookieNotFound)
}

func TestRepairActive_HealsHalfPerCharge(t *testing.T) {
	gs := twoCookieState()
	gs.EquippedCookieID = "c1"

	require.True(t, RepairActive(gs, 1))
	assert.Equal(t, 35, gs.Cookies[0].Durability) // 10 + 25

	require.True(t, RepairActive(gs, 2))
	assert.Equal(t, 50, gs.Cookies[0].Durability, "capped at max durability")
}

func TestRepairActive_NoCookie(t *testing.T) {
	assert.False(t, RepairActive(domain.NewGameState(), 1))
}

func TestRepairActive_FallsBackToMostValuable(t *testing.T) {
	gs := twoCookieState()
	// Nothing explicitly equipped: the most valuable cookie is repaired.
	require.True(t, RepairActive(gs, 1))
	assert.Equal(t, 1350, gs.Cookies[1].Durability) // 100 + 1250
	assert.Equal(t, 10, gs.Cookies[0].Durability)
}

func TestRepairFull(t *testing.T) {
	gs := twoCookieState()
	gs.EquippedCookieID = "c1"

	require.True(t, RepairFull(gs))
	assert.Equal(t, 50, gs.Cookies[0].Durability)
}
