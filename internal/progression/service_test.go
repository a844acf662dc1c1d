package progression

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/knedy989-code/Cookie-RNG/internal/domain"
	"github.com/knedy989-code/Cookie-RNG/internal/event"
	"github.com/knedy989-code/Cookie-RNG/internal/state"
)

func newTestService(gs *domain.GameState) (Service, *state.Store, *event.MemoryBus) {
	store := state.NewStore(gs)
	bus := event.NewMemoryBus()
	return NewService(store, bus), store, bus
}

func TestBuyUpgrade_ClickPower(t *testing.T) {
	gs := domain.NewGameState()
	gs.Bits = 100
	svc, store, _ := newTestService(gs)

	// Level 1 costs floor(50 * 1.5^1) = 75.
	res, err := svc.BuyUpgrade(context.Background(), TrackClickPower)
	require.NoError(t, err)
	assert.Equal(t, 2, res.NewLevel)
	assert.Equal(t, 75.0, res.Cost)

	store.View(func(gs *domain.GameState) {
		assert.Equal(t, 2, gs.ClickPowerLevel)
		assert.Equal(t, 25.0, gs.Bits)
	})
}

func TestBuyUpgrade_InsufficientFundsLeavesLevelUntouched(t *testing.T) {
	gs := domain.NewGameState()
	gs.Bits = 249
	svc, store, _ := newTestService(gs)

	_, err := svc.BuyUpgrade(context.Background(), TrackLuck)
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)

	store.View(func(gs *domain.GameState) {
		assert.Zero(t, gs.LuckLevel)
		assert.Equal(t, 249.0, gs.Bits)
	})
}

func TestBuyUpgrade_UnknownTrack(t *testing.T) {
	svc, _, _ := newTestService(domain.NewGameState())

	_, err := svc.BuyUpgrade(context.Background(), "double_dip")
	assert.ErrorIs(t, err, domain.ErrUnknownUpgrade)
}

func TestBuyUpgrade_CheatShortcutsAreFree(t *testing.T) {
	gs := domain.NewGameState()
	gs.CheatMode = true
	svc, store, _ := newTestService(gs)

	res, err := svc.BuyUpgrade(context.Background(), TrackLuck)
	require.NoError(t, err)
	assert.Equal(t, 5, res.NewLevel)
	assert.Zero(t, res.Cost)

	res, err = svc.BuyUpgrade(context.Background(), TrackClickPower)
	require.NoError(t, err)
	assert.Equal(t, 100, res.NewLevel)

	store.View(func(gs *domain.GameState) {
		assert.Equal(t, 5, gs.LuckLevel)
		assert.Equal(t, 100, gs.ClickPowerLevel)
		assert.Zero(t, gs.Bits)
	})
}

func TestLuckCost_TableThenExponentialTail(t *testing.T) {
	assert.Equal(t, 250.0, LuckCost(0))
	assert.Equal(t, 888.0, LuckCost(4))
	assert.Equal(t, 1000.0, LuckCost(5))
	// floor(1000 * 1.5^2) = 2250
	assert.Equal(t, 2250.0, LuckCost(6))
}

func TestAscend_AtExactCost(t *testing.T) {
	gs := domain.NewGameState()
	gs.Bits = 100000
	gs.TotalBitsEarned = 250000
	gs.ClickCount = 1234
	gs.ClickPowerLevel = 7
	gs.LuckLevel = 3
	gs.AutoClickerLevel = 2
	gs.ShieldClicks = 40
	gs.Multiplier = 5
	gs.CheatMode = false
	gs.SoundEnabled = false
	gs.ClaimedQuestIDs = []string{"q_click_1"}
	gs.Cookies = []domain.Cookie{{InstanceID: "c1", Name: "A", BaseValue: 1}}
	gs.EquippedCookieID = "c1"
	gs.UnlockedRarities = []domain.Rarity{domain.RarityRare}
	svc, store, _ := newTestService(gs)

	res, err := svc.Ascend(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, res.NewLevel)

	store.View(func(gs *domain.GameState) {
		assert.Zero(t, gs.Bits)
		assert.Zero(t, gs.ClickCount)
		assert.Empty(t, gs.Cookies)
		assert.Empty(t, gs.EquippedCookieID)
		assert.Empty(t, gs.UnlockedRarities)
		assert.Equal(t, 1, gs.ClickPowerLevel)
		assert.Zero(t, gs.LuckLevel)
		assert.Zero(t, gs.AutoClickerLevel)
		assert.Zero(t, gs.ShieldClicks)
		assert.Equal(t, 1.0, gs.Multiplier)
		assert.Equal(t, 1, gs.AscensionLevel)

		// Survivors of the reset.
		assert.Equal(t, 250000.0, gs.TotalBitsEarned)
		assert.False(t, gs.SoundEnabled)
		assert.Equal(t, []string{"q_click_1"}, gs.ClaimedQuestIDs)
	})
}

func TestAscend_OneBitShort(t *testing.T) {
	gs := domain.NewGameState()
	gs.Bits = 99999
	svc, store, _ := newTestService(gs)

	_, err := svc.Ascend(context.Background())
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)

	store.View(func(gs *domain.GameState) {
		assert.Equal(t, 99999.0, gs.Bits)
		assert.Zero(t, gs.AscensionLevel)
	})
}

func TestAscend_CheatJumpsToShortcutTier(t *testing.T) {
	gs := domain.NewGameState()
	gs.CheatMode = true
	svc, store, _ := newTestService(gs)

	res, err := svc.Ascend(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, res.NewLevel)

	store.View(func(gs *domain.GameState) {
		assert.Equal(t, 2, gs.AscensionLevel)
		assert.True(t, gs.CheatMode)
	})
}

func TestAscend_PublishesEvent(t *testing.T) {
	gs := domain.NewGameState()
	gs.Bits = 100000
	svc, _, bus := newTestService(gs)

	var got event.Event
	bus.Subscribe(event.TypeAscended, func(_ context.Context, e event.Event) error {
		got = e
		return nil
	})

	_, err := svc.Ascend(context.Background())
	require.NoError(t, err)

	payload, ok := got.Payload.(event.AscendedPayloadV1)
	require.True(t, ok)
	assert.Equal(t, 1, payload.NewLevel)
}

func TestOverview_ReportsLevelsAndNextCosts(t *testing.T) {
	gs := domain.NewGameState()
	gs.LuckLevel = 4
	gs.AscensionLevel = 1
	svc, _, _ := newTestService(gs)

	ov := svc.Overview(context.Background())
	require.Len(t, ov.Tracks, 3)
	assert.Equal(t, 888.0, ov.Tracks[1].NextCost)
	assert.Equal(t, 500000.0, ov.AscensionCost)
}
