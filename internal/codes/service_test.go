package codes

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

func newTestService(gs *domain.GameState) (Service, *state.Store) {
	store := state.NewStore(gs)
	return NewService(store, event.NewMemoryBus()), store
}

func TestRedeem_GodMode(t *testing.T) {
	gs := domain.NewGameState()
	gs.Bits = 42
	svc, store := newTestService(gs)

	res, err := svc.Redeem(context.Background(), "chronocookie")
	require.NoError(t, err)
	assert.Equal(t, EffectGodMode, res.Effect)

	store.View(func(gs *domain.GameState) {
		assert.Equal(t, 999999999999999.0, gs.Bits)
		assert.True(t, gs.CheatMode)
	})
}

func TestRedeem_NormalizesInput(t *testing.T) {
	svc, store := newTestService(domain.NewGameState())

	_, err := svc.Redeem(context.Background(), "  ChronoCookie \n")
	require.NoError(t, err)

	store.View(func(gs *domain.GameState) {
		assert.True(t, gs.CheatMode)
	})
}

func TestRedeem_EternalPower(t *testing.T) {
	gs := domain.NewGameState()
	gs.Bits = 100
	svc, store := newTestService(gs)

	before := time.Now()
	res, err := svc.Redeem(context.Background(), "chronocookie1")
	require.NoError(t, err)
	assert.Equal(t, EffectEternalPower, res.Effect)

	store.View(func(gs *domain.GameState) {
		// Grant is a balance credit, not income.
		assert.Equal(t, 5000100.0, gs.Bits)
		assert.Zero(t, gs.TotalBitsEarned)

		require.Len(t, gs.Cookies, 1)
		chrono := gs.Cookies[0]
		assert.Equal(t, "Eternal Chrono Cookie", chrono.Name)
		assert.Equal(t, domain.RarityDivine, chrono.Rarity)
		assert.True(t, chrono.Indestructible())
		assert.Equal(t, chrono.InstanceID, gs.EquippedCookieID)

		assert.Equal(t, 5.0, gs.Multiplier)
		assert.True(t, gs.MultiplierExpiresAt.After(before.Add(99*365*24*time.Hour)))
		assert.True(t, gs.ChronoSpawnerUnlocked)
		assert.Contains(t, gs.UnlockedRarities, domain.RarityDivine)
		assert.False(t, gs.CheatMode)
	})
}

func TestRedeem_UnknownCodeMutatesNothing(t *testing.T) {
	gs := domain.NewGameState()
	gs.Bits = 42
	svc, store := newTestService(gs)

	_, err := svc.Redeem(context.Background(), "opensesame")
	assert.ErrorIs(t, err, domain.ErrUnknownCode)

	store.View(func(gs *domain.GameState) {
		assert.Equal(t, 42.0, gs.Bits)
		assert.False(t, gs.CheatMode)
		assert.Empty(t, gs.Cookies)
	})
}

func TestSpawnChrono_RequiresUnlock(t *testing.T) {
	svc, store := newTestService(domain.NewGameState())

	_, err := svc.SpawnChrono(context.Background())
	assert.ErrorIs(t, err, domain.ErrSpawnerLocked)

	store.View(func(gs *domain.GameState) {
		assert.Empty(t, gs.Cookies)
	})
}

func TestSpawnChrono_MintsReplicaWithoutEquipping(t *testing.T) {
	gs := domain.NewGameState()
	gs.ChronoSpawnerUnlocked = true
	gs.Cookies = []domain.Cookie{{InstanceID: "c1", Name: "A", BaseValue: 1}}
	gs.EquippedCookieID = "c1"
	svc, store := newTestService(gs)

	res, err := svc.SpawnChrono(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Replicated Chrono Cookie", res.Cookie.Name)
	assert.True(t, res.Cookie.Indestructible())

	store.View(func(gs *domain.GameState) {
		require.Len(t, gs.Cookies, 2)
		assert.Equal(t, "c1", gs.EquippedCookieID) // equip untouched
		assert.Contains(t, gs.UnlockedRarities, domain.RarityDivine)
	})
}

func TestSpawnChrono_UniqueInstanceIDs(t *testing.T) {
	gs := domain.NewGameState()
	gs.ChronoSpawnerUnlocked = true
	svc, store := newTestService(gs)

	a, err := svc.SpawnChrono(context.Background())
	require.NoError(t, err)
	b, err := svc.SpawnChrono(context.Background())
	require.NoError(t, err)
	assert.NotEqual(t, a.Cookie.InstanceID, b.Cookie.InstanceID)

	store.View(func(gs *domain.GameState) {
		assert.Len(t, gs.Cookies, 2)
	})
}
