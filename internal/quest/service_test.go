package quest

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

func TestList_ProgressFromAggregate(t *testing.T) {
	gs := domain.NewGameState()
	gs.ClickCount = 120
	gs.TotalBitsEarned = 4000
	gs.LuckLevel = 2
	gs.AutoClickerLevel = 3
	gs.Cookies = []domain.Cookie{
		{InstanceID: "a", Name: "Plain Cookie"},
		{InstanceID: "b", Name: "Plain Cookie"},
		{InstanceID: "c", Name: "Sugar Cookie"},
	}
	svc, _ := newTestService(gs)

	byID := map[string]Status{}
	for _, st := range svc.List(context.Background()) {
		byID[st.ID] = st
	}

	assert.Equal(t, 120.0, byID["q_click_1"].Progress)
	assert.True(t, byID["q_click_1"].Complete)
	assert.False(t, byID["q_click_2"].Complete) // needs 250

	assert.True(t, byID["q_earn_1"].Complete)
	assert.False(t, byID["q_earn_2"].Complete)

	// Duplicate names collapse to one collection entry.
	assert.Equal(t, 2.0, byID["q_col_1"].Progress)

	// 1 base click power + 2 luck + 3 auto = 6.
	assert.Equal(t, 6.0, byID["q_upg_1"].Progress)
	assert.True(t, byID["q_upg_1"].Complete)
}

func TestClaim_PaysRewardIntoLifetimeEarnings(t *testing.T) {
	gs := domain.NewGameState()
	gs.ClickCount = 50
	svc, store := newTestService(gs)

	res, err := svc.Claim(context.Background(), "q_click_1")
	require.NoError(t, err)
	assert.Equal(t, 200.0, res.Reward)

	store.View(func(gs *domain.GameState) {
		assert.Equal(t, 200.0, gs.Bits)
		assert.Equal(t, 200.0, gs.TotalBitsEarned)
		assert.True(t, gs.QuestClaimed("q_click_1"))
	})
}

func TestClaim_Incomplete(t *testing.T) {
	gs := domain.NewGameState()
	gs.ClickCount = 49
	svc, store := newTestService(gs)

	_, err := svc.Claim(context.Background(), "q_click_1")
	assert.ErrorIs(t, err, domain.ErrQuestNotComplete)

	store.View(func(gs *domain.GameState) {
		assert.Zero(t, gs.Bits)
		assert.Empty(t, gs.ClaimedQuestIDs)
	})
}

func TestClaim_DoubleClaimRejected(t *testing.T) {
	gs := domain.NewGameState()
	gs.ClickCount = 50
	svc, store := newTestService(gs)

	_, err := svc.Claim(context.Background(), "q_click_1")
	require.NoError(t, err)

	_, err = svc.Claim(context.Background(), "q_click_1")
	assert.ErrorIs(t, err, domain.ErrQuestAlreadyClaimed)

	store.View(func(gs *domain.GameState) {
		assert.Equal(t, 200.0, gs.Bits) // paid once
	})
}

func TestClaim_Unknown(t *testing.T) {
	svc, _ := newTestService(domain.NewGameState())

	_, err := svc.Claim(context.Background(), "q_sleep_1")
	assert.ErrorIs(t, err, domain.ErrUnknownQuest)
}

func TestClaim_RewardCanCompleteNextEarnQuest(t *testing.T) {
	gs := domain.NewGameState()
	gs.TotalBitsEarned = 950
	gs.ClickCount = 50
	svc, _ := newTestService(gs)

	// q_click_1 pays 200, pushing lifetime earnings past 1,000.
	_, err := svc.Claim(context.Background(), "q_click_1")
	require.NoError(t, err)

	_, err = svc.Claim(context.Background(), "q_earn_1")
	require.NoError(t, err)
}

func TestClaim_PublishesEvent(t *testing.T) {
	gs := domain.NewGameState()
	gs.ClickCount = 50
	store := state.NewStore(gs)
	bus := event.NewMemoryBus()
	svc := NewService(store, bus)

	var got event.Event
	bus.Subscribe(event.TypeQuestClaimed, func(_ context.Context, e event.Event) error {
		got = e
		return nil
	})

	_, err := svc.Claim(context.Background(), "q_click_1")
	require.NoError(t, err)

	payload, ok := got.Payload.(event.QuestClaimedPayloadV1)
	require.True(t, ok)
	assert.Equal(t, "q_click_1", payload.QuestID)
	assert.Equal(t, 200.0, payload.Reward)
}
