package oracle

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/knedy989-code/Cookie-RNG/internal/domain"
	"github.com/knedy989-code/Cookie-RNG/internal/event"
	"github.com/knedy989-code/Cookie-RNG/internal/state"
)

type stubClient struct {
	gen *Generated
	err error
}

func (c *stubClient) Generate(_ context.Context) (*Generated, error) {
	return c.gen, c.err
}

func newTestService(gs *domain.GameState, client Client) (Service, *state.Store) {
	store := state.NewStore(gs)
	return NewService(store, event.NewMemoryBus(), client), store
}

func TestRoll_MintsGeneratedCookie(t *testing.T) {
	gs := domain.NewGameState()
	gs.Bits = 1500000
	client := &stubClient{gen: &Generated{
		Name:        "Nebula Snap",
		Description: "Baked in the heart of a dying star.",
		ColorHex:    "#7C3AED",
		BaseValue:   150,
	}}
	svc, store := newTestService(gs, client)

	res, err := svc.Roll(context.Background())
	require.NoError(t, err)
	assert.False(t, res.Fallback)
	assert.Equal(t, "Nebula Snap", res.Cookie.Name)
	assert.Equal(t, domain.RarityDivine, res.Cookie.Rarity)
	assert.Equal(t, 25000, res.Cookie.Durability)
	assert.True(t, res.Cookie.AIGenerated)

	store.View(func(gs *domain.GameState) {
		assert.Equal(t, 500000.0, gs.Bits)
		require.Len(t, gs.Cookies, 1)
		assert.Equal(t, gs.Cookies[0].InstanceID, gs.EquippedCookieID)
		assert.Contains(t, gs.UnlockedRarities, domain.RarityDivine)
	})
}

func TestRoll_BackendFailureServesGlitchCookie(t *testing.T) {
	gs := domain.NewGameState()
	gs.Bits = 1000000
	client := &stubClient{err: errors.New("oven on fire")}
	svc, store := newTestService(gs, client)

	res, err := svc.Roll(context.Background())
	require.NoError(t, err)
	assert.True(t, res.Fallback)
	assert.Equal(t, "Glitch Cookie", res.Cookie.Name)
	assert.Equal(t, 77.0, res.Cookie.BaseValue)
	assert.Equal(t, "#333333", res.Cookie.ColorHex)
	assert.Equal(t, domain.RarityDivine, res.Cookie.Rarity)

	store.View(func(gs *domain.GameState) {
		assert.Zero(t, gs.Bits) // the bake is still paid for
		require.Len(t, gs.Cookies, 1)
	})
}

func TestRoll_InsufficientFundsSkipsBackendCall(t *testing.T) {
	gs := domain.NewGameState()
	gs.Bits = 999999
	called := false
	client := clientFunc(func(_ context.Context) (*Generated, error) {
		called = true
		return nil, nil
	})
	svc, store := newTestService(gs, client)

	_, err := svc.Roll(context.Background())
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	assert.False(t, called)

	store.View(func(gs *domain.GameState) {
		assert.Equal(t, 999999.0, gs.Bits)
		assert.Empty(t, gs.Cookies)
	})
}

func TestRoll_CheatModeBakesForFree(t *testing.T) {
	gs := domain.NewGameState()
	gs.CheatMode = true
	client := &stubClient{gen: &Generated{Name: "Free Lunch", BaseValue: 90, ColorHex: "#FFFFFF"}}
	svc, store := newTestService(gs, client)

	_, err := svc.Roll(context.Background())
	require.NoError(t, err)

	store.View(func(gs *domain.GameState) {
		assert.Zero(t, gs.Bits)
		require.Len(t, gs.Cookies, 1)
	})
}

type clientFunc func(ctx context.Context) (*Generated, error)

func (f clientFunc) Generate(ctx context.Context) (*Generated, error) { return f(ctx) }

func TestHTTPClient_DecodesResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"name":"Aurora Wafer","description":"Shimmers.","color_hex":"#00FFEE","base_value":120}`))
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, "sk-test", time.Second)
	gen, err := client.Generate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Aurora Wafer", gen.Name)
	assert.Equal(t, 120.0, gen.BaseValue)
}

func TestHTTPClient_RejectsIncompleteResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"description":"nameless"}`))
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, "", time.Second)
	_, err := client.Generate(context.Background())
	assert.Error(t, err)
}

func TestHTTPClient_RejectsErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, "", time.Second)
	_, err := client.Generate(context.Background())
	assert.Error(t, err)
}
