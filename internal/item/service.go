// Package item owns the roll pools and cookie acquisition: weighted
// rarity draw, template pick, instance minting, and the atomic
// spend-and-equip of a roll.
package item

import (
	"context"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/knedy989-code/Cookie-RNG/internal/domain"
	"github.com/knedy989-code/Cookie-RNG/internal/economy"
	"github.com/knedy989-code/Cookie-RNG/internal/event"
	"github.com/knedy989-code/Cookie-RNG/internal/logger"
	"github.com/knedy989-code/Cookie-RNG/internal/rarity"
	"github.com/knedy989-code/Cookie-RNG/internal/state"
	"github.com/knedy989-code/Cookie-RNG/internal/utils"
)

// RollResult reports a completed roll.
type RollResult struct {
	Cookie domain.Cookie `json:"cookie"`
	Cost   float64       `json:"cost"`
	Bits   float64       `json:"bits"`
}

// Service resolves rolls against the pool definitions.
type Service interface {
	Roll(ctx context.Context, pool Pool) (*RollResult, error)
	PoolDefinitions() map[Pool]Definition
}

type cacheKey struct {
	pool   Pool
	rarity domain.Rarity
}

type service struct {
	store *state.Store
	bus   event.Bus
	pools map[Pool]Definition
	cache *lru.Cache[cacheKey, []domain.CookieTemplate]
	rnd   func() float64
	now   func() time.Time
}

// NewService creates a roll service over the built-in pools.
func NewService(store *state.Store, bus event.Bus) Service {
	cache, _ := lru.New[cacheKey, []domain.CookieTemplate](templateCacheSize)
	return &service{
		store: store,
		bus:   bus,
		pools: Pools(),
		cache: cache,
		rnd:   utils.RandomFloat,
		now:   time.Now,
	}
}

// PoolDefinitions exposes the pool table for the HTTP surface.
func (s *service) PoolDefinitions() map[Pool]Definition {
	return s.pools
}

// Roll spends the pool cost, draws a rarity and template, mints the
// instance, and auto-equips it. The whole operation is one atomic state
// update; an unaffordable roll leaves the aggregate untouched.
func (s *service) Roll(ctx context.Context, pool Pool) (*RollResult, error) {
	def, ok := s.pools[pool]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownPool, pool)
	}

	var res RollResult
	err := s.store.Update(func(gs *domain.GameState) error {
		if err := economy.Spend(gs, def.Cost); err != nil {
			return err
		}

		tier, err := rarity.Resolve(def.Weights, gs.LuckLevel, s.rnd)
		if err != nil {
			return err
		}

		tpl := s.pickTemplate(def, tier)
		cookie := s.mintInstance(tpl)

		gs.Cookies = append(gs.Cookies, cookie)
		gs.EquippedCookieID = cookie.InstanceID
		gs.UnlockRarity(cookie.Rarity)

		res = RollResult{Cookie: cookie, Cost: def.Cost, Bits: gs.Bits}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log := logger.FromContext(ctx)
	log.Info(LogMsgCookieRolled, "pool", pool, "cookie", res.Cookie.Name, "rarity", res.Cookie.Rarity)
	if err := s.bus.Publish(ctx, event.NewCookieRolledEvent(string(pool), res.Cookie.Name, res.Cookie.Rarity, def.Cost)); err != nil {
		log.Warn("event publish failed", "error", err)
	}

	return &res, nil
}

// pickTemplate chooses uniformly among the pool's templates of the
// rolled rarity. A tier with no templates falls back to the pool's
// first entry, so a roll always yields a cookie.
func (s *service) pickTemplate(def Definition, tier domain.Rarity) domain.CookieTemplate {
	candidates := s.templatesFor(def, tier)
	if len(candidates) == 0 {
		return def.Templates[0]
	}
	return candidates[utils.PickIndex(len(candidates))]
}

func (s *service) templatesFor(def Definition, tier domain.Rarity) []domain.CookieTemplate {
	key := cacheKey{pool: def.Pool, rarity: tier}
	if cached, ok := s.cache.Get(key); ok {
		return cached
	}

	var out []domain.CookieTemplate
	for _, tpl := range def.Templates {
		if tpl.Rarity == tier {
			out = append(out, tpl)
		}
	}
	s.cache.Add(key, out)
	return out
}

// mintInstance stamps a template into an owned cookie. Durability comes
// from the template's own rarity, not the rolled tier.
func (s *service) mintInstance(tpl domain.CookieTemplate) domain.Cookie {
	now := s.now()
	maxDur := domain.RarityMaxDurability[tpl.Rarity]
	if maxDur == 0 {
		maxDur = domain.RarityMaxDurability[domain.RarityCommon]
	}
	return domain.Cookie{
		InstanceID:    fmt.Sprintf("%s_%d", tpl.ID, now.UnixNano()),
		TemplateID:    tpl.ID,
		Name:          tpl.Name,
		Description:   tpl.Description,
		Rarity:        tpl.Rarity,
		BaseValue:     tpl.BaseValue,
		ColorHex:      tpl.ColorHex,
		Durability:    maxDur,
		MaxDurability: maxDur,
		ObtainedAt:    now.UnixMilli(),
	}
}
