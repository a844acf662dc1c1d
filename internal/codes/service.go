// Package codes redeems secret developer codes and runs the chrono
// spawner they unlock.
package codes

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/knedy989-code/Cookie-RNG/internal/domain"
	"github.com/knedy989-code/Cookie-RNG/internal/effects"
	"github.com/knedy989-code/Cookie-RNG/internal/event"
	"github.com/knedy989-code/Cookie-RNG/internal/logger"
	"github.com/knedy989-code/Cookie-RNG/internal/state"
	"github.com/knedy989-code/Cookie-RNG/internal/utils"
)

// RedeemResult reports an accepted code.
type RedeemResult struct {
	Effect  string `json:"effect"`
	Message string `json:"message"`
}

// SpawnResult reports a materialized chrono cookie.
type SpawnResult struct {
	Cookie  domain.Cookie `json:"cookie"`
	Message string        `json:"message"`
}

// Service redeems codes and spawns chrono cookies.
type Service interface {
	Redeem(ctx context.Context, code string) (*RedeemResult, error)
	SpawnChrono(ctx context.Context) (*SpawnResult, error)
}

type service struct {
	store *state.Store
	bus   event.Bus
	now   func() time.Time
}

// NewService creates a new codes service.
func NewService(store *state.Store, bus event.Bus) Service {
	return &service{store: store, bus: bus, now: time.Now}
}

// Redeem matches a normalized code and applies its effect. An unknown
// code mutates nothing.
func (s *service) Redeem(ctx context.Context, code string) (*RedeemResult, error) {
	normalized := strings.ToLower(strings.TrimSpace(code))

	var res RedeemResult
	var err error
	switch normalized {
	case codeGodMode:
		err = s.store.Update(func(gs *domain.GameState) error {
			gs.Bits = godModeBits
			gs.CheatMode = true
			return nil
		})
		res = RedeemResult{Effect: EffectGodMode, Message: MsgGodMode}
	case codeEternalPower:
		err = s.store.Update(func(gs *domain.GameState) error {
			gs.Bits += eternalBitsGrant

			cookie := s.mintChrono(chronoName, chronoDescription, "c_chrono_infinite")
			gs.Cookies = append(gs.Cookies, cookie)
			gs.EquippedCookieID = cookie.InstanceID
			gs.UnlockRarity(domain.RarityDivine)

			effects.GrantMultiplier(gs, eternalMultiplier, eternalBuffDuration, s.now())
			gs.ChronoSpawnerUnlocked = true
			return nil
		})
		res = RedeemResult{Effect: EffectEternalPower, Message: MsgEternalPower}
	default:
		logger.FromContext(ctx).Warn(LogMsgUnknownCode)
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownCode, normalized)
	}
	if err != nil {
		return nil, err
	}

	log := logger.FromContext(ctx)
	log.Info(LogMsgCodeRedeemed, "effect", res.Effect)
	if err := s.bus.Publish(ctx, event.NewCodeRedeemedEvent(res.Effect)); err != nil {
		log.Warn("event publish failed", "error", err)
	}

	return &res, nil
}

// SpawnChrono mints a replicated chrono cookie. The spawner must have
// been unlocked by a code; the replica is not auto-equipped.
func (s *service) SpawnChrono(ctx context.Context) (*SpawnResult, error) {
	var res SpawnResult
	err := s.store.Update(func(gs *domain.GameState) error {
		if !gs.ChronoSpawnerUnlocked {
			return domain.ErrSpawnerLocked
		}

		cookie := s.mintChrono(replicaName, replicaDescription, "c_chrono_spawn")
		gs.Cookies = append(gs.Cookies, cookie)
		gs.UnlockRarity(domain.RarityDivine)

		res = SpawnResult{Cookie: cookie, Message: MsgChronoSpawn}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log := logger.FromContext(ctx)
	log.Info(LogMsgChronoSpawned, "cookie", res.Cookie.InstanceID)
	if err := s.bus.Publish(ctx, event.NewCodeRedeemedEvent(EffectChronoSpawn)); err != nil {
		log.Warn("event publish failed", "error", err)
	}

	return &res, nil
}

func (s *service) mintChrono(name, description, idPrefix string) domain.Cookie {
	now := s.now()
	return domain.Cookie{
		InstanceID:    fmt.Sprintf("%s_%d_%d", idPrefix, now.UnixNano(), utils.RandomInt(0, 99999)),
		TemplateID:    idPrefix,
		Name:          name,
		Description:   description,
		Rarity:        domain.RarityDivine,
		BaseValue:     chronoBaseValue,
		ColorHex:      chronoColorHex,
		Durability:    domain.IndestructibleDurability,
		MaxDurability: domain.IndestructibleDurability,
		ObtainedAt:    now.UnixMilli(),
	}
}
