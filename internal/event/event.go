package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/knedy989-code/Cookie-RNG/internal/domain"
)

// Type represents the type of an event
type Type string

// Event represents a generic event in the system
type Event struct {
	Version string      `json:"version"` // Event schema version (e.g., "1.0")
	Type    Type        `json:"type"`
	Payload interface{} `json:"payload"`
}

// Common event types
const (
	TypeClick           Type = domain.EventTypeClick
	TypeCookieRolled    Type = domain.EventTypeCookieRolled
	TypeCookieBroken    Type = domain.EventTypeCookieBroken
	TypeCookieSold      Type = domain.EventTypeCookieSold
	TypeCrateOpened     Type = domain.EventTypeCrateOpened
	TypeBuffGranted     Type = domain.EventTypeBuffGranted
	TypeQuestClaimed    Type = domain.EventTypeQuestClaimed
	TypeAscended        Type = domain.EventTypeAscended
	TypeBundleSpawned   Type = domain.EventTypeBundleSpawned
	TypeBundlePurchased Type = domain.EventTypeBundlePurchased
	TypeCodeRedeemed    Type = domain.EventTypeCodeRedeemed
)

// Typed event payloads for type safety

// ClickPayloadV1 is the typed payload for click events
type ClickPayloadV1 struct {
	Power     float64 `json:"power"`
	Timestamp int64   `json:"timestamp"`
}

// CookieRolledPayloadV1 is the typed payload for roll results
type CookieRolledPayloadV1 struct {
	Pool       string        `json:"pool"`
	CookieName string        `json:"cookie_name"`
	Rarity     domain.Rarity `json:"rarity"`
	Cost       float64       `json:"cost"`
	Timestamp  int64         `json:"timestamp"`
}

// CookieBrokenPayloadV1 is the typed payload for durability breaks
type CookieBrokenPayloadV1 struct {
	CookieName string        `json:"cookie_name"`
	Rarity     domain.Rarity `json:"rarity"`
	Timestamp  int64         `json:"timestamp"`
}

// CookieSoldPayloadV1 is the typed payload for inventory sales
type CookieSoldPayloadV1 struct {
	CookieName string  `json:"cookie_name"`
	Value      float64 `json:"value"`
	Timestamp  int64   `json:"timestamp"`
}

// CrateOpenedPayloadV1 is the typed payload for crate openings
type CrateOpenedPayloadV1 struct {
	CrateID   string  `json:"crate_id"`
	Outcome   string  `json:"outcome"`
	Value     float64 `json:"value"`
	Timestamp int64   `json:"timestamp"`
}

// BuffGrantedPayloadV1 is the typed payload for timed buff grants
type BuffGrantedPayloadV1 struct {
	Source     string  `json:"source"`
	Multiplier float64 `json:"multiplier"`
	DurationMS int64   `json:"duration_ms"`
	Timestamp  int64   `json:"timestamp"`
}

// QuestClaimedPayloadV1 is the typed payload for quest claims
type QuestClaimedPayloadV1 struct {
	QuestID   string  `json:"quest_id"`
	Reward    float64 `json:"reward"`
	Timestamp int64   `json:"timestamp"`
}

// AscendedPayloadV1 is the typed payload for ascensions
type AscendedPayloadV1 struct {
	NewLevel  int   `json:"new_level"`
	Timestamp int64 `json:"timestamp"`
}

// BundlePayloadV1 is the typed payload for bundle spawn/purchase events
type BundlePayloadV1 struct {
	BundleID  string  `json:"bundle_id"`
	Cost      float64 `json:"cost,omitempty"`
	Timestamp int64   `json:"timestamp"`
}

// CodeRedeemedPayloadV1 is the typed payload for secret code redemptions
type CodeRedeemedPayloadV1 struct {
	Effect    string `json:"effect"`
	Timestamp int64  `json:"timestamp"`
}

// Type-safe event constructors

// NewClickEvent creates a new click event
func NewClickEvent(power float64) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    TypeClick,
		Payload: ClickPayloadV1{
			Power:     power,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewCookieRolledEvent creates a new roll result event
func NewCookieRolledEvent(pool, cookieName string, rarity domain.Rarity, cost float64) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    TypeCookieRolled,
		Payload: CookieRolledPayloadV1{
			Pool:       pool,
			CookieName: cookieName,
			Rarity:     rarity,
			Cost:       cost,
			Timestamp:  time.Now().Unix(),
		},
	}
}

// NewCookieBrokenEvent creates a new durability break event
func NewCookieBrokenEvent(cookieName string, rarity domain.Rarity) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    TypeCookieBroken,
		Payload: CookieBrokenPayloadV1{
			CookieName: cookieName,
			Rarity:     rarity,
			Timestamp:  time.Now().Unix(),
		},
	}
}

// NewCookieSoldEvent creates a new sale event
func NewCookieSoldEvent(cookieName string, value float64) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    TypeCookieSold,
		Payload: CookieSoldPayloadV1{
			CookieName: cookieName,
			Value:      value,
			Timestamp:  time.Now().Unix(),
		},
	}
}

// NewCrateOpenedEvent creates a new crate opening event
func NewCrateOpenedEvent(crateID, outcome string, value float64) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    TypeCrateOpened,
		Payload: CrateOpenedPayloadV1{
			CrateID:   crateID,
			Outcome:   outcome,
			Value:     value,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewBuffGrantedEvent creates a new buff grant event
func NewBuffGrantedEvent(source string, multiplier float64, duration time.Duration) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    TypeBuffGranted,
		Payload: BuffGrantedPayloadV1{
			Source:     source,
			Multiplier: multiplier,
			DurationMS: duration.Milliseconds(),
			Timestamp:  time.Now().Unix(),
		},
	}
}

// NewQuestClaimedEvent creates a new quest claim event
func NewQuestClaimedEvent(questID string, reward float64) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    TypeQuestClaimed,
		Payload: QuestClaimedPayloadV1{
			QuestID:   questID,
			Reward:    reward,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewAscendedEvent creates a new ascension event
func NewAscendedEvent(newLevel int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    TypeAscended,
		Payload: AscendedPayloadV1{
			NewLevel:  newLevel,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewBundleSpawnedEvent creates a new bundle spawn event
func NewBundleSpawnedEvent(bundleID string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    TypeBundleSpawned,
		Payload: BundlePayloadV1{
			BundleID:  bundleID,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewBundlePurchasedEvent creates a new bundle purchase event
func NewBundlePurchasedEvent(bundleID string, cost float64) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    TypeBundlePurchased,
		Payload: BundlePayloadV1{
			BundleID:  bundleID,
			Cost:      cost,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewCodeRedeemedEvent creates a new code redemption event
func NewCodeRedeemedEvent(effect string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    TypeCodeRedeemed,
		Payload: CodeRedeemedPayloadV1{
			Effect:    effect,
			Timestamp: time.Now().Unix(),
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	// Handlers execute synchronously; long-running work belongs on the
	// worker pool, not in a subscriber.
	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
