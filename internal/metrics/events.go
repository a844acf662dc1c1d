package metrics

import (
	"context"

	"github.com/knedy989-code/Cookie-RNG/internal/event"
	"github.com/knedy989-code/Cookie-RNG/internal/logger"
)

// EventMetricsCollector subscribes to game events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.TypeClick,
		event.TypeCookieRolled,
		event.TypeCookieBroken,
		event.TypeCookieSold,
		event.TypeCrateOpened,
		event.TypeBuffGranted,
		event.TypeQuestClaimed,
		event.TypeAscended,
		event.TypeBundleSpawned,
		event.TypeBundlePurchased,
		event.TypeCodeRedeemed,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch p := evt.Payload.(type) {
	case event.ClickPayloadV1:
		ClicksTotal.Inc()
		BitsEarned.Add(p.Power)

	case event.CookieRolledPayloadV1:
		RollsTotal.WithLabelValues(p.Pool, string(p.Rarity)).Inc()
		BitsSpent.Add(p.Cost)

	case event.CookieBrokenPayloadV1:
		CookiesBroken.WithLabelValues(string(p.Rarity)).Inc()

	case event.CrateOpenedPayloadV1:
		CratesOpened.WithLabelValues(p.CrateID, p.Outcome).Inc()
		if p.Value > 0 {
			BitsEarned.Add(p.Value)
		}

	case event.BuffGrantedPayloadV1:
		BuffsGranted.WithLabelValues(p.Source).Inc()

	case event.QuestClaimedPayloadV1:
		QuestsClaimed.Inc()
		BitsEarned.Add(p.Reward)

	case event.AscendedPayloadV1:
		Ascensions.Inc()

	case event.BundlePayloadV1:
		if evt.Type == event.TypeBundlePurchased {
			BitsSpent.Add(p.Cost)
		}
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
