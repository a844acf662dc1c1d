package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Game Metrics
var (
	ClicksTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameClicksTotal,
			Help: HelpTextClicksTotal,
		},
	)

	BitsEarned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameBitsEarnedTotal,
			Help: HelpTextBitsEarnedTotal,
		},
	)

	BitsSpent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameBitsSpentTotal,
			Help: HelpTextBitsSpentTotal,
		},
	)

	RollsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRollsTotal,
			Help: HelpTextRollsTotal,
		},
		[]string{LabelPool, LabelRarity},
	)

	CratesOpened = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCratesOpenedTotal,
			Help: HelpTextCratesOpenedTotal,
		},
		[]string{LabelCrate, LabelOutcome},
	)

	CookiesBroken = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCookiesBroken,
			Help: HelpTextCookiesBroken,
		},
		[]string{LabelRarity},
	)

	QuestsClaimed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameQuestsClaimed,
			Help: HelpTextQuestsClaimed,
		},
	)

	Ascensions = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameAscensionsTotal,
			Help: HelpTextAscensionsTotal,
		},
	)

	BuffsGranted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBuffsGranted,
			Help: HelpTextBuffsGranted,
		},
		[]string{LabelSource},
	)
)
