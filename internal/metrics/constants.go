package metrics

// Metric names
const (
	MetricNameHTTPRequestsTotal    = "cookierng_http_requests_total"
	MetricNameHTTPRequestDuration  = "cookierng_http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "cookierng_http_requests_in_flight"

	MetricNameEventsPublished    = "cookierng_events_published_total"
	MetricNameEventHandlerErrors = "cookierng_event_handler_errors_total"

	MetricNameClicksTotal       = "cookierng_clicks_total"
	MetricNameBitsEarnedTotal   = "cookierng_bits_earned_total"
	MetricNameBitsSpentTotal    = "cookierng_bits_spent_total"
	MetricNameRollsTotal        = "cookierng_rolls_total"
	MetricNameCratesOpenedTotal = "cookierng_crates_opened_total"
	MetricNameCookiesBroken     = "cookierng_cookies_broken_total"
	MetricNameQuestsClaimed     = "cookierng_quests_claimed_total"
	MetricNameAscensionsTotal   = "cookierng_ascensions_total"
	MetricNameBuffsGranted      = "cookierng_buffs_granted_total"
)

// Help texts
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Number of HTTP requests currently being served"

	HelpTextEventsPublished    = "Total number of events published on the bus"
	HelpTextEventHandlerErrors = "Total number of event handler errors"

	HelpTextClicksTotal       = "Total number of cookie clicks"
	HelpTextBitsEarnedTotal   = "Total Bits earned across all sources"
	HelpTextBitsSpentTotal    = "Total Bits spent across all sinks"
	HelpTextRollsTotal        = "Total rolls by pool and resulting rarity"
	HelpTextCratesOpenedTotal = "Total crate openings by crate and outcome"
	HelpTextCookiesBroken     = "Total cookies crumbled by rarity"
	HelpTextQuestsClaimed     = "Total quest rewards claimed"
	HelpTextAscensionsTotal   = "Total ascensions performed"
	HelpTextBuffsGranted      = "Total timed buffs granted by source"
)

// Label names
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelType    = "type"
	LabelPool    = "pool"
	LabelRarity  = "rarity"
	LabelCrate   = "crate"
	LabelOutcome = "outcome"
	LabelSource  = "source"
)

// HTTPLatencyBuckets are the histogram buckets for request latency
var HTTPLatencyBuckets = []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5}

// Log messages
const (
	LogMsgMetricsRecorded = "Metrics recorded for event"
)
