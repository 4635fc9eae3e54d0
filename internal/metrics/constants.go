package metrics

// ============================================================================
// Metric Names
// ============================================================================

// Namespace prefixes every metric this service exports
const Namespace = "casino"

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Business metric names
const (
	MetricNameSpins              = "spins_total"
	MetricNameFreeSpins          = "free_spins_total"
	MetricNameChipsWagered       = "chips_wagered_total"
	MetricNameChipsWon           = "chips_won_total"
	MetricNameJackpotsWon        = "jackpots_won_total"
	MetricNameJackpotChipsPaid   = "jackpot_chips_paid_total"
	MetricNameItemsBought        = "items_bought_total"
	MetricNameChipsSpent         = "chips_spent_total"
	MetricNameEffectsActivated   = "effects_activated_total"
	MetricNameEffectsExpired     = "effects_expired_total"
	MetricNamePlayersRegistered  = "players_registered_total"
	MetricNameDailyClaims        = "daily_claims_total"
	MetricNameChipsTransferred   = "chips_transferred_total"
	MetricNameDeliveryDropped    = "delivery_dropped_total"
	MetricNameKafkaPublishErrors = "kafka_publish_errors_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Business metric help text
const (
	HelpTextSpins              = "Total number of paid spins settled"
	HelpTextFreeSpins          = "Total number of free spins played"
	HelpTextChipsWagered       = "Total chips wagered on paid spins"
	HelpTextChipsWon           = "Total chips paid out by spins, boosts and jackpots included"
	HelpTextJackpotsWon        = "Total number of progressive jackpots won"
	HelpTextJackpotChipsPaid   = "Total chips paid from jackpot pools"
	HelpTextItemsBought        = "Total number of shop items bought"
	HelpTextChipsSpent         = "Total chips spent in the shop"
	HelpTextEffectsActivated   = "Total number of effects activated"
	HelpTextEffectsExpired     = "Total number of expired effects reaped by the sweeper"
	HelpTextPlayersRegistered  = "Total number of players registered"
	HelpTextDailyClaims        = "Total number of daily bonuses claimed"
	HelpTextChipsTransferred   = "Total chips transferred between players"
	HelpTextDeliveryDropped    = "Total chat replies dropped after exhausting retries"
	HelpTextKafkaPublishErrors = "Total events the Kafka sink failed to publish"
)

// ============================================================================
// Metric Label Names
// ============================================================================

const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelType      = "type"
	LabelMachine   = "machine"
	LabelItem      = "item"
	LabelKind      = "kind"
	LabelPlatform  = "platform"
	LabelTransport = "transport"
)

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// Debug log messages
const (
	LogMsgEventPayloadInvalid = "Event payload could not be decoded"
	LogMsgMetricsRecorded     = "Metrics recorded for event"
)

// RouteUnmatched labels requests no route matched
const RouteUnmatched = "unmatched"
