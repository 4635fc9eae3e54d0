package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameHTTPRequestsTotal,
			Help:      HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      MetricNameHTTPRequestDuration,
			Help:      HelpTextHTTPRequestDuration,
			Buckets:   HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      MetricNameHTTPRequestsInFlight,
			Help:      HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameEventsPublished,
			Help:      HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameEventHandlerErrors,
			Help:      HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Slot metrics
var (
	Spins = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: Namespace, Name: MetricNameSpins, Help: HelpTextSpins},
		[]string{LabelMachine},
	)

	FreeSpins = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: Namespace, Name: MetricNameFreeSpins, Help: HelpTextFreeSpins},
		[]string{LabelMachine},
	)

	ChipsWagered = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: Namespace, Name: MetricNameChipsWagered, Help: HelpTextChipsWagered},
		[]string{LabelMachine},
	)

	ChipsWon = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: Namespace, Name: MetricNameChipsWon, Help: HelpTextChipsWon},
		[]string{LabelMachine},
	)

	JackpotsWon = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: Namespace, Name: MetricNameJackpotsWon, Help: HelpTextJackpotsWon},
		[]string{LabelMachine},
	)

	JackpotChipsPaid = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: Namespace, Name: MetricNameJackpotChipsPaid, Help: HelpTextJackpotChipsPaid},
		[]string{LabelMachine},
	)
)

// Economy metrics
var (
	ItemsBought = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: Namespace, Name: MetricNameItemsBought, Help: HelpTextItemsBought},
		[]string{LabelItem},
	)

	ChipsSpent = promauto.NewCounter(
		prometheus.CounterOpts{Namespace: Namespace, Name: MetricNameChipsSpent, Help: HelpTextChipsSpent},
	)

	EffectsActivated = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: Namespace, Name: MetricNameEffectsActivated, Help: HelpTextEffectsActivated},
		[]string{LabelKind},
	)

	EffectsExpired = promauto.NewCounter(
		prometheus.CounterOpts{Namespace: Namespace, Name: MetricNameEffectsExpired, Help: HelpTextEffectsExpired},
	)

	PlayersRegistered = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: Namespace, Name: MetricNamePlayersRegistered, Help: HelpTextPlayersRegistered},
		[]string{LabelPlatform},
	)

	DailyClaims = promauto.NewCounter(
		prometheus.CounterOpts{Namespace: Namespace, Name: MetricNameDailyClaims, Help: HelpTextDailyClaims},
	)

	ChipsTransferred = promauto.NewCounter(
		prometheus.CounterOpts{Namespace: Namespace, Name: MetricNameChipsTransferred, Help: HelpTextChipsTransferred},
	)
)

// Transport metrics
var (
	DeliveryDropped = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: Namespace, Name: MetricNameDeliveryDropped, Help: HelpTextDeliveryDropped},
		[]string{LabelTransport},
	)

	KafkaPublishErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: Namespace, Name: MetricNameKafkaPublishErrors, Help: HelpTextKafkaPublishErrors},
		[]string{LabelType},
	)
)
