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

// Forge Metrics
var (
	CraftsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCraftsTotal,
			Help: HelpTextCraftsTotal,
		},
		[]string{LabelRecipe, LabelQuality},
	)

	OrdersGenerated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameOrdersGenerated,
			Help: HelpTextOrdersGenerated,
		},
	)

	OrdersDelivered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameOrdersDelivered,
			Help: HelpTextOrdersDelivered,
		},
		[]string{LabelResult},
	)

	OrdersExpired = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameOrdersExpired,
			Help: HelpTextOrdersExpired,
		},
	)

	HagglesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHagglesTotal,
			Help: HelpTextHagglesTotal,
		},
		[]string{LabelOutcome},
	)

	UpgradesPurchased = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameUpgradesPurchased,
			Help: HelpTextUpgradesPurchased,
		},
		[]string{LabelEffect},
	)
)

// Expedition and Mine Metrics
var (
	ExpeditionsDispatched = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameExpeditionsStarted,
			Help: HelpTextExpeditionsStarted,
		},
		[]string{LabelMapType},
	)

	ExpeditionsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameExpeditionsDone,
			Help: HelpTextExpeditionsDone,
		},
		[]string{LabelMapType},
	)

	BattlesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBattlesTotal,
			Help: HelpTextBattlesTotal,
		},
		[]string{LabelOutcome},
	)

	MiningDrops = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameMiningDrops,
			Help: HelpTextMiningDrops,
		},
		[]string{LabelMaterial},
	)
)

// Event and Lifecycle Metrics
var (
	EventsDrawn = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameEventsDrawn,
			Help: HelpTextEventsDrawn,
		},
	)

	EventCardsChosen = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventCardsChosen,
			Help: HelpTextEventCardsChosen,
		},
		[]string{LabelEffect},
	)

	DaysAdvanced = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDaysAdvanced,
			Help: HelpTextDaysAdvanced,
		},
	)

	SavesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSavesTotal,
			Help: HelpTextSavesTotal,
		},
		[]string{LabelResult},
	)
)
