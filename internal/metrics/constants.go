package metrics

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Forge metric names
const (
	MetricNameCraftsTotal        = "crafts_total"
	MetricNameOrdersGenerated    = "orders_generated_total"
	MetricNameOrdersDelivered    = "orders_delivered_total"
	MetricNameOrdersExpired      = "orders_expired_total"
	MetricNameHagglesTotal       = "haggles_total"
	MetricNameUpgradesPurchased  = "upgrades_purchased_total"
	MetricNameExpeditionsStarted = "expeditions_dispatched_total"
	MetricNameExpeditionsDone    = "expeditions_completed_total"
	MetricNameBattlesTotal       = "mine_battles_total"
	MetricNameMiningDrops        = "mining_drops_total"
	MetricNameEventsDrawn        = "event_draws_total"
	MetricNameEventCardsChosen   = "event_cards_chosen_total"
	MetricNameDaysAdvanced       = "days_advanced_total"
	MetricNameSavesTotal         = "saves_total"
)

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Forge metric help text
const (
	HelpTextCraftsTotal        = "Total number of items crafted"
	HelpTextOrdersGenerated    = "Total number of customer orders generated"
	HelpTextOrdersDelivered    = "Total number of orders delivered"
	HelpTextOrdersExpired      = "Total number of orders expired or cancelled"
	HelpTextHagglesTotal       = "Total number of haggle attempts"
	HelpTextUpgradesPurchased  = "Total number of shop upgrades purchased"
	HelpTextExpeditionsStarted = "Total number of expeditions dispatched"
	HelpTextExpeditionsDone    = "Total number of expeditions completed"
	HelpTextBattlesTotal       = "Total number of mine battle exchanges"
	HelpTextMiningDrops        = "Total number of material drops mined"
	HelpTextEventsDrawn        = "Total number of event card draws offered"
	HelpTextEventCardsChosen   = "Total number of event cards chosen"
	HelpTextDaysAdvanced       = "Total number of in-game days advanced"
	HelpTextSavesTotal         = "Total number of save operations"
)

// Common label names used across metrics
const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelRecipe   = "recipe"
	LabelQuality  = "quality"
	LabelResult   = "result"
	LabelOutcome  = "outcome"
	LabelEffect   = "effect"
	LabelMapType  = "map_type"
	LabelMaterial = "material"
)

// HTTPLatencyBuckets defines the histogram buckets for HTTP request
// duration in seconds, from 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
