package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	marketplace = "marketplace"

	transitionsTotal       = "status_transitions_total"
	guardBusyTotal         = "mutation_guard_busy_total"
	bookmarkTogglesTotal   = "bookmark_toggles_total"
	notificationPollsTotal = "notification_polls_total"

	entityLabel = "entity"
	resultLabel = "result"
)

var transitionsTotalMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: marketplace,
		Name:      transitionsTotal,
		Help:      "number of requested status transitions partitioned by entity kind and result",
	},
	[]string{entityLabel, resultLabel},
)

var guardBusyTotalMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: marketplace,
		Name:      guardBusyTotal,
		Help:      "number of mutations refused because another call on the same record was in flight",
	},
	[]string{entityLabel},
)

var bookmarkTogglesTotalMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: marketplace,
		Name:      bookmarkTogglesTotal,
		Help:      "number of bookmark toggles partitioned by result",
	},
	[]string{resultLabel},
)

var notificationPollsTotalMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: marketplace,
		Name:      notificationPollsTotal,
		Help:      "number of unread-count polls partitioned by result",
	},
	[]string{resultLabel},
)

func IncreaseTransitionsTotalMetric(entity, result string) {
	transitionsTotalMetric.With(prometheus.Labels{entityLabel: entity, resultLabel: result}).Inc()
}

func IncreaseGuardBusyTotalMetric(entity string) {
	guardBusyTotalMetric.With(prometheus.Labels{entityLabel: entity}).Inc()
}

func IncreaseBookmarkTogglesTotalMetric(result string) {
	bookmarkTogglesTotalMetric.With(prometheus.Labels{resultLabel: result}).Inc()
}

func IncreaseNotificationPollsTotalMetric(result string) {
	notificationPollsTotalMetric.With(prometheus.Labels{resultLabel: result}).Inc()
}

func init() {
	registerMetrics()
}

func registerMetrics() {
	prometheus.MustRegister(transitionsTotalMetric)
	prometheus.MustRegister(guardBusyTotalMetric)
	prometheus.MustRegister(bookmarkTogglesTotalMetric)
	prometheus.MustRegister(notificationPollsTotalMetric)
}

// PrometheusMetricsHandler exposes the default registry.
type PrometheusMetricsHandler struct{}

func NewPrometheusMetricsHandler() *PrometheusMetricsHandler {
	return &PrometheusMetricsHandler{}
}

func (p *PrometheusMetricsHandler) Handler() http.Handler {
	return promhttp.Handler()
}
