package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Manager struct {
	// counters
	CounterRequests           *prometheus.CounterVec
	CounterWorkoutsStarted    prometheus.Counter
	CounterWorkoutsFinished   prometheus.Counter
	CounterSetsCompleted      prometheus.Counter
	CounterActivityPushes     prometheus.Counter
	CounterActivitySuppressed prometheus.Counter
	CounterRestScheduled      prometheus.Counter
	CounterRestCanceled       prometheus.Counter
	CounterRestResynced       prometheus.Counter
	CounterWidgetIntents      *prometheus.CounterVec
	CounterHandleRequestPanic prometheus.Counter

	// gauges
	GaugeRequests       prometheus.Gauge
	GaugeActiveWorkouts prometheus.Gauge
	GaugeLifeSignal     prometheus.Gauge

	// histograms
	HistActivityPushDuration prometheus.Histogram
	HistogramRequestDuration *prometheus.HistogramVec
}

func NewTestManager() *Manager {
	return NewManager("liveworkout", "test_server", prometheus.NewRegistry())
}

func NewTestManagerAndRegistry() (*Manager, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	return NewManager("liveworkout", "test_server", reg), reg
}

func NewManager(namespace, subsystem string, reg prometheus.Registerer) *Manager {
	factory := promauto.With(reg)

	counterRequests := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "request",
		Help:      "The total number of incoming requests",
	}, []string{"method", "status"})
	counterWorkoutsStarted := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "workouts_started",
		Help:      "The total number of started workout sessions",
	})
	counterWorkoutsFinished := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "workouts_finished",
		Help:      "The total number of finished workout sessions",
	})
	counterSetsCompleted := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "sets_completed",
		Help:      "The total number of completed sets",
	})
	counterActivityPushes := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "live_activity_pushes",
		Help:      "The total number of live activity content pushes",
	})
	counterActivitySuppressed := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "live_activity_suppressed_updates",
		Help:      "The total number of live activity updates skipped by the content diff",
	})
	counterRestScheduled := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "rest_timers_scheduled",
		Help:      "The total number of scheduled rest countdowns",
	})
	counterRestCanceled := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "rest_timers_canceled",
		Help:      "The total number of canceled rest countdowns",
	})
	counterRestResynced := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "rest_timers_resynced",
		Help:      "Rest countdowns rescheduled after an external shared storage change",
	})
	counterWidgetIntents := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "widget_intents",
		Help:      "The total number of widget-initiated intents",
	}, []string{"intent"})
	counterHandleRequestPanic := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "handle_request_panic",
		Help:      "The total number of serve request panics",
	})

	gaugeRequests := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "requests",
		Help:      "The current number of active connections",
	})
	gaugeActiveWorkouts := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "active_workouts",
		Help:      "The current number of in-progress workout sessions",
	})
	gaugeLifeSignal := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "life_signal",
		Help:      "Server life signal",
	})

	histActivityPushDuration := factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "live_activity_push_duration_seconds",
		Help:      "Duration of a single live activity content push in seconds",
		Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
	})
	histogramRequestDuration := factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "request_duration_seconds",
		Help:      "Histogram of response time for requests in seconds",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"route", "method", "status_code"})

	return &Manager{
		CounterRequests:           counterRequests,
		CounterWorkoutsStarted:    counterWorkoutsStarted,
		CounterWorkoutsFinished:   counterWorkoutsFinished,
		CounterSetsCompleted:      counterSetsCompleted,
		CounterActivityPushes:     counterActivityPushes,
		CounterActivitySuppressed: counterActivitySuppressed,
		CounterRestScheduled:      counterRestScheduled,
		CounterRestCanceled:       counterRestCanceled,
		CounterRestResynced:       counterRestResynced,
		CounterWidgetIntents:      counterWidgetIntents,
		CounterHandleRequestPanic: counterHandleRequestPanic,
		GaugeRequests:             gaugeRequests,
		GaugeActiveWorkouts:       gaugeActiveWorkouts,
		GaugeLifeSignal:           gaugeLifeSignal,
		HistActivityPushDuration:  histActivityPushDuration,
		HistogramRequestDuration:  histogramRequestDuration,
	}
}
