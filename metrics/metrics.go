// Package metrics exposes prometheus instrumentation for the game loop.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

var (
	frameDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "snake",
			Subsystem: "session",
			Name:      "frame_seconds",
			Help:      "Time spent updating and drawing one frame.",
			Buckets:   []float64{.0005, .001, .002, .004, .008, .016, .033, .066},
		},
	)
	steps = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "snake",
			Subsystem: "session",
			Name:      "steps_total",
			Help:      "Logical steps the snake has taken.",
		},
	)
	foodEaten = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "snake",
			Subsystem: "session",
			Name:      "food_eaten_total",
			Help:      "Food consumed across all rounds.",
		},
	)
	deaths = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "snake",
			Subsystem: "session",
			Name:      "deaths_total",
			Help:      "Rounds that ended, by cause.",
		},
		[]string{"cause"},
	)
	resets = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "snake",
			Subsystem: "session",
			Name:      "resets_total",
			Help:      "Rounds restarted from the initial state.",
		},
	)
)

func init() {
	prometheus.MustRegister(frameDuration, steps, foodEaten, deaths, resets)
}

// TimeFrame starts timing a frame; call the returned func when it is done.
func TimeFrame() func() {
	t := prometheus.NewTimer(frameDuration)
	return func() { t.ObserveDuration() }
}

// Step counts a logical step.
func Step() { steps.Inc() }

// Ate counts a consumed food.
func Ate() { foodEaten.Inc() }

// Died counts the end of a round.
func Died(cause string) { deaths.WithLabelValues(cause).Inc() }

// Reset counts a restart.
func Reset() { resets.Inc() }

// Serve exposes /metrics on addr in the background. An empty addr disables
// the exporter.
func Serve(addr string) {
	if addr == "" {
		log.Info("prometheus exporter not enabled")
		return
	}

	log.WithField("addr", addr).Info("starting prometheus exporter")
	go func() {
		r := http.NewServeMux()
		r.Handle("/metrics", promhttp.Handler())
		if err := http.ListenAndServe(addr, r); err != nil {
			log.WithError(err).Warn("prometheus failed to listen")
		}
	}()
}
