// Package metrics exposes match counters to Prometheus.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"ebiten-pong/components"
	"ebiten-pong/ecs"
	"ebiten-pong/systems"
)

// Metrics holds the match collectors. Label values are bounded to the two players.
type Metrics struct {
	registry *prometheus.Registry

	points        *prometheus.CounterVec
	resets        *prometheus.CounterVec
	score         *prometheus.GaugeVec
	frameDuration prometheus.Histogram
	frames        prometheus.Counter
}

// New creates the collectors on a fresh registry
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		points: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pong_points_total",
			Help: "Points scored",
		}, []string{"player"}),
		resets: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pong_ball_resets_total",
			Help: "Ball resets by serving player",
		}, []string{"player"}),
		score: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "pong_score",
			Help: "Current score",
		}, []string{"player"}),
		frameDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "pong_frame_duration_seconds",
			Help:    "Time spent in one world update",
			Buckets: []float64{0.0005, 0.001, 0.002, 0.005, 0.01, 0.0167, 0.033},
		}),
		frames: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pong_frames_total",
			Help: "World updates run",
		}),
	}

	m.registry.MustRegister(
		m.points,
		m.resets,
		m.score,
		m.frameDuration,
		m.frames,
		collectors.NewGoCollector(),
	)

	for _, p := range components.Players {
		m.points.WithLabelValues(p.String())
		m.resets.WithLabelValues(p.String())
		m.score.WithLabelValues(p.String()).Set(0)
	}
	return m
}

// Registry returns the registry the collectors live in
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Observe subscribes to game events on q
func (m *Metrics) Observe(q *ecs.EventQueue) {
	q.Subscribe(systems.EventGainPoint, func(event ecs.Event) {
		if gain, ok := event.(systems.GainPointEvent); ok {
			m.points.WithLabelValues(gain.Player.String()).Inc()
		}
	})
	q.Subscribe(systems.EventResetBall, func(event ecs.Event) {
		if reset, ok := event.(systems.ResetBallEvent); ok {
			m.resets.WithLabelValues(reset.Player.String()).Inc()
		}
	})
}

// RecordFrame records one world update and the score after it
func (m *Metrics) RecordFrame(duration time.Duration, score *components.Score) {
	m.frames.Inc()
	m.frameDuration.Observe(duration.Seconds())
	if score == nil {
		return
	}
	for _, p := range components.Players {
		m.score.WithLabelValues(p.String()).Set(float64(score.Get(p)))
	}
}
