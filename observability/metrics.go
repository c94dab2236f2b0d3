package observability

import (
	"fmt"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lixenwraith/vi-pong/event"
	"github.com/lixenwraith/vi-pong/status"
)

const namespace = "vipong"

// Collector exports the simulation status registry and frame-level metrics to Prometheus.
// It also receives frame-end events from the router to count them by type.
type Collector struct {
	gatherer prometheus.Gatherer

	Events        *prometheus.CounterVec
	FrameDuration prometheus.Histogram
}

// NewCollector registers the status bridge and frame metrics against reg,
// defaulting to the global Prometheus registry when nil.
func NewCollector(reg prometheus.Registerer, registry *status.Registry) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	if err := reg.Register(&statusCollector{registry: registry}); err != nil {
		return nil, fmt.Errorf("register status collector: %w", err)
	}

	events, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "events_total",
		Help:      "Simulation events dispatched at frame end, labeled by type.",
	}, []string{"type"}), "events_total")
	if err != nil {
		return nil, err
	}

	frames, err := registerHistogram(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "frame_duration_seconds",
		Help:      "Wall time spent simulating one frame.",
		Buckets:   []float64{0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025},
	}), "frame_duration_seconds")
	if err != nil {
		return nil, err
	}

	return &Collector{
		gatherer:      gatherer,
		Events:        events,
		FrameDuration: frames,
	}, nil
}

// Handler exposes a ready-to-use /metrics handler.
func (c *Collector) Handler() http.Handler {
	gatherer := c.gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// ObserveFrame records the wall time of one simulation step
func (c *Collector) ObserveFrame(d time.Duration) {
	if c == nil {
		return
	}
	c.FrameDuration.Observe(d.Seconds())
}

// EventTypes subscribes to every simulation event
func (c *Collector) EventTypes() []event.EventType {
	return event.AllTypes()
}

// HandleEvent counts the event under its type label
func (c *Collector) HandleEvent(ev event.GameEvent) {
	c.Events.WithLabelValues(ev.Type.String()).Inc()
}

// statusCollector bridges status.Registry atomics into Prometheus gauges at scrape time.
// Keys are discovered dynamically, so it registers as an unchecked collector.
type statusCollector struct {
	registry *status.Registry
}

func (s *statusCollector) Describe(chan<- *prometheus.Desc) {}

func (s *statusCollector) Collect(ch chan<- prometheus.Metric) {
	s.registry.Ints.Range(func(key string, v *atomic.Int64) {
		ch <- gauge(key, "", float64(v.Load()))
	})
	s.registry.Floats.Range(func(key string, v *status.AtomicFloat) {
		ch <- gauge(key, "", v.Get())
	})
	s.registry.Bools.Range(func(key string, v *atomic.Bool) {
		val := 0.0
		if v.Load() {
			val = 1
		}
		ch <- gauge(key, "", val)
	})
	s.registry.Strings.Range(func(key string, v *status.AtomicString) {
		ch <- gauge(key+"_info", v.Load(), 1)
	})
}

// gauge builds a const gauge; string metrics carry their value as a label
func gauge(key, label string, val float64) prometheus.Metric {
	name := MetricName(key)
	if label == "" {
		desc := prometheus.NewDesc(name, "Status value "+key+".", nil, nil)
		return prometheus.MustNewConstMetric(desc, prometheus.GaugeValue, val)
	}
	desc := prometheus.NewDesc(name, "Status text "+strings.TrimSuffix(key, "_info")+".", []string{"value"}, nil)
	return prometheus.MustNewConstMetric(desc, prometheus.GaugeValue, val, label)
}

// MetricName maps a dotted status key to a Prometheus metric name
func MetricName(key string) string {
	var b strings.Builder
	b.WriteString(namespace)
	b.WriteByte('_')
	for _, r := range key {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

func registerCounterVec(reg prometheus.Registerer, vec *prometheus.CounterVec, name string) (*prometheus.CounterVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerHistogram(reg prometheus.Registerer, h prometheus.Histogram, name string) (prometheus.Histogram, error) {
	if err := reg.Register(h); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Histogram); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return h, nil
}
