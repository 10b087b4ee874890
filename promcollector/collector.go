// Package promcollector exports store metrics to Prometheus.
//
// Collector implements assoc.MetricsCollector:
//
//	c, err := promcollector.New(prometheus.DefaultRegisterer, "myapp")
//	if err != nil {
//	    return err
//	}
//	s := assoc.New[any](nil, assoc.WithMetricsCollector(c))
//
// One Collector can be shared by any number of stores.
package promcollector

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector records store operations as Prometheus metrics.
type Collector struct {
	opLatency *prometheus.HistogramVec
	ops       *prometheus.CounterVec
	keys      *prometheus.CounterVec
	lookups   *prometheus.CounterVec
}

// New creates a Collector and registers its metrics with reg.
// A nil reg selects prometheus.DefaultRegisterer.
func New(reg prometheus.Registerer, namespace string) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	c := &Collector{
		opLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "assoc",
			Name:      "operation_latency_seconds",
			Help:      "Latency of store operations",
			Buckets:   prometheus.ExponentialBuckets(1e-7, 4, 10),
		}, []string{"op"}),
		ops: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "assoc",
			Name:      "operations_total",
			Help:      "Store operations by outcome",
		}, []string{"op", "status"}),
		keys: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "assoc",
			Name:      "keys_total",
			Help:      "Keys inserted, removed or cleared",
		}, []string{"event"}),
		lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "assoc",
			Name:      "lookups_total",
			Help:      "Requested keys by result",
		}, []string{"result"}),
	}

	for _, col := range []prometheus.Collector{c.opLatency, c.ops, c.keys, c.lookups} {
		if err := reg.Register(col); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

// RecordSet implements assoc.MetricsCollector.
func (c *Collector) RecordSet(count, inserted int, d time.Duration, err error) {
	c.opLatency.WithLabelValues("set").Observe(d.Seconds())
	c.ops.WithLabelValues("set", status(err)).Inc()
	c.keys.WithLabelValues("inserted").Add(float64(inserted))
}

// RecordGet implements assoc.MetricsCollector.
func (c *Collector) RecordGet(requested, hits int, d time.Duration) {
	c.opLatency.WithLabelValues("get").Observe(d.Seconds())
	c.ops.WithLabelValues("get", "success").Inc()
	c.lookups.WithLabelValues("hit").Add(float64(hits))
	c.lookups.WithLabelValues("miss").Add(float64(requested - hits))
}

// RecordRemove implements assoc.MetricsCollector.
func (c *Collector) RecordRemove(requested, removed int, d time.Duration) {
	c.opLatency.WithLabelValues("remove").Observe(d.Seconds())
	c.ops.WithLabelValues("remove", "success").Inc()
	c.keys.WithLabelValues("removed").Add(float64(removed))
}

// RecordReset implements assoc.MetricsCollector.
func (c *Collector) RecordReset(cleared int, d time.Duration) {
	c.opLatency.WithLabelValues("reset").Observe(d.Seconds())
	c.ops.WithLabelValues("reset", "success").Inc()
	c.keys.WithLabelValues("cleared").Add(float64(cleared))
}
