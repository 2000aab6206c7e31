// Copyright (C) 2026, Lux Partners Limited. All rights reserved.
// See the file LICENSE for licensing terms.

package metered

import "github.com/prometheus/client_golang/prometheus"

const resultLabel = "result"

var (
	hitLabels  = prometheus.Labels{resultLabel: "hit"}
	missLabels = prometheus.Labels{resultLabel: "miss"}
)

type metrics struct {
	gets    *prometheus.CounterVec
	puts    prometheus.Counter
	removes prometheus.Counter
	entries prometheus.Gauge
}

func newMetrics(namespace string, registerer prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		gets: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_gets_total",
			Help:      "Total number of cache lookups, partitioned by result.",
		}, []string{resultLabel}),
		puts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_puts_total",
			Help:      "Total number of cache inserts.",
		}),
		removes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_removes_total",
			Help:      "Total number of cache removals.",
		}),
		entries: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "cache_entries",
			Help:      "Current number of live cache entries.",
		}),
	}
	for _, collector := range []prometheus.Collector{
		m.gets,
		m.puts,
		m.removes,
		m.entries,
	} {
		if err := registerer.Register(collector); err != nil {
			return nil, err
		}
	}
	return m, nil
}
