package random

import (
	"github.com/grafana/hello-rand/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

type promMetrics struct {
	generations *prometheus.CounterVec
	values      *prometheus.HistogramVec
}

func newPromMetrics() *promMetrics {
	return &promMetrics{
		generations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:      "generations_total",
				Help:      "Total number of random number generations",
				Namespace: "hello",
			},
			[]string{"result"},
		),
		values: metrics.NewBoundedHistogramVec(
			prometheus.HistogramOpts{
				Name:      "generated_values",
				Help:      "Values produced by successful generations",
				Namespace: "hello",
			},
			float64(DefaultBounds.Min-1), float64(DefaultBounds.Max), 10,
			nil,
		),
	}
}

func (m *promMetrics) register(r prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{m.generations, m.values} {
		if err := r.Register(c); err != nil {
			return err
		}
	}
	return nil
}
