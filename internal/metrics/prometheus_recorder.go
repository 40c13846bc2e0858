package metrics

import (
	"fmt"
	"sync"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	once               sync.Once
	reg                *prom.Registry
	pages              *prom.CounterVec
	bytesWritten       prom.Counter
	warnings           *prom.CounterVec
	collectionDuration *prom.HistogramVec
	runDuration        prom.Histogram
	workers            prom.Gauge
}

// NewPrometheusRecorder constructs and registers Prometheus metrics (idempotent).
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{reg: reg}
	pr.once.Do(func() {
		pr.pages = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "symdoc",
			Name:      "pages_total",
			Help:      "Pages rendered by symbol kind and outcome",
		}, []string{"kind", "result"})
		pr.bytesWritten = prom.NewCounter(prom.CounterOpts{
			Namespace: "symdoc",
			Name:      "output_bytes_total",
			Help:      "Bytes written to the output directory",
		})
		pr.warnings = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "symdoc",
			Name:      "warnings_total",
			Help:      "Degraded-output warnings by reason",
		}, []string{"reason"})
		pr.collectionDuration = prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: "symdoc",
			Name:      "collection_duration_seconds",
			Help:      "Duration of rendering one symbol collection",
			Buckets:   prom.DefBuckets,
		}, []string{"collection"})
		pr.runDuration = prom.NewHistogram(prom.HistogramOpts{
			Namespace: "symdoc",
			Name:      "run_duration_seconds",
			Help:      "Total render run duration",
			Buckets:   prom.DefBuckets,
		})
		pr.workers = prom.NewGauge(prom.GaugeOpts{
			Namespace: "symdoc",
			Name:      "render_workers",
			Help:      "Bound of the render worker pool for the last run",
		})
		reg.MustRegister(pr.pages, pr.bytesWritten, pr.warnings, pr.collectionDuration, pr.runDuration, pr.workers)
	})
	return pr
}

func (p *PrometheusRecorder) IncPage(kind string, result PageResult) {
	if p == nil || p.pages == nil {
		return
	}
	p.pages.WithLabelValues(kind, string(result)).Inc()
}

func (p *PrometheusRecorder) AddBytesWritten(n int) {
	if p == nil || p.bytesWritten == nil || n <= 0 {
		return
	}
	p.bytesWritten.Add(float64(n))
}

func (p *PrometheusRecorder) IncWarning(reason string) {
	if p == nil || p.warnings == nil {
		return
	}
	p.warnings.WithLabelValues(reason).Inc()
}

func (p *PrometheusRecorder) ObserveCollectionDuration(collection string, d time.Duration) {
	if p == nil || p.collectionDuration == nil {
		return
	}
	p.collectionDuration.WithLabelValues(collection).Observe(d.Seconds())
}

func (p *PrometheusRecorder) ObserveRunDuration(d time.Duration) {
	if p == nil || p.runDuration == nil {
		return
	}
	p.runDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) SetWorkers(n int) {
	if p == nil || p.workers == nil {
		return
	}
	p.workers.Set(float64(n))
}

// WriteTextfile writes the registry in the Prometheus text format, suitable
// for the node exporter textfile collector.
func (p *PrometheusRecorder) WriteTextfile(path string) error {
	if err := prom.WriteToTextfile(path, p.reg); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
