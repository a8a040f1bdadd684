// Package metrics holds the Prometheus collectors of a gfsrg batch run.
//
// Collectors live on a private registry; a run exports them once, at exit,
// with WriteTextfile (node_exporter textfile-collector format). A nil
// *Collector is valid and records nothing.
package metrics

import (
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "gfsrg"

// Stage labels.
const (
	StageBuild = "build"
	StageCheck = "check"
)

// Check result labels.
const (
	ResultSRG          = "srg"
	ResultNotSRG       = "regular_false"
	ResultDisconnected = "disconnected"
)

// Collector groups the run's metrics.
type Collector struct {
	reg *prometheus.Registry

	graphsBuilt   *prometheus.CounterVec
	graphsChecked *prometheus.CounterVec
	taskFailures  *prometheus.CounterVec
	taskDuration  *prometheus.HistogramVec
}

// New registers a fresh set of collectors on a private registry.
func New() *Collector {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Collector{
		reg: reg,
		graphsBuilt: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "graphs_built_total",
			Help:      "Field graphs constructed, by field order.",
		}, []string{"order"}),
		graphsChecked: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "graphs_checked_total",
			Help:      "Graphs checked, by outcome.",
		}, []string{"result"}),
		taskFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "task_failures_total",
			Help:      "Tasks that failed or timed out, by stage.",
		}, []string{"stage"}),
		taskDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "task_duration_seconds",
			Help:      "Wall time of a single build or check task.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 12),
		}, []string{"stage"}),
	}
}

// Registry exposes the private registry.
func (c *Collector) Registry() *prometheus.Registry {
	if c == nil {
		return nil
	}
	return c.reg
}

// GraphBuilt counts one constructed graph over GF(order).
func (c *Collector) GraphBuilt(order int) {
	if c == nil {
		return
	}
	c.graphsBuilt.WithLabelValues(strconv.Itoa(order)).Inc()
}

// GraphChecked counts one checked graph under result.
func (c *Collector) GraphChecked(result string) {
	if c == nil {
		return
	}
	c.graphsChecked.WithLabelValues(result).Inc()
}

// TaskFailed counts one failed task in stage.
func (c *Collector) TaskFailed(stage string) {
	if c == nil {
		return
	}
	c.taskFailures.WithLabelValues(stage).Inc()
}

// ObserveTask records the duration of a task that started at start.
func (c *Collector) ObserveTask(stage string, start time.Time) {
	if c == nil {
		return
	}
	c.taskDuration.WithLabelValues(stage).Observe(time.Since(start).Seconds())
}

// WriteTextfile writes all metrics to path atomically.
func (c *Collector) WriteTextfile(path string) error {
	if c == nil || path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, c.reg); err != nil {
		return errors.Wrapf(err, "metrics: write %s", path)
	}
	return nil
}
