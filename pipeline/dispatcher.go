package pipeline

import (
	"runtime"
	"time"

	"github.com/katalvlaran/gfsrg/field"
	"github.com/katalvlaran/gfsrg/metrics"
	"github.com/katalvlaran/gfsrg/relation"
)

// Dispatcher runs the build and check stages on a bounded worker pool.
type Dispatcher struct {
	workers     int
	taskTimeout time.Duration
	maxPower    int
	combine     relation.Combiner
	metrics     *metrics.Collector
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithWorkers bounds the number of concurrently running tasks. n < 1 keeps the
// default of runtime.NumCPU().
func WithWorkers(n int) Option {
	return func(d *Dispatcher) {
		if n >= 1 {
			d.workers = n
		}
	}
}

// WithTaskTimeout gives every task its own deadline. Zero disables it.
func WithTaskTimeout(timeout time.Duration) Option {
	return func(d *Dispatcher) {
		if timeout >= 0 {
			d.taskTimeout = timeout
		}
	}
}

// WithMaxPower caps accepted powers below the field limit.
func WithMaxPower(p int) Option {
	return func(d *Dispatcher) {
		if p >= 1 && p < d.maxPower {
			d.maxPower = p
		}
	}
}

// WithCombiner replaces the default relation.Difference.
func WithCombiner(c relation.Combiner) Option {
	return func(d *Dispatcher) {
		if c != nil {
			d.combine = c
		}
	}
}

// WithMetrics records task counts and durations on m.
func WithMetrics(m *metrics.Collector) Option {
	return func(d *Dispatcher) { d.metrics = m }
}

// NewDispatcher returns a Dispatcher with defaults: NumCPU workers, no task
// timeout, difference combiner, powers up to log2(field.MaxOrder).
func NewDispatcher(opts ...Option) *Dispatcher {
	d := &Dispatcher{
		workers:  runtime.NumCPU(),
		maxPower: maxFieldPower(),
		combine:  relation.Difference,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Workers returns the configured pool size.
func (d *Dispatcher) Workers() int { return d.workers }

// MaxPower returns the largest accepted power.
func (d *Dispatcher) MaxPower() int { return d.maxPower }

func maxFieldPower() int {
	p := 0
	for 1<<(p+1) <= field.MaxOrder {
		p++
	}
	return p
}
