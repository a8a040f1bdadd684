package pipeline

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gfsrg/builder"
	"github.com/katalvlaran/gfsrg/core"
	"github.com/katalvlaran/gfsrg/factor"
	"github.com/katalvlaran/gfsrg/field"
	"github.com/katalvlaran/gfsrg/metrics"
	"github.com/katalvlaran/gfsrg/relation"
)

// GenerateGraphs builds one graph over GF(2^power) per nontrivial factor of
// 2^power − 1 and returns one outcome per factor. A prime 2^power − 1 (or 1,
// 2 or 3) has no nontrivial factors and yields (nil, nil).
//
// The only error is ErrInvalidPower, reported before any task starts; task
// failures travel in the outcomes.
func (d *Dispatcher) GenerateGraphs(ctx context.Context, power int) ([]BuildOutcome, error) {
	if power < 1 || power > d.maxPower {
		return nil, errors.Wrapf(ErrInvalidPower, "power %d not in [1, %d]", power, d.maxPower)
	}
	order := 1 << power
	factors := factor.NonTrivialFactors(order - 1)
	if len(factors) == 0 {
		klog.V(1).Infof("GF(%d): %d has no nontrivial factors, nothing to do", order, order-1)
		return nil, nil
	}

	f, err := field.New(order)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidPower, "power %d: %v", power, err)
	}

	outcomes := make([]BuildOutcome, len(factors))
	var g errgroup.Group
	g.SetLimit(d.workers)
	for i, n := range factors {
		i, n := i, n
		g.Go(func() error {
			outcomes[i] = d.buildTask(ctx, f, n)
			return nil
		})
	}
	_ = g.Wait()

	return outcomes, nil
}

func (d *Dispatcher) buildTask(ctx context.Context, f *field.Field, n int) (out BuildOutcome) {
	out = BuildOutcome{FieldOrder: f.Order(), ResiduePower: n}
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			out.Record, out.Err = nil, errors.Errorf("panic: %v", r)
		}
		d.metrics.ObserveTask(metrics.StageBuild, start)
		if out.Err != nil {
			d.metrics.TaskFailed(metrics.StageBuild)
			return
		}
		d.metrics.GraphBuilt(f.Order())
	}()

	ctx, cancel := d.taskContext(ctx)
	defer cancel()

	rel, err := relation.NewPowerIn(f, n, d.combine)
	if err != nil {
		out.Err = errors.Wrap(err, "residue relation")
		return out
	}
	graph, err := builder.BuildGraph(
		[]core.GraphOption{core.WithCapacity(f.Order())},
		[]builder.BuilderOption{builder.WithContext(ctx)},
		builder.FieldGraph(f, rel),
	)
	if err != nil {
		out.Err = errors.Wrap(err, "build graph")
		return out
	}

	klog.V(2).Infof("%s, Residue Power: %d built: %d edges in %v", f, n, graph.EdgeCount(), time.Since(start))
	out.Record = &GraphRecord{FieldOrder: f.Order(), Graph: graph, ResiduePower: n}
	return out
}

func (d *Dispatcher) taskContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if d.taskTimeout > 0 {
		return context.WithTimeout(ctx, d.taskTimeout)
	}
	return context.WithCancel(ctx)
}
