package pipeline

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gfsrg/bfs"
	"github.com/katalvlaran/gfsrg/metrics"
	"github.com/katalvlaran/gfsrg/srg"
)

// CheckGraphs tests every record for connectivity and, only when connected,
// strong regularity. It returns one outcome per record in input order.
func (d *Dispatcher) CheckGraphs(ctx context.Context, records []GraphRecord) []CheckOutcome {
	if len(records) == 0 {
		return nil
	}

	outcomes := make([]CheckOutcome, len(records))
	var g errgroup.Group
	g.SetLimit(d.workers)
	for i := range records {
		i := i
		g.Go(func() error {
			outcomes[i] = d.checkTask(ctx, records[i])
			return nil
		})
	}
	_ = g.Wait()

	return outcomes
}

func (d *Dispatcher) checkTask(ctx context.Context, rec GraphRecord) (out CheckOutcome) {
	out = CheckOutcome{FieldOrder: rec.FieldOrder, ResiduePower: rec.ResiduePower}
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			out.Record, out.Err = nil, errors.Errorf("panic: %v", r)
		}
		d.metrics.ObserveTask(metrics.StageCheck, start)
		switch {
		case out.Err != nil:
			d.metrics.TaskFailed(metrics.StageCheck)
		case !out.Record.Connected:
			d.metrics.GraphChecked(metrics.ResultDisconnected)
		case out.Record.SRG.OK:
			d.metrics.GraphChecked(metrics.ResultSRG)
		default:
			d.metrics.GraphChecked(metrics.ResultNotSRG)
		}
	}()

	ctx, cancel := d.taskContext(ctx)
	defer cancel()

	connected, err := bfs.Connected(ctx, rec.Graph)
	if err != nil {
		out.Err = errors.Wrap(err, "connectivity")
		return out
	}
	checked := &CheckedRecord{GraphRecord: rec, Connected: connected, SRG: srg.False}
	if connected {
		res, err := srg.Check(ctx, rec.Graph)
		if err != nil {
			out.Err = errors.Wrap(err, "strong regularity")
			return out
		}
		checked.SRG = res
	} else if klog.V(2) {
		if comps, err := bfs.Components(ctx, rec.Graph); err == nil {
			klog.Infof("GF(%d), Residue Power: %d splits into %d components", rec.FieldOrder, rec.ResiduePower, len(comps))
		}
	}

	klog.V(2).Infof("GF(%d), Residue Power: %d checked: connected=%v srg=%s", rec.FieldOrder, rec.ResiduePower, checked.Connected, checked.SRG)
	out.Record = checked
	return out
}
