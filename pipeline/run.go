package pipeline

import (
	"context"
	"io"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/gfsrg/metrics"
	"github.com/katalvlaran/gfsrg/report"
)

// Process runs both stages for one power and splits the outcomes into
// records and failures.
func (d *Dispatcher) Process(ctx context.Context, power int) (Batch, error) {
	batch := Batch{Power: power}

	built, err := d.GenerateGraphs(ctx, power)
	if err != nil {
		return batch, err
	}

	records := make([]GraphRecord, 0, len(built))
	for _, o := range built {
		if o.Err != nil {
			batch.Failures = append(batch.Failures, TaskFailure{metrics.StageBuild, o.FieldOrder, o.ResiduePower, o.Err})
			continue
		}
		records = append(records, *o.Record)
	}

	for _, o := range d.CheckGraphs(ctx, records) {
		if o.Err != nil {
			batch.Failures = append(batch.Failures, TaskFailure{metrics.StageCheck, o.FieldOrder, o.ResiduePower, o.Err})
			continue
		}
		batch.Checked = append(batch.Checked, *o.Record)
	}

	return batch, nil
}

// Run processes powers in the given order, writing each power's results to w
// before starting the next. Task failures are logged and collected in the
// Summary; an invalid power or a write error stops the run.
func (d *Dispatcher) Run(ctx context.Context, powers []int, w io.Writer) (Summary, error) {
	var sum Summary
	for _, p := range powers {
		if err := ctx.Err(); err != nil {
			return sum, errors.Wrap(err, "pipeline: run")
		}

		batch, err := d.Process(ctx, p)
		if err != nil {
			return sum, err
		}
		sum.add(batch)
		klog.Infof("power %d: GF(%d), %d graphs, %d failures", p, 1<<p, len(batch.Checked), len(batch.Failures))

		for _, f := range batch.Failures {
			klog.Warningf("%s", f.Error())
		}

		lines := make([]report.Record, len(batch.Checked))
		for i, c := range batch.Checked {
			lines[i] = c.Report()
		}
		if err := report.WriteResults(w, lines); err != nil {
			return sum, errors.Wrapf(err, "pipeline: power %d", p)
		}
	}

	return sum, nil
}
