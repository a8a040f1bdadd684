package pipeline

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gfsrg/core"
	"github.com/katalvlaran/gfsrg/report"
	"github.com/katalvlaran/gfsrg/srg"
)

// ErrInvalidPower is returned for a power below 1 or one whose field exceeds
// field.MaxOrder (or the dispatcher's max power).
var ErrInvalidPower = errors.New("pipeline: invalid power")

// GraphRecord is a constructed field graph.
type GraphRecord struct {
	FieldOrder   int
	Graph        *core.Graph
	ResiduePower int
}

// CheckedRecord is a GraphRecord with its property results. SRG is always
// srg.False for a disconnected graph.
type CheckedRecord struct {
	GraphRecord
	Connected bool
	SRG       srg.Result
}

// Report converts c to a report line.
func (c CheckedRecord) Report() report.Record {
	return report.Record{
		FieldOrder:   c.FieldOrder,
		ResiduePower: c.ResiduePower,
		Connected:    c.Connected,
		SRG:          c.SRG,
	}
}

// BuildOutcome is the result slot of one construction task: exactly one of
// Record and Err is set.
type BuildOutcome struct {
	Record       *GraphRecord
	FieldOrder   int
	ResiduePower int
	Err          error
}

// CheckOutcome is the result slot of one check task.
type CheckOutcome struct {
	Record       *CheckedRecord
	FieldOrder   int
	ResiduePower int
	Err          error
}

// TaskFailure describes a task that did not produce a record.
type TaskFailure struct {
	Stage        string // metrics.StageBuild or metrics.StageCheck
	FieldOrder   int
	ResiduePower int
	Err          error
}

// Error renders "GF(q), Residue Power: p failed: err".
func (f TaskFailure) Error() string {
	return fmt.Sprintf("GF(%d), Residue Power: %d failed: %v", f.FieldOrder, f.ResiduePower, f.Err)
}

// Unwrap exposes the task error.
func (f TaskFailure) Unwrap() error { return f.Err }

// Batch is everything one power produced.
type Batch struct {
	Power    int
	Checked  []CheckedRecord
	Failures []TaskFailure
}

// Summary totals a Run.
type Summary struct {
	Powers          int
	Graphs          int
	Connected       int
	StronglyRegular int
	Failures        []TaskFailure
}

func (s *Summary) add(b Batch) {
	s.Powers++
	s.Graphs += len(b.Checked)
	for _, c := range b.Checked {
		if c.Connected {
			s.Connected++
		}
		if c.SRG.OK {
			s.StronglyRegular++
		}
	}
	s.Failures = append(s.Failures, b.Failures...)
}

// String is a one-line human summary.
func (s Summary) String() string {
	return fmt.Sprintf("%d powers, %d graphs, %d connected, %d strongly regular, %d failures",
		s.Powers, s.Graphs, s.Connected, s.StronglyRegular, len(s.Failures))
}
