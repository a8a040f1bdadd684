// Package report renders checked field graphs as result lines and manages
// the output destination.
//
// Line formats:
//
//	GF(<q>), Residue Power: <p>, SRG: <srg>
//	GF(<q>), Residue Power: <p> is not connected
//
// where <srg> is "False" or "(v, k, λ, μ)".
package report

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/katalvlaran/gfsrg/srg"
)

// Record is one line of output.
type Record struct {
	FieldOrder   int
	ResiduePower int
	Connected    bool
	SRG          srg.Result
}

// Line renders r without a trailing newline.
func (r Record) Line() string {
	if !r.Connected {
		return fmt.Sprintf("GF(%d), Residue Power: %d is not connected", r.FieldOrder, r.ResiduePower)
	}
	return fmt.Sprintf("GF(%d), Residue Power: %d, SRG: %s", r.FieldOrder, r.ResiduePower, r.SRG)
}

// WriteResults writes one line per record, in order. Nothing is written for
// an empty slice.
func WriteResults(w io.Writer, records []Record) error {
	if len(records) == 0 {
		return nil
	}
	bw := bufio.NewWriter(w)
	for _, r := range records {
		if _, err := bw.WriteString(r.Line() + "\n"); err != nil {
			return errors.Wrap(err, "report: write")
		}
	}
	return errors.Wrap(bw.Flush(), "report: flush")
}

// Destination names accepted by Open besides file paths.
const (
	Stdout = "stdout"
	Stderr = "stderr"
)

// Output is an opened destination. Close only closes files Open created.
type Output struct {
	io.Writer
	name  string
	close func() error
}

// Name returns "stdout", "stderr" or the file path.
func (o *Output) Name() string { return o.name }

// Close releases the destination.
func (o *Output) Close() error {
	if o.close == nil {
		return nil
	}
	return o.close()
}

// Open resolves dest: "" or "stdout" is standard output, "stderr" is standard
// error, anything else is a file opened for appending (created 0644).
func Open(dest string) (*Output, error) {
	switch dest {
	case "", Stdout:
		return &Output{Writer: os.Stdout, name: Stdout}, nil
	case Stderr:
		return &Output{Writer: os.Stderr, name: Stderr}, nil
	}

	f, err := os.OpenFile(dest, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, errors.Wrapf(err, "report: open %s", dest)
	}
	return &Output{Writer: f, name: dest, close: f.Close}, nil
}
