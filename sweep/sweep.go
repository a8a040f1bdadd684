// Package sweep parses the powers of 2 a run should cover.
//
// Accepted input is a comma-separated list of single powers and inclusive
// ranges, e.g. "4..8, 10" or "3-5". A range whose end is below its start is
// empty, so "8..4" covers nothing. The result is ascending and duplicate free.
package sweep

import (
	"sort"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
)

// ErrEmpty is returned for blank input.
var ErrEmpty = errors.New("sweep: no powers given")

// List is the parsed form of a sweep.
type List struct {
	Items []*Item `parser:"@@ ( ',' @@ )*"`
}

// Item is a single power or an inclusive range.
type Item struct {
	Start int  `parser:"@Int"`
	End   *int `parser:"( ( '..' | '-' ) @Int )?"`
}

var sweepLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Range", Pattern: `\.\.`},
	{Name: "Punct", Pattern: `[,-]`},
	{Name: "whitespace", Pattern: `[ \t]+`},
})

var sweepParser = participle.MustBuild[List](
	participle.Lexer(sweepLexer),
)

// Parse returns the powers named by s in ascending order.
func Parse(s string) ([]int, error) {
	if len(s) == 0 {
		return nil, ErrEmpty
	}
	list, err := sweepParser.ParseString("", s)
	if err != nil {
		return nil, errors.Wrapf(err, "sweep: parse %q", s)
	}

	seen := make(map[int]struct{})
	for _, it := range list.Items {
		end := it.Start
		if it.End != nil {
			end = *it.End
		}
		for p := it.Start; p <= end; p++ {
			seen[p] = struct{}{}
		}
	}

	out := make([]int, 0, len(seen))
	for p := range seen {
		out = append(out, p)
	}
	sort.Ints(out)
	return out, nil
}

// Range returns start, start+1, …, end; it is empty when end < start.
func Range(start, end int) []int {
	if end < start {
		return nil
	}
	out := make([]int, 0, end-start+1)
	for p := start; p <= end; p++ {
		out = append(out, p)
	}
	return out
}
