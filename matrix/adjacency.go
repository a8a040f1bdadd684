// SPDX-License-Identifier: MIT
// Package matrix - bit-packed adjacency snapshot of a core.Graph.
//
// Deliverables:
//   1) Stable vertex order (g.Vertices()) and reverse index.
//   2) Symmetric rows; a self-loop sets its diagonal bit.
//   3) Popcount-based Degree / CommonNeighbors without allocation.

package matrix

import (
	"fmt"
	"math/bits"

	"github.com/katalvlaran/gfsrg/core"
)

const wordBits = 64

// Adjacency is an immutable V×V 0/1 matrix packed into uint64 rows.
type Adjacency struct {
	n     int
	words int            // words per row
	rows  []uint64       // n*words, row-major
	ids   []string       // index → vertex ID
	index map[string]int // vertex ID → index
}

// NewAdjacency snapshots g into an Adjacency.
//
// Errors:
//   - ErrGraphNil for a nil graph.
//   - ErrUnknownVertex if an edge endpoint is missing from g.Vertices()
//     (only possible under concurrent mutation of g).
//
// Complexity: Time O(V + E), Space O(V²/64).
func NewAdjacency(g *core.Graph) (*Adjacency, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	ids := g.Vertices()
	n := len(ids)
	a := &Adjacency{
		n:     n,
		words: (n + wordBits - 1) / wordBits,
		ids:   ids,
		index: make(map[string]int, n),
	}
	a.rows = make([]uint64, n*a.words)
	for i, id := range ids {
		a.index[id] = i
	}

	for _, e := range g.Edges() {
		i, ok := a.index[e.From]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownVertex, e.From)
		}
		j, ok := a.index[e.To]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownVertex, e.To)
		}
		a.set(i, j)
		a.set(j, i)
	}

	return a, nil
}

func (a *Adjacency) set(i, j int) {
	a.rows[i*a.words+j/wordBits] |= 1 << uint(j%wordBits)
}

func (a *Adjacency) row(i int) []uint64 {
	return a.rows[i*a.words : (i+1)*a.words]
}

// Size returns V.
func (a *Adjacency) Size() int { return a.n }

// IDs returns a copy of the index → vertex ID table.
func (a *Adjacency) IDs() []string {
	out := make([]string, len(a.ids))
	copy(out, a.ids)
	return out
}

// Index returns the row index of a vertex ID.
func (a *Adjacency) Index(id string) (int, error) {
	i, ok := a.index[id]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownVertex, id)
	}
	return i, nil
}

// Has reports whether entry (i, j) is 1. Out-of-range indices report false.
func (a *Adjacency) Has(i, j int) bool {
	if i < 0 || j < 0 || i >= a.n || j >= a.n {
		return false
	}
	return a.rows[i*a.words+j/wordBits]&(1<<uint(j%wordBits)) != 0
}

// Degree returns the number of ones in row i.
func (a *Adjacency) Degree(i int) (int, error) {
	if i < 0 || i >= a.n {
		return 0, ErrOutOfRange
	}
	d := 0
	for _, w := range a.row(i) {
		d += bits.OnesCount64(w)
	}
	return d, nil
}

// CommonNeighbors returns |N(i) ∩ N(j)|.
func (a *Adjacency) CommonNeighbors(i, j int) (int, error) {
	if i < 0 || j < 0 || i >= a.n || j >= a.n {
		return 0, ErrOutOfRange
	}
	ri, rj := a.row(i), a.row(j)
	c := 0
	for k := range ri {
		c += bits.OnesCount64(ri[k] & rj[k])
	}
	return c, nil
}

// HasLoops reports whether any diagonal entry is set.
func (a *Adjacency) HasLoops() bool {
	for i := 0; i < a.n; i++ {
		if a.Has(i, i) {
			return true
		}
	}
	return false
}
