// SPDX-License-Identifier: MIT
// File: relation.go
// Role: Relation interface, combiners and the power-residue relation.

package relation

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/gfsrg/field"
)

var (
	// ErrBadPower indicates a residue exponent below 1.
	ErrBadPower = errors.New("relation: residue power must be >= 1")

	// ErrNilCombiner indicates a nil combining operation.
	ErrNilCombiner = errors.New("relation: combiner is nil")
)

// Relation is a binary predicate on elements of one field.
type Relation interface {
	Related(x, y field.Element) bool
}

// Func adapts a plain function to Relation.
type Func func(x, y field.Element) bool

// Related calls fn(x, y).
func (fn Func) Related(x, y field.Element) bool { return fn(x, y) }

// Combiner merges two elements into the value the residue test inspects.
type Combiner func(f *field.Field, x, y field.Element) field.Element

// Difference returns x − y.
func Difference(f *field.Field, x, y field.Element) field.Element { return f.Sub(x, y) }

// Sum returns x + y.
func Sum(f *field.Field, x, y field.Element) field.Element { return f.Add(x, y) }

// Power is the n-th power residue relation over a field.
type Power struct {
	f       *field.Field
	power   int
	combine Combiner
	residue []bool // residue[e] ⇔ e = z^power for some z ≠ 0
	count   int
}

// NewPower builds the relation "combine(x,y) is a nonzero power-th power" in
// the field of the given order.
//
// Errors:
//   - ErrBadPower if power < 1.
//   - ErrNilCombiner if combine is nil.
//   - field.ErrNotPrimePower / field.ErrOrderTooLarge for an invalid order.
//
// Complexity: O(q log n) time, O(q) space.
func NewPower(power int, combine Combiner, order int) (*Power, error) {
	if power < 1 {
		return nil, fmt.Errorf("relation: NewPower(%d): %w", power, ErrBadPower)
	}
	if combine == nil {
		return nil, fmt.Errorf("relation: NewPower: %w", ErrNilCombiner)
	}
	f, err := field.New(order)
	if err != nil {
		return nil, fmt.Errorf("relation: NewPower: %w", err)
	}

	return NewPowerIn(f, power, combine)
}

// NewPowerIn is NewPower over an already constructed field.
func NewPowerIn(f *field.Field, power int, combine Combiner) (*Power, error) {
	if power < 1 {
		return nil, fmt.Errorf("relation: NewPowerIn(%d): %w", power, ErrBadPower)
	}
	if combine == nil {
		return nil, fmt.Errorf("relation: NewPowerIn: %w", ErrNilCombiner)
	}

	r := &Power{
		f:       f,
		power:   power,
		combine: combine,
		residue: make([]bool, f.Order()),
	}
	for _, z := range f.Elements() {
		if f.IsZero(z) {
			continue
		}
		if c := f.Pow(z, power); !r.residue[c] {
			r.residue[c] = true
			r.count++
		}
	}

	return r, nil
}

// Related reports whether combine(x, y) is a nonzero residue.
// Elements outside the field are never related.
func (r *Power) Related(x, y field.Element) bool {
	if !r.f.Contains(x) || !r.f.Contains(y) {
		return false
	}
	c := r.combine(r.f, x, y)
	return !r.f.IsZero(c) && r.residue[c]
}

// Field returns the underlying field.
func (r *Power) Field() *field.Field { return r.f }

// Exponent returns the residue power n.
func (r *Power) Exponent() int { return r.power }

// Residues returns the nonzero n-th powers in ascending element order.
func (r *Power) Residues() []field.Element {
	out := make([]field.Element, 0, r.count)
	for e, ok := range r.residue {
		if ok {
			out = append(out, field.Element(e))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
