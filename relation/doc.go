// Package relation builds binary relations on finite-field elements.
//
// The central relation is the power-residue relation: for a fixed exponent n
// and a combining operation ∘ (difference by default),
//
//	Related(x, y) ⇔ x∘y ≠ 0 and x∘y = z^n for some z in the field.
//
// NewPower enumerates the field once, collecting the n-th powers, and freezes
// the set into a bitmap so Related is an O(1), allocation-free lookup safe for
// concurrent use.
package relation
