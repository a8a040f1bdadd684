// SPDX-License-Identifier: MIT
// Package field implements arithmetic in finite (Galois) fields GF(p^k).
//
// What
//
//   - New(order) builds GF(order) for any prime power order ≤ MaxOrder.
//   - Elements are small integers 0..order-1 encoding the coefficient vector of
//     the element in the polynomial basis {1, x, …, x^(k-1)} as base-p digits.
//     In characteristic 2 an Element is simply the bit vector of coefficients.
//   - The defining polynomial is the smallest primitive monic polynomial of
//     degree k over GF(p), so x itself generates the unit group.
//   - Multiplication, inversion and exponentiation go through exp/log tables.
//
// Why
//
//	The graph pipeline evaluates x^n for every element once per relation and
//	x−y for every ordered pair; table lookups keep both O(1).
//
// Concurrency
//
//	A *Field is immutable after New returns and safe for concurrent readers.
//
// Errors
//
//   - ErrNotPrimePower: order < 2 or order has two distinct prime factors.
//   - ErrOrderTooLarge: order > MaxOrder.
package field
