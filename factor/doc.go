// SPDX-License-Identifier: MIT
// Package factor provides the small integer utilities the field-graph pipeline
// depends on: nontrivial divisors of the unit-group order, primality, and
// prime-power decomposition of a field order.
//
// What
//
//   - NonTrivialFactors(n): divisors d of n with 1 < d < n, sorted ascending, unique.
//     Empty iff n is prime (or n < 4, which has no nontrivial divisor).
//   - IsPrime(n): trial division up to √n.
//   - PrimePower(q): (p, k) with q = p^k, or ok=false.
//
// Complexity
//
//   - NonTrivialFactors: O(√n) divisions plus O(d log d) ordered insertion.
//   - PrimePower: O(√q) for the smallest prime factor, O(log q) for the exponent.
package factor
