// SPDX-License-Identifier: MIT
// Package: gfsrg/factor
//
// factor.go — divisor enumeration and prime-power classification.
//
// Contract:
//   • Inputs below the documented minimum return empty results, never panic.
//   • NonTrivialFactors output is strictly ascending (treeset iteration order).

package factor

import (
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// NonTrivialFactors returns every divisor d of n with 1 < d < n in ascending
// order without duplicates. A prime n (and any n < 4) yields an empty slice.
// Complexity: O(√n) trial divisions.
func NonTrivialFactors(n int) []int {
	if n < 4 {
		return []int{}
	}

	// Paired divisors (i, n/i) collapse on perfect squares; the set dedups them.
	divisors := treeset.NewWith(utils.IntComparator)
	for i := 2; i*i <= n; i++ {
		if n%i == 0 {
			divisors.Add(i, n/i)
		}
	}

	out := make([]int, 0, divisors.Size())
	it := divisors.Iterator()
	for it.Next() {
		out = append(out, it.Value().(int))
	}

	return out
}

// IsPrime reports whether n is a prime number.
func IsPrime(n int) bool {
	if n < 2 {
		return false
	}
	if n%2 == 0 {
		return n == 2
	}
	for i := 3; i*i <= n; i += 2 {
		if n%i == 0 {
			return false
		}
	}

	return true
}

// PrimePower decomposes q as p^k with p prime and k ≥ 1.
// ok is false when q < 2 or q has two distinct prime factors.
func PrimePower(q int) (p, k int, ok bool) {
	if q < 2 {
		return 0, 0, false
	}

	p = smallestPrimeFactor(q)
	for q%p == 0 {
		q /= p
		k++
	}
	if q != 1 {
		return 0, 0, false
	}

	return p, k, true
}

// smallestPrimeFactor returns the least prime dividing n (n ≥ 2).
func smallestPrimeFactor(n int) int {
	if n%2 == 0 {
		return 2
	}
	for i := 3; i*i <= n; i += 2 {
		if n%i == 0 {
			return i
		}
	}

	return n
}
