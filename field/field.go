// SPDX-License-Identifier: MIT
// Package: gfsrg/field
//
// field.go — GF(p^k) construction and table-driven arithmetic.
//
// Contract:
//   • New validates the order before allocating any table.
//   • All arithmetic methods assume their operands belong to this field;
//     use Contains to validate foreign input.

package field

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/gfsrg/factor"
)

// MaxOrder bounds the table size of a constructible field.
const MaxOrder = 1 << 20

// Sentinel errors for field construction.
var (
	// ErrNotPrimePower indicates the requested order is not p^k for a prime p.
	ErrNotPrimePower = errors.New("field: order is not a prime power")

	// ErrOrderTooLarge indicates the requested order exceeds MaxOrder.
	ErrOrderTooLarge = errors.New("field: order too large")
)

// Element is a field element encoded as base-p digits of its polynomial coefficients.
type Element uint32

// Field is an immutable finite field of order p^k.
type Field struct {
	order  int // q = p^k
	char   int // p
	degree int // k

	// modulus holds the low coefficients m_0..m_{k-1} of the monic defining
	// polynomial x^k + m_{k-1}x^{k-1} + … + m_0.
	modulus []int

	exp []Element // exp[i] = x^i, doubled to skip a modulo in Mul
	log []int     // log[e] = i with x^i = e; log[0] is unused
}

// New constructs the finite field of the given order.
// Complexity: O(q·k) per candidate polynomial; a primitive one is found after
// a handful of candidates in practice.
func New(order int) (*Field, error) {
	if order > MaxOrder {
		return nil, fmt.Errorf("field: order %d > %d: %w", order, MaxOrder, ErrOrderTooLarge)
	}
	p, k, ok := factor.PrimePower(order)
	if !ok {
		return nil, fmt.Errorf("field: order %d: %w", order, ErrNotPrimePower)
	}

	f := &Field{order: order, char: p, degree: k}
	f.modulus = make([]int, k)
	units := order - 1
	f.exp = make([]Element, 2*units)
	f.log = make([]int, order)

	// Walk candidate polynomials in lexicographic order of their low coefficients.
	for cand := 0; cand < order; cand++ {
		f.setModulus(cand)
		if f.buildTables() {
			return f, nil
		}
	}

	// Every finite field has a primitive polynomial; reaching here is a bug.
	return nil, fmt.Errorf("field: no primitive polynomial of degree %d over GF(%d)", k, p)
}

// MustNew is New for orders known to be valid at compile time; it panics on error.
func MustNew(order int) *Field {
	f, err := New(order)
	if err != nil {
		panic(err)
	}
	return f
}

// setModulus decodes cand into the low coefficients of the candidate polynomial.
func (f *Field) setModulus(cand int) {
	for i := 0; i < f.degree; i++ {
		f.modulus[i] = cand % f.char
		cand /= f.char
	}
}

// buildTables fills exp/log by repeated multiplication by x and reports
// whether x has multiplicative order exactly q-1 under the current modulus.
func (f *Field) buildTables() bool {
	units := f.order - 1
	seen := make([]bool, f.order)
	digits := make([]int, f.degree)
	digits[0] = 1 // x^0

	for i := 0; i < units; i++ {
		e := f.encode(digits)
		if e == 0 || seen[e] {
			return false
		}
		seen[e] = true
		f.exp[i] = e
		f.exp[i+units] = e
		f.log[e] = i
		f.mulByX(digits)
	}

	// After q-1 steps x^(q-1) must be 1 again.
	return f.encode(digits) == 1
}

// mulByX multiplies the coefficient vector by x and reduces by the modulus.
func (f *Field) mulByX(d []int) {
	top := d[f.degree-1]
	for i := f.degree - 1; i > 0; i-- {
		d[i] = d[i-1]
	}
	d[0] = 0
	if top == 0 {
		return
	}
	// x^k ≡ -(m_{k-1}x^{k-1} + … + m_0)
	for i := 0; i < f.degree; i++ {
		d[i] = mod(d[i]-top*f.modulus[i], f.char)
	}
}

func (f *Field) encode(d []int) Element {
	var e, scale int = 0, 1
	for i := 0; i < f.degree; i++ {
		e += d[i] * scale
		scale *= f.char
	}
	return Element(e)
}

func mod(a, p int) int {
	a %= p
	if a < 0 {
		a += p
	}
	return a
}

// Order returns q.
func (f *Field) Order() int { return f.order }

// Characteristic returns p.
func (f *Field) Characteristic() int { return f.char }

// Degree returns k.
func (f *Field) Degree() int { return f.degree }

// Zero returns the additive identity.
func (f *Field) Zero() Element { return 0 }

// One returns the multiplicative identity.
func (f *Field) One() Element { return 1 }

// Generator returns the primitive element x.
func (f *Field) Generator() Element { return f.exp[1%(f.order-1)] }

// Contains reports whether e is an element of this field.
func (f *Field) Contains(e Element) bool { return int(e) < f.order }

// IsZero reports whether e is the additive identity.
func (f *Field) IsZero(e Element) bool { return e == 0 }

// Elements returns every element 0..q-1 in encoding order.
func (f *Field) Elements() []Element {
	out := make([]Element, f.order)
	for i := range out {
		out[i] = Element(i)
	}
	return out
}

// Add returns a + b.
func (f *Field) Add(a, b Element) Element {
	if f.char == 2 {
		return a ^ b
	}
	return f.digitwise(a, b, 1)
}

// Sub returns a − b.
func (f *Field) Sub(a, b Element) Element {
	if f.char == 2 {
		return a ^ b
	}
	return f.digitwise(a, b, -1)
}

// Neg returns −a.
func (f *Field) Neg(a Element) Element {
	return f.Sub(0, a)
}

// digitwise combines a and b coefficient by coefficient: a_i + sign*b_i mod p.
func (f *Field) digitwise(a, b Element, sign int) Element {
	var out, scale int = 0, 1
	x, y := int(a), int(b)
	for i := 0; i < f.degree; i++ {
		d := mod(x%f.char+sign*(y%f.char), f.char)
		out += d * scale
		scale *= f.char
		x /= f.char
		y /= f.char
	}
	return Element(out)
}

// Mul returns a · b.
func (f *Field) Mul(a, b Element) Element {
	if a == 0 || b == 0 {
		return 0
	}
	return f.exp[f.log[a]+f.log[b]]
}

// Inv returns a⁻¹; ok is false for a = 0.
func (f *Field) Inv(a Element) (inv Element, ok bool) {
	if a == 0 {
		return 0, false
	}
	units := f.order - 1
	return f.exp[(units-f.log[a])%units], true
}

// Pow returns a^n for any integer n. 0^0 = 1, 0^n = 0 for n > 0;
// negative n on zero returns 0.
func (f *Field) Pow(a Element, n int) Element {
	if n == 0 {
		return 1
	}
	if a == 0 {
		return 0
	}
	units := f.order - 1
	e := (f.log[a] * mod(n, units)) % units
	return f.exp[e]
}

// Log returns the discrete logarithm of a to base Generator(); ok is false for a = 0.
func (f *Field) Log(a Element) (int, bool) {
	if a == 0 || !f.Contains(a) {
		return 0, false
	}
	return f.log[a], true
}

// Format renders e as a polynomial in x with the highest degree first, e.g.
// "x^3 + x + 1" or "2*x + 1". Prime fields render the residue in decimal.
func (f *Field) Format(e Element) string {
	if f.degree == 1 {
		return strconv.Itoa(int(e))
	}
	if e == 0 {
		return "0"
	}

	coeffs := make([]int, f.degree)
	v := int(e)
	for i := 0; i < f.degree; i++ {
		coeffs[i] = v % f.char
		v /= f.char
	}

	terms := make([]string, 0, f.degree)
	for i := f.degree - 1; i >= 0; i-- {
		c := coeffs[i]
		if c == 0 {
			continue
		}
		var mono string
		switch i {
		case 0:
			mono = ""
		case 1:
			mono = "x"
		default:
			mono = "x^" + strconv.Itoa(i)
		}
		switch {
		case mono == "":
			terms = append(terms, strconv.Itoa(c))
		case c == 1:
			terms = append(terms, mono)
		default:
			terms = append(terms, strconv.Itoa(c)+"*"+mono)
		}
	}

	return strings.Join(terms, " + ")
}

// String describes the field, e.g. "GF(16)".
func (f *Field) String() string {
	return "GF(" + strconv.Itoa(f.order) + ")"
}
