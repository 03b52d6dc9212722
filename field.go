package mlkem

// fieldElement is an integer modulo q, always held in reduced form [0, q).
type fieldElement uint16

// ringElement is a polynomial with n coefficients in Z_q in standard form.
type ringElement [n]fieldElement

// nttElement is the NTT-domain representation of a polynomial. ML-KEM's
// NTT is incomplete (it stops one layer short of a full transform), so an
// nttElement is really 128 pairs of coefficients of degree-1 polynomials
// modulo X^2-gamma_i rather than 256 independent evaluation points; see
// ntt.go.
type nttElement [n]fieldElement

// barrettShift/barrettMultiplier implement Barrett reduction for products
// modulo q. Unlike the teacher's Montgomery arithmetic (needed because
// ML-DSA's q is within a few bits of 2^23 and products need a 2^32 R),
// every product of two ML-KEM field elements fits in 24 bits, so a plain
// Barrett reduction is simpler and just as constant-time; see field_test.go
// for the exhaustive check that the reduction below never needs more than
// one conditional subtract.
const (
	barrettShift      = 24
	barrettMultiplier = (1 << barrettShift) / q
)

// fieldReduceOnce reduces a value in [0, 2q) to [0, q) without branching on
// the input: the sign-extension of the post-subtraction high bit either
// restores q (if a < q) or leaves the subtracted value alone (if a >= q).
func fieldReduceOnce(a uint32) fieldElement {
	x := a - q
	x += (x >> 31) * q
	return fieldElement(x)
}

// fieldAdd returns (a + b) mod q.
func fieldAdd(a, b fieldElement) fieldElement {
	return fieldReduceOnce(uint32(a) + uint32(b))
}

// fieldSub returns (a - b) mod q.
func fieldSub(a, b fieldElement) fieldElement {
	return fieldReduceOnce(uint32(a) - uint32(b) + q)
}

// fieldMul returns (a * b) mod q via Barrett reduction. The estimate is
// exact except for rounding, which leaves the result in [0, 2q); the final
// fieldReduceOnce brings it to canonical form. Exhaustively verified (see
// field_test.go) to never require more than that single correction.
func fieldMul(a, b fieldElement) fieldElement {
	t := uint32(a) * uint32(b)
	quotientEstimate := uint32((uint64(t) * barrettMultiplier) >> barrettShift)
	r := t - quotientEstimate*q
	return fieldReduceOnce(r)
}

// polyAdd adds two polynomials coefficient-wise.
func polyAdd[T ~[n]fieldElement](a, b T) (c T) {
	for i := range c {
		c[i] = fieldAdd(a[i], b[i])
	}
	return c
}

// polySub subtracts two polynomials coefficient-wise.
func polySub[T ~[n]fieldElement](a, b T) (c T) {
	for i := range c {
		c[i] = fieldSub(a[i], b[i])
	}
	return c
}
