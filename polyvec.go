package mlkem

// polyVec is a vector of k polynomials in standard form (secret and error
// vectors, decrypted u).
type polyVec []ringElement

// nttVec is a vector of k NTT-domain polynomials (everything the
// arithmetic actually touches).
type nttVec []nttElement

func nttVecOf(v polyVec) nttVec {
	out := make(nttVec, len(v))
	for i, p := range v {
		out[i] = ntt(p)
	}
	return out
}

func (v nttVec) invNTT() polyVec {
	out := make(polyVec, len(v))
	for i, p := range v {
		out[i] = invNTT(p)
	}
	return out
}

func (v polyVec) add(w polyVec) polyVec {
	out := make(polyVec, len(v))
	for i := range v {
		out[i] = polyAdd(v[i], w[i])
	}
	return out
}

func (v nttVec) add(w nttVec) nttVec {
	out := make(nttVec, len(v))
	for i := range v {
		out[i] = polyAdd(v[i], w[i])
	}
	return out
}

// dot computes the NTT-domain inner product of two vectors, implementing
// the sum of BaseCaseMultiply results FIPS 203's matrix-vector product
// requires.
func (v nttVec) dot(w nttVec) nttElement {
	var acc nttElement
	for i := range v {
		acc = polyAdd(acc, nttMul(v[i], w[i]))
	}
	return acc
}

// zero wipes every coefficient of every polynomial in v, mirroring the
// scalar.zero()/vector.zero() pair in DrKLO-Telegram's kyber.go. Used to
// clear the secret and error vectors (sVec/eVec, rVec/e1) once K-PKE has
// transformed them into the NTT-domain values it actually needs, per
// spec.md §5's zeroization requirement on intermediate y/e/e1/e2.
func (v polyVec) zero() {
	for i := range v {
		memwipeField(v[i][:])
	}
}

// zero is the NTT-domain counterpart, used to wipe the long-lived secret
// vector ŝ (DecapsulationKey.s) on explicit caller request.
func (v nttVec) zero() {
	for i := range v {
		memwipeField(v[i][:])
	}
}

// expandMatrix deterministically derives the public kxk matrix A (in
// NTT domain) from the 32-byte seed rho, implementing FIPS 203 Algorithm 6
// (K-PKE.KeyGen's matrix generation step). A[i][j] is sampled from the
// XOF seeded with rho || j || i (sampleNTT(rho, j, i));
// transposed is set when the caller needs A^T instead (K-PKE.Encrypt),
// avoiding a second expansion of the same seed.
func expandMatrix(rho []byte, k int, transposed bool) []nttVec {
	a := make([]nttVec, k)
	for i := range a {
		a[i] = make(nttVec, k)
	}
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			if transposed {
				a[i][j] = sampleNTT(rho, byte(i), byte(j))
			} else {
				a[i][j] = sampleNTT(rho, byte(j), byte(i))
			}
		}
	}
	return a
}

// matVecMulNTT computes A*s in NTT domain, one dot product per matrix row.
func matVecMulNTT(a []nttVec, s nttVec) nttVec {
	out := make(nttVec, len(a))
	for i := range a {
		out[i] = a[i].dot(s)
	}
	return out
}
