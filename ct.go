package mlkem

// ctEqualMask compares a and b (equal length) and returns a byte mask that
// is 0xff if they are equal and 0x00 otherwise, without branching on the
// comparison result. Generalizes the XOR-accumulate comparison the teacher
// uses inline in verifyInternal (mldsa65.go) into a reusable mask-producing
// primitive; the one-bit-set-to-all-bits-set step is the same trick
// crypto/subtle's ConstantTimeByteEq uses.
func ctEqualMask(a, b []byte) byte {
	var diff byte
	for i := range a {
		diff |= a[i] ^ b[i]
	}
	// bit 7 of (diff | -diff) is set iff diff != 0 (two's complement, 8-bit).
	nonzero := (diff | -diff) >> 7
	// nonzero == 0 -> mask = 0xff (equal); nonzero == 1 -> mask = 0x00.
	return nonzero - 1
}

// ctSelect overwrites dst with a where cond is 0xff, or b where cond is
// 0x00 (any other mask value yields an undefined per-bit blend), touching
// every byte of both inputs so the selection itself carries no timing
// signal. a, b, and dst must have equal length. Used by decaps for
// implicit rejection, which - unlike the teacher's accept/reject Verify -
// must select between two candidate shared secrets rather than just
// branch on a boolean.
func ctSelect(dst, a, b []byte, cond byte) {
	for i := range dst {
		dst[i] = (a[i] & cond) | (b[i] &^ cond)
	}
}

// memwipe overwrites b with zeros, grounded on the memwipe helper used
// throughout Yawning/newhope's key exchange (newhope.go, poly.go) to clear
// seeds and noise polynomials as soon as the structures they derive are
// built. spec.md §5/§9 names this MANDATORY for ŝ, z, K, m, r and the
// intermediate y/e/e1/e2 polynomials; every call site below clears a value
// from that list once it has served its purpose.
func memwipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// memwipeField zeroizes a slice of field elements in place, for the
// polyVec/nttVec intermediates spec.md §5 names (sVec/eVec, rVec/e1/e2)
// that live as []fieldElement rather than []byte.
func memwipeField(f []fieldElement) {
	for i := range f {
		f[i] = 0
	}
}
