package mlkem

import "golang.org/x/crypto/sha3"

// g implements spec.md §4.5's G = SHA3-512, returning 64 bytes split by the
// caller into (K, r) or (K', r') as needed.
func g(input []byte) [64]byte {
	return sha3.Sum512(input)
}

// h implements spec.md §4.5's H = SHA3-256.
func h(input []byte) [32]byte {
	return sha3.Sum256(input)
}

// j implements spec.md §4.6's J = SHAKE-256 truncated to 32 bytes, used to
// derive the implicit-rejection pseudorandom shared secret from z || ct.
func j(z, ct []byte) [32]byte {
	d := sha3.NewShake256()
	d.Write(z)
	d.Write(ct)
	var out [32]byte
	d.Read(out[:])
	return out
}

// prf implements spec.md §4.5's PRF_eta(s, b) = SHAKE-256(s || b), read out
// to 64*eta bytes.
func prf(eta int, s []byte, b byte) []byte {
	d := sha3.NewShake256()
	d.Write(s)
	d.Write([]byte{b})
	out := make([]byte, 64*eta)
	d.Read(out)
	return out
}

// xofReader returns a SHAKE-128 reader absorbing rho || j || i, the column-
// then-row byte order FIPS 203 fixes for matrix expansion (spec.md §4.5,
// §9 open question).
func xofReader(rho []byte, col, row byte) sha3.ShakeHash {
	d := sha3.NewShake128()
	d.Write(rho)
	d.Write([]byte{col, row})
	return d
}
