package mlkem

import (
	"crypto"
	"io"
)

// EncapsulationKey is an ML-KEM public key: the half of a key pair an
// encapsulating party uses to produce a ciphertext and shared secret.
type EncapsulationKey struct {
	params *Params
	pub    kpkePublicKey
	h      [32]byte // H(encoded encapsulation key), cached per spec.md §4.6
}

// DecapsulationKey is an ML-KEM private key: the half of a key pair a
// decapsulating party uses to recover the shared secret from a
// ciphertext. It embeds everything needed for implicit rejection.
type DecapsulationKey struct {
	params *Params
	s      nttVec
	ek     *EncapsulationKey
	z      [32]byte // implicit-rejection seed, FIPS 203 Algorithm 16
}

// GenerateKey512, GenerateKey768 and GenerateKey1024 generate a fresh
// ML-KEM key pair for the corresponding parameter set, reading randomness
// from rand.
func GenerateKey512(rand io.Reader) (*DecapsulationKey, error) {
	return generateKey(Params512, rand)
}

func GenerateKey768(rand io.Reader) (*DecapsulationKey, error) {
	return generateKey(Params768, rand)
}

func GenerateKey1024(rand io.Reader) (*DecapsulationKey, error) {
	return generateKey(Params1024, rand)
}

func generateKey(p *Params, rand io.Reader) (*DecapsulationKey, error) {
	var d, z [32]byte
	if _, err := io.ReadFull(rand, d[:]); err != nil {
		return nil, err
	}
	if _, err := io.ReadFull(rand, z[:]); err != nil {
		return nil, err
	}
	dk, err := keyGenInternal(p, d[:], z[:])
	memwipe(d[:])
	memwipe(z[:])
	return dk, err
}

// keyGenInternal implements FIPS 203 Algorithm 16 (ML-KEM.KeyGen_internal),
// the deterministic core GenerateKey and NewKeyFromSeeds both call into —
// mirroring the teacher's generate()/NewKey65 split between deterministic
// derivation and randomness acquisition (mldsa65.go).
func keyGenInternal(p *Params, d, z []byte) (*DecapsulationKey, error) {
	pub, s := kpkeKeyGen(p, d)

	ek := &EncapsulationKey{params: p, pub: pub}
	ek.h = h(ek.Bytes())

	dk := &DecapsulationKey{params: p, s: s, ek: ek}
	copy(dk.z[:], z)
	return dk, nil
}

// NewKeyFromSeeds reconstructs a key pair from the 32-byte (d, z) seed
// pair used by keyGenInternal, for deterministic key generation in tests
// and KAT vectors.
func NewKeyFromSeeds(p *Params, d, z []byte) (*DecapsulationKey, error) {
	if len(d) != SeedSize || len(z) != SeedSize {
		return nil, ErrInvalidKey
	}
	return keyGenInternal(p, d, z)
}

// EncapsulationKey returns the public half of the key pair.
func (dk *DecapsulationKey) EncapsulationKey() *EncapsulationKey {
	return dk.ek
}

// Bytes returns the encoded encapsulation key: k encoded NTT-domain
// polynomials followed by the 32-byte matrix seed rho.
func (ek *EncapsulationKey) Bytes() []byte {
	out := make([]byte, 0, ek.params.EncapsulationKeySize())
	for _, poly := range ek.pub.t {
		out = append(out, byteEncode(poly[:], 12)...)
	}
	out = append(out, ek.pub.rho...)
	return out
}

// NewEncapsulationKey parses an encoded encapsulation key, implementing
// the modulus check FIPS 203 §7.2 requires before it is used.
func NewEncapsulationKey(p *Params, b []byte) (*EncapsulationKey, error) {
	if len(b) != p.EncapsulationKeySize() {
		return nil, ErrInvalidKey
	}

	t := make(nttVec, p.k)
	stride := n * 12 / 8
	for i := range t {
		coeffs := byteDecode(b[i*stride:(i+1)*stride], 12)
		for _, c := range coeffs {
			if uint32(c) >= q {
				return nil, ErrInvalidKey
			}
		}
		copy(t[i][:], coeffs)
	}
	rho := b[p.k*stride:]

	ek := &EncapsulationKey{params: p, pub: kpkePublicKey{rho: rho, t: t}}
	ek.h = h(b)
	return ek, nil
}

// Equal reports whether ek and other encode the same encapsulation key.
func (ek *EncapsulationKey) Equal(other crypto.PublicKey) bool {
	o, ok := other.(*EncapsulationKey)
	if !ok {
		return false
	}
	return ek.h == o.h
}

// Encapsulate generates a fresh shared secret and its encapsulating
// ciphertext, implementing FIPS 203 Algorithm 20 (ML-KEM.Encaps), reading
// the 32 bytes of randomness m from rand.
func (ek *EncapsulationKey) Encapsulate(rand io.Reader) (ciphertext, sharedSecret []byte, err error) {
	var m [32]byte
	if _, err := io.ReadFull(rand, m[:]); err != nil {
		return nil, nil, err
	}
	ct, ss, err := ek.encapsInternal(m[:])
	memwipe(m[:])
	return ct, ss, err
}

// encapsInternal implements FIPS 203 Algorithm 17 (ML-KEM.Encaps_internal).
func (ek *EncapsulationKey) encapsInternal(m []byte) (ciphertext, sharedSecret []byte, err error) {
	krBuf := g(append(append([]byte{}, m...), ek.h[:]...))
	k, r := krBuf[:32], krBuf[32:]

	ct := kpkeEncrypt(ek.params, ek.pub, m, r)
	memwipe(r) // k (the returned shared secret) shares krBuf's backing array with r; only r's half is wiped
	return ct, k, nil
}

// Decapsulate recovers the shared secret from a ciphertext, implementing
// FIPS 203 Algorithm 21 (ML-KEM.Decaps). On a malformed re-encryption
// check, implicit rejection (FIPS 203 §3.3) returns a pseudorandom
// secret derived from z instead of an error, so the caller cannot
// distinguish a tampered ciphertext from a genuine one by the error
// return alone - the same property the teacher's constant-time signature
// check (verifyInternal) gives the boolean accept/reject path.
func (dk *DecapsulationKey) Decapsulate(ciphertext []byte) ([]byte, error) {
	if len(ciphertext) != dk.params.CiphertextSize() {
		return nil, ErrInvalidCiphertext
	}
	return dk.decapsInternal(ciphertext), nil
}

func (dk *DecapsulationKey) decapsInternal(ct []byte) []byte {
	p := dk.params
	mPrime := kpkeDecrypt(p, dk.s, ct)

	krBuf := g(append(append([]byte{}, mPrime...), dk.ek.h[:]...))
	kPrime, rPrime := krBuf[:32], krBuf[32:]

	ctPrime := kpkeEncrypt(p, dk.ek.pub, mPrime, rPrime)

	kBar := j(dk.z[:], ct)

	mask := ctEqualMask(ct, ctPrime)
	out := make([]byte, 32)
	ctSelect(out, kPrime, kBar[:], mask)

	memwipe(mPrime)
	memwipe(krBuf[:]) // wipes kPrime and rPrime, which alias it
	memwipe(kBar[:])

	return out
}

// Zero wipes the decapsulation key's secret material (ŝ and the
// implicit-rejection seed z) in place. Unlike the ephemeral seeds and
// intermediates elsewhere in this package, ŝ lives for as long as its
// owner retains the key (spec.md §5's lifecycle note), so it cannot be
// zeroized automatically without breaking every later Decapsulate call;
// callers that are done with a key must call Zero explicitly. After
// Zero, dk must not be used again.
func (dk *DecapsulationKey) Zero() {
	dk.s.zero()
	memwipe(dk.z[:])
}

// Bytes returns the encoded decapsulation key: the K-PKE secret vector,
// the embedded encapsulation key, H(ek) and the implicit-rejection seed
// z, in the order FIPS 203 §7.2 fixes.
func (dk *DecapsulationKey) Bytes() []byte {
	out := make([]byte, 0, dk.params.DecapsulationKeySize())
	for _, poly := range dk.s {
		out = append(out, byteEncode(poly[:], 12)...)
	}
	out = append(out, dk.ek.Bytes()...)
	out = append(out, dk.ek.h[:]...)
	out = append(out, dk.z[:]...)
	return out
}

// NewDecapsulationKey parses an encoded decapsulation key.
func NewDecapsulationKey(p *Params, b []byte) (*DecapsulationKey, error) {
	if len(b) != p.DecapsulationKeySize() {
		return nil, ErrInvalidKey
	}

	stride := n * 12 / 8
	sBytes := b[:p.k*stride]
	rest := b[p.k*stride:]

	ekBytes := rest[:p.EncapsulationKeySize()]
	rest = rest[p.EncapsulationKeySize():]

	ekHash := rest[:32]
	z := rest[32:64]

	ek, err := NewEncapsulationKey(p, ekBytes)
	if err != nil {
		return nil, err
	}
	if string(ek.h[:]) != string(ekHash) {
		return nil, ErrInvalidKey
	}

	s := make(nttVec, p.k)
	for i := range s {
		coeffs := byteDecode(sBytes[i*stride:(i+1)*stride], 12)
		copy(s[i][:], coeffs)
	}

	dk := &DecapsulationKey{params: p, s: s, ek: ek}
	copy(dk.z[:], z)
	return dk, nil
}
