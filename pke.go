package mlkem

// K-PKE is the CPA-secure public-key encryption scheme FIPS 203 builds
// ML-KEM's CCA-secure KEM on top of via the Fujisaki-Okamoto transform
// (spec.md §4.5, §4.6). Grounded on the teacher's top-level key generation
// and signing flow (mldsa65.go) for overall shape: derive seeds, expand a
// matrix, sample secret/error vectors, assemble the public artifact.

// kpkePublicKey is (Â's seed rho, t_hat = Â∘ŝ+ê encoded).
type kpkePublicKey struct {
	rho []byte
	t   nttVec
}

// kpkeKeyGen implements FIPS 203 Algorithm 13 (K-PKE.KeyGen). d is the
// 32-byte seed; kpkeKeyGen appends the single byte k to it as domain
// separation before calling g.
func kpkeKeyGen(p *Params, d []byte) (pub kpkePublicKey, s nttVec) {
	seed := make([]byte, 0, 33)
	seed = append(seed, d...)
	seed = append(seed, byte(p.k))
	grs := g(seed)
	rho, sigma := grs[:32], grs[32:]

	a := expandMatrix(rho, p.k, false)

	sVec := make(polyVec, p.k)
	nonce := byte(0)
	for i := range sVec {
		sVec[i] = samplePolyCBD(p.eta1, prf(p.eta1, sigma, nonce))
		nonce++
	}
	eVec := make(polyVec, p.k)
	for i := range eVec {
		eVec[i] = samplePolyCBD(p.eta1, prf(p.eta1, sigma, nonce))
		nonce++
	}
	memwipe(sigma)

	sHat := nttVecOf(sVec)
	eHat := nttVecOf(eVec)
	sVec.zero()
	eVec.zero()
	tHat := matVecMulNTT(a, sHat).add(eHat)

	return kpkePublicKey{rho: rho, t: tHat}, sHat
}

// kpkeEncrypt implements FIPS 203 Algorithm 14 (K-PKE.Encrypt). m is the
// 32-byte plaintext (already decoded from a message polynomial's worth of
// bits), coins is the 32-byte randomness r.
func kpkeEncrypt(p *Params, pub kpkePublicKey, m, coins []byte) []byte {
	aT := expandMatrix(pub.rho, p.k, true)

	rVec := make(polyVec, p.k)
	nonce := byte(0)
	for i := range rVec {
		rVec[i] = samplePolyCBD(p.eta1, prf(p.eta1, coins, nonce))
		nonce++
	}
	e1 := make(polyVec, p.k)
	for i := range e1 {
		e1[i] = samplePolyCBD(p.eta2, prf(p.eta2, coins, nonce))
		nonce++
	}
	e2 := samplePolyCBD(p.eta2, prf(p.eta2, coins, nonce))

	rHat := nttVecOf(rVec)
	u := matVecMulNTT(aT, rHat).invNTT().add(e1)

	mu := decompressPoly(byteDecodeToPoly(m, 1), 1)
	vHat := pub.t.dot(rHat)
	v := polyAdd(polyAdd(invNTT(vHat), e2), mu)

	rVec.zero()
	e1.zero()
	memwipeField(e2[:])

	out := make([]byte, 0, p.CiphertextSize())
	for _, poly := range u {
		out = append(out, byteEncode(toFieldSlice(compressPoly(poly, p.du)), p.du)...)
	}
	out = append(out, byteEncode(toFieldSlice(compressPoly(v, p.dv)), p.dv)...)
	return out
}

// kpkeDecrypt implements FIPS 203 Algorithm 15 (K-PKE.Decrypt).
func kpkeDecrypt(p *Params, s nttVec, ct []byte) []byte {
	uBytes := p.k * p.du * n / 8
	uEnc, vEnc := ct[:uBytes], ct[uBytes:]

	u := make(polyVec, p.k)
	stride := p.du * n / 8
	for i := range u {
		chunk := uEnc[i*stride : (i+1)*stride]
		u[i] = decompressPoly(fromFieldSlice(byteDecode(chunk, p.du)), p.du)
	}
	v := decompressPoly(fromFieldSlice(byteDecode(vEnc, p.dv)), p.dv)

	uHat := nttVecOf(u)
	w := polySub(v, invNTT(s.dot(uHat)))

	return byteEncode(toFieldSlice(compressPoly(w, 1)), 1)
}

// byteDecodeToPoly lifts a 32-byte message into a ring element with
// 1-bit coefficients, implementing the m -> mu step of FIPS 203
// Algorithm 14.
func byteDecodeToPoly(m []byte, d int) ringElement {
	return fromFieldSlice(byteDecode(m, d))
}

func toFieldSlice(f ringElement) []fieldElement {
	return f[:]
}

func fromFieldSlice(f []fieldElement) ringElement {
	var out ringElement
	copy(out[:], f)
	return out
}
