package mlkem

// Params holds the fixed constants of one ML-KEM parameter set, letting
// K-PKE and ML-KEM operate on a single generic implementation instead of
// the teacher's three fully duplicated 44/65/87 files (spec.md §9 records
// this as a deliberate deviation: profiles are values here, not types).
type Params struct {
	// name identifies the parameter set for error messages.
	name string

	// k is the module rank: the dimension of the vectors and matrices
	// built from n-coefficient polynomials.
	k int

	// eta1 is the CBD parameter used when sampling the secret and error
	// vectors during key generation and encryption's r vector.
	eta1 int

	// eta2 is the CBD parameter used when sampling encryption's e1/e2
	// error terms.
	eta2 int

	// du, dv are the compression widths applied to the ciphertext's u
	// and v components respectively.
	du int
	dv int
}

// Params512, Params768 and Params1024 are the three parameter sets FIPS
// 203 defines, corresponding to NIST security categories 1, 3 and 5.
var (
	Params512 = &Params{name: "ML-KEM-512", k: 2, eta1: 3, eta2: 2, du: 10, dv: 4}

	Params768 = &Params{name: "ML-KEM-768", k: 3, eta1: 2, eta2: 2, du: 10, dv: 4}

	Params1024 = &Params{name: "ML-KEM-1024", k: 4, eta1: 2, eta2: 2, du: 11, dv: 5}
)

// EncapsulationKeySize returns the encoded length of an encapsulation key.
func (p *Params) EncapsulationKeySize() int {
	return p.k*n*12/8 + 32
}

// DecapsulationKeySize returns the encoded length of a decapsulation key.
func (p *Params) DecapsulationKeySize() int {
	return p.k*n*12/8 + p.EncapsulationKeySize() + 32 + 32
}

// CiphertextSize returns the encoded length of a ciphertext.
func (p *Params) CiphertextSize() int {
	return p.k*p.du*n/8 + p.dv*n/8
}

