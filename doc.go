// Package mlkem implements ML-KEM (Module-Lattice Key Encapsulation
// Mechanism) as specified in FIPS 203.
//
// ML-KEM is a post-quantum key encapsulation mechanism standardized by
// NIST, built from the Module-LWE hardness assumption. This package
// supports three parameter sets:
//   - ML-KEM-512:  NIST security category 1
//   - ML-KEM-768:  NIST security category 3
//   - ML-KEM-1024: NIST security category 5
//
// Basic usage:
//
//	dk, err := mlkem.GenerateKey768(rand.Reader)
//	if err != nil {
//	    // handle error
//	}
//	ct, ss, err := dk.EncapsulationKey().Encapsulate(rand.Reader)
//	if err != nil {
//	    // handle error
//	}
//	ss2, err := dk.Decapsulate(ct)
//	// ss and ss2 now hold the same 32-byte shared secret
package mlkem

// Global ML-KEM constants from FIPS 203.
const (
	// n is the number of coefficients in polynomials.
	n = 256

	// q is the modulus: q = 3329.
	q = 3329

	// SeedSize is the size of the d seed consumed by key generation.
	SeedSize = 32

	// SharedSecretSize is the size of the derived shared secret.
	SharedSecretSize = 32
)
