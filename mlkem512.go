package mlkem

// Sizes for ML-KEM-512 (NIST security category 1).
var (
	EncapsulationKeySize512 = Params512.EncapsulationKeySize()
	DecapsulationKeySize512 = Params512.DecapsulationKeySize()
	CiphertextSize512       = Params512.CiphertextSize()
)

// NewDecapsulationKey512 parses an encoded ML-KEM-512 decapsulation key.
func NewDecapsulationKey512(b []byte) (*DecapsulationKey, error) {
	return NewDecapsulationKey(Params512, b)
}

// NewEncapsulationKey512 parses an encoded ML-KEM-512 encapsulation key.
func NewEncapsulationKey512(b []byte) (*EncapsulationKey, error) {
	return NewEncapsulationKey(Params512, b)
}
