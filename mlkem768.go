package mlkem

// Sizes for ML-KEM-768 (NIST security category 3).
var (
	EncapsulationKeySize768 = Params768.EncapsulationKeySize()
	DecapsulationKeySize768 = Params768.DecapsulationKeySize()
	CiphertextSize768       = Params768.CiphertextSize()
)

// NewDecapsulationKey768 parses an encoded ML-KEM-768 decapsulation key.
func NewDecapsulationKey768(b []byte) (*DecapsulationKey, error) {
	return NewDecapsulationKey(Params768, b)
}

// NewEncapsulationKey768 parses an encoded ML-KEM-768 encapsulation key.
func NewEncapsulationKey768(b []byte) (*EncapsulationKey, error) {
	return NewEncapsulationKey(Params768, b)
}
