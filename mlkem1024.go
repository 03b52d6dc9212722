package mlkem

// Sizes for ML-KEM-1024 (NIST security category 5).
var (
	EncapsulationKeySize1024 = Params1024.EncapsulationKeySize()
	DecapsulationKeySize1024 = Params1024.DecapsulationKeySize()
	CiphertextSize1024       = Params1024.CiphertextSize()
)

// NewDecapsulationKey1024 parses an encoded ML-KEM-1024 decapsulation key.
func NewDecapsulationKey1024(b []byte) (*DecapsulationKey, error) {
	return NewDecapsulationKey(Params1024, b)
}

// NewEncapsulationKey1024 parses an encoded ML-KEM-1024 encapsulation key.
func NewEncapsulationKey1024(b []byte) (*EncapsulationKey, error) {
	return NewEncapsulationKey(Params1024, b)
}
