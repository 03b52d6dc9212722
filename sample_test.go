package mlkem

import (
	"fmt"
	"testing"
	"testing/quick"
)

func TestSampleNTTInRange(t *testing.T) {
	f := func(rho [32]byte, i, j byte) bool {
		p := sampleNTT(rho[:], i, j)
		for _, x := range p {
			if uint32(x) >= q {
				return false
			}
		}
		return true
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

// TestSamplePolyCBDBounded checks the centered-binomial property FIPS 203
// Algorithm 8 guarantees: every coefficient lies in [0, eta] or
// [q-eta, q-1], mirroring the bound the AlexanderYastrebov reference test
// checks for its fixed-width SamplePolyCBD.
func TestSamplePolyCBDBounded(t *testing.T) {
	for _, eta := range []int{2, 3} {
		eta := eta
		t.Run(fmt.Sprintf("eta=%d", eta), func(t *testing.T) {
			size := 64 * eta
			f := func(seed [32]byte) bool {
				b := prf(eta, seed[:], 0)
				if len(b) != size {
					return false
				}
				p := samplePolyCBD(eta, b)
				for _, x := range p {
					v := uint32(x)
					if !((v <= uint32(eta)) || (v >= q-uint32(eta) && v <= q-1)) {
						return false
					}
				}
				return true
			}
			if err := quick.Check(f, nil); err != nil {
				t.Error(err)
			}
		})
	}
}
