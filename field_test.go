package mlkem

import (
	"math/rand"
	"reflect"
	"testing"
	"testing/quick"
)

func (fieldElement) Generate(r *rand.Rand, size int) reflect.Value {
	return reflect.ValueOf(fieldElement(r.Intn(q)))
}

// TestFieldMulExhaustive checks, over every pair of reduced field elements,
// that fieldMul's single Barrett correction is always enough - the
// property field.go's doc comment relies on instead of a data-dependent
// loop of conditional subtracts.
func TestFieldMulExhaustive(t *testing.T) {
	if testing.Short() {
		t.Skip("exhaustive q*q scan skipped in short mode")
	}
	for a := uint32(0); a < q; a++ {
		for b := uint32(0); b < q; b++ {
			got := fieldMul(fieldElement(a), fieldElement(b))
			want := (a * b) % q
			if uint32(got) != want {
				t.Fatalf("fieldMul(%d, %d) = %d, want %d", a, b, got, want)
			}
		}
	}
}

func TestFieldAddSub(t *testing.T) {
	f := func(a, b fieldElement) bool {
		sum := fieldAdd(a, b)
		if uint32(sum) >= q {
			return false
		}
		back := fieldSub(sum, b)
		return back == a
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestPolyAddSub(t *testing.T) {
	f := func(a, b ringElement) bool {
		return polySub(polyAdd(a, b), b) == a
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}
