package mlkem

import (
	"crypto/rand"
	"testing"
)

func testKPKERoundtrip(t *testing.T, p *Params) {
	var d [32]byte
	rand.Read(d[:])

	pub, s := kpkeKeyGen(p, d[:])

	var m, coins [32]byte
	rand.Read(m[:])
	rand.Read(coins[:])

	ct := kpkeEncrypt(p, pub, m[:], coins[:])
	if len(ct) != p.CiphertextSize() {
		t.Fatalf("ciphertext size: got %d, want %d", len(ct), p.CiphertextSize())
	}

	got := kpkeDecrypt(p, s, ct)
	if string(got) != string(m[:]) {
		t.Fatalf("decrypt mismatch: got %x, want %x", got, m)
	}
}

func TestKPKERoundtrip512(t *testing.T)  { testKPKERoundtrip(t, Params512) }
func TestKPKERoundtrip768(t *testing.T)  { testKPKERoundtrip(t, Params768) }
func TestKPKERoundtrip1024(t *testing.T) { testKPKERoundtrip(t, Params1024) }
