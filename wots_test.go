package coinzdense

import (
	"bytes"
	"encoding/hex"
	"testing"
)

func seedTriple(s int, tag byte) (up, down, salt []byte) {
	up = bytes.Repeat([]byte{tag}, s)
	down = bytes.Repeat([]byte{tag + 1}, s)
	salt = bytes.Repeat([]byte{tag + 2}, s)
	return
}

func TestNewWotsChainPairRejectsMismatchedLengths(t *testing.T) {
	up, down, salt := seedTriple(20, 1)
	if _, err := NewWotsChainPair(up, down[:19], salt, 8); err == nil {
		t.Fatalf("expected error for mismatched seed lengths")
	}
}

func TestNewWotsChainPairRejectsBadSizeOrDepth(t *testing.T) {
	up, down, salt := seedTriple(20, 1)
	if _, err := NewWotsChainPair(up[:10], down[:10], salt[:10], 8); err == nil {
		t.Fatalf("expected error for seed size 10 (< 20)")
	}
	if _, err := NewWotsChainPair(up, down, salt, 3); err == nil {
		t.Fatalf("expected error for D=3 (< 4)")
	}
	if _, err := NewWotsChainPair(up, down, salt, 17); err == nil {
		t.Fatalf("expected error for D=17 (> 16)")
	}
}

func TestWotsChainPairIsDeterministic(t *testing.T) {
	up, down, salt := seedTriple(20, 1)
	w, err := NewWotsChainPair(up, down, salt, 4)
	if err != nil {
		t.Fatalf("NewWotsChainPair: %v", err)
	}
	a, err := w.Call(5)
	if err != nil {
		t.Fatalf("Call(5): %v", err)
	}
	b, err := w.Call(5)
	if err != nil {
		t.Fatalf("Call(5): %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Fatalf("Call(5) not deterministic: %x vs %x", a, b)
	}
	if len(a) != 40 {
		t.Fatalf("expected 2*S = 40 bytes, got %d", len(a))
	}
}

func TestWotsChainPairRejectsIndexPastChainLength(t *testing.T) {
	up, down, salt := seedTriple(20, 1)
	w, err := NewWotsChainPair(up, down, salt, 4)
	if err != nil {
		t.Fatalf("NewWotsChainPair: %v", err)
	}
	n := uint64(1) << 4
	if _, err := w.Call(n + 1); err == nil {
		t.Fatalf("Call(2^D + 1): expected ErrKindOutOfRange, got none")
	} else if err.Kind() != ErrKindOutOfRange {
		t.Fatalf("Call(2^D + 1): expected ErrKindOutOfRange, got %v", err.Kind())
	}
}

// TestWotsChainPairReservedIndexIsLegal checks the hardened-semantics
// resolution: index == 2^D is a legitimate "partial public key"
// request, not an error.
func TestWotsChainPairReservedIndexIsLegal(t *testing.T) {
	up, down, salt := seedTriple(20, 1)
	w, err := NewWotsChainPair(up, down, salt, 4)
	if err != nil {
		t.Fatalf("NewWotsChainPair: %v", err)
	}
	n := uint64(1) << 4
	if _, err := w.Call(n); err != nil {
		t.Fatalf("Call(2^D): expected no error, got %v", err)
	}
}

// TestWotsChainPairReservedEndpointWalksBothChainsFully checks that at the
// reserved endpoint (i == 2^D), both chains are walked the same number
// of times: the shared prefix alone spans the whole chain length, so
// the tail loop never fires and both chains end up advanced 2^D+1
// times (2^D shared rounds, plus the one unconditional final round).
func TestWotsChainPairReservedEndpointWalksBothChainsFully(t *testing.T) {
	up, down, salt := seedTriple(20, 7)
	d := uint64(4)
	n := uint64(1) << d

	w, err := NewWotsChainPair(up, down, salt, d)
	if err != nil {
		t.Fatalf("NewWotsChainPair: %v", err)
	}
	out, err := w.Call(n)
	if err != nil {
		t.Fatalf("Call(2^D): %v", err)
	}

	// Reproduce the same walk directly against the hasher, confirming
	// both halves equal n+1 iterations of the salted hash over the
	// respective seeds.
	hasher, hErr := newBlake2bProvider()
	if hErr != nil {
		t.Fatalf("newBlake2bProvider: %v", hErr)
	}
	wantUp := append([]byte{}, up...)
	wantDown := append([]byte{}, down...)
	for k := uint64(0); k < n+1; k++ {
		nu, err := hasher.Hash(wantUp, salt)
		if err != nil {
			t.Fatalf("Hash: %v", err)
		}
		nd, err := hasher.Hash(wantDown, salt)
		if err != nil {
			t.Fatalf("Hash: %v", err)
		}
		wantUp, wantDown = nu, nd
	}
	s := len(up)
	if !bytes.Equal(out[:s], wantUp) {
		t.Fatalf("up half at reserved index: got %x, want %x", out[:s], wantUp)
	}
	if !bytes.Equal(out[s:], wantDown) {
		t.Fatalf("down half at reserved index: got %x, want %x", out[s:], wantDown)
	}
}

// TestWotsChainPairKnownVector reproduces spec.md §8's S7 scenario
// against hard-coded expected digests: a 16-depth dual chain seeded
// from three consecutive entropy draws (ids 1234567, 1234568, 1234569,
// the same master key and subkey size as TestEntropyKnownVector),
// called at position 188 and at the reserved endpoint 2^16, must
// always produce these exact 40-byte values.
func TestWotsChainPairKnownVector(t *testing.T) {
	key := testMasterKey()
	root, err := NewSecretEntropy(key, 20)
	if err != nil {
		t.Fatalf("NewSecretEntropy: %v", err)
	}
	up, uErr := root.Call(1234567)
	if uErr != nil {
		t.Fatalf("root.Call(1234567): %v", uErr)
	}
	down, dErr := root.Call(1234568)
	if dErr != nil {
		t.Fatalf("root.Call(1234568): %v", dErr)
	}
	salt, sErr := root.Call(1234569)
	if sErr != nil {
		t.Fatalf("root.Call(1234569): %v", sErr)
	}

	w, err := NewWotsChainPair(up, down, salt, 16)
	if err != nil {
		t.Fatalf("NewWotsChainPair: %v", err)
	}

	want188, decErr := hex.DecodeString("b953ac33d838b7e4bd718da35516b79fbc6e07480a54508f618fc2159e050d51fda9d95c054ddef5")
	if decErr != nil {
		t.Fatalf("hex.DecodeString: %v", decErr)
	}
	got188, err := w.Call(188)
	if err != nil {
		t.Fatalf("Call(188): %v", err)
	}
	if !bytes.Equal(got188, want188) {
		t.Fatalf("Call(188) = %x, want %x", got188, want188)
	}

	wantReserved, decErr := hex.DecodeString("17b0101d503700523f164651e2329ba5a370559aa259037b432a715ee14315837420cea9b46b40c0")
	if decErr != nil {
		t.Fatalf("hex.DecodeString: %v", decErr)
	}
	gotReserved, err := w.Call(1 << 16)
	if err != nil {
		t.Fatalf("Call(2^16): %v", err)
	}
	if !bytes.Equal(gotReserved, wantReserved) {
		t.Fatalf("Call(2^16) = %x, want %x", gotReserved, wantReserved)
	}
}

// walkChain hashes seed through hasher k times with salt, returning the
// final value.
func walkChain(t *testing.T, hasher SaltedHasher, seed, salt []byte, k uint64) []byte {
	t.Helper()
	v := append([]byte{}, seed...)
	for i := uint64(0); i < k; i++ {
		next, err := hasher.Hash(v, salt)
		if err != nil {
			t.Fatalf("Hash: %v", err)
		}
		v = next
	}
	return v
}

// TestWotsChainPairConservesTotalEffort checks the "symmetry of
// effort" property underlying the dual-chain construction: for any
// index i < 2^D, the up chain is walked exactly i+1 times and the down
// chain exactly (2^D-i)+1 times, so their combined cost is the
// constant 2^D+2 regardless of which index is requested — stopping one
// chain early always costs exactly as much extra work on the other.
func TestWotsChainPairConservesTotalEffort(t *testing.T) {
	d := uint64(4)
	n := uint64(1) << d
	up, down, salt := seedTriple(20, 3)
	s := len(up)

	hasher, hErr := newBlake2bProvider()
	if hErr != nil {
		t.Fatalf("newBlake2bProvider: %v", hErr)
	}

	for _, i := range []uint64{0, 1, n / 2, n - 1} {
		w, err := NewWotsChainPair(up, down, salt, d)
		if err != nil {
			t.Fatalf("NewWotsChainPair: %v", err)
		}
		out, err := w.Call(i)
		if err != nil {
			t.Fatalf("Call(%d): %v", i, err)
		}

		wantUp := walkChain(t, hasher, up, salt, i+1)
		wantDown := walkChain(t, hasher, down, salt, (n-i)+1)

		if !bytes.Equal(out[:s], wantUp) {
			t.Fatalf("Call(%d): up half = %x, want %x (i+1 = %d rounds)", i, out[:s], wantUp, i+1)
		}
		if !bytes.Equal(out[s:], wantDown) {
			t.Fatalf("Call(%d): down half = %x, want %x (2^D-i+1 = %d rounds)", i, out[s:], wantDown, (n-i)+1)
		}
	}
}
