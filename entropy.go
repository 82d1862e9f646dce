package coinzdense

import "sync/atomic"

// EntropySource wraps a KDF and vends S-byte subkeys addressable by
// u64 id. It owns the master key exclusively: the key never leaves
// this struct. Callers obtain access through a Ranged view, never
// through EntropySource directly.
//
// Multiple goroutines may call into an EntropySource concurrently; it
// holds no internal lock of its own and is read-only after
// construction until revoke scrubs its master key, so this is safe as
// long as the underlying KDF is itself safe for concurrent use
// (blake2bProvider is). revoke is not synchronized with a Call already
// in progress.
type EntropySource struct {
	masterKey [32]byte
	size      int
	kdf       KDF
	revoked   atomic.Bool
}

// NewSecretEntropy initializes the KDF provider (idempotent) and
// returns a root Ranged view over the full u64 id space, backed by a
// freshly constructed EntropySource for masterKey. size is the number
// of bytes each derived subkey will have; it must be in [20, KDFMaxSize].
func NewSecretEntropy(masterKey [32]byte, size int) (*Ranged, Error) {
	if size < 20 || size > KDFMaxSize {
		return nil, errorf(ErrKindConfig, "subkey size must be 20..%d, got %d", KDFMaxSize, size)
	}
	provider, err := newBlake2bProvider()
	if err != nil {
		return nil, wrapErrorf(ErrKindInit, err, "initializing KDF provider")
	}
	source := &EntropySource{
		masterKey: masterKey,
		size:      size,
		kdf:       provider,
	}
	return &Ranged{source: source, min: 0, max: ^uint64(0)}, nil
}

// call computes kdf(masterKey, Context, id, size). It never checks
// revocation or range: that is Ranged's job.
func (source *EntropySource) call(id uint64) ([]byte, Error) {
	out, err := source.kdf.Derive(source.masterKey, Context, id, source.size)
	if err != nil {
		if derr, ok := err.(Error); ok {
			return nil, derr
		}
		return nil, wrapErrorf(ErrKindDerive, err, "deriving subkey %d", id)
	}
	return out, nil
}

// revoke severs every Ranged view sharing this source, synchronously
// and irreversibly: once it runs, every outstanding Ranged.Call fails
// with ErrKindDangling. The master key — which never leaves this
// struct — is scrubbed in the same call, since Go will not zero it on
// its own once the last reference is dropped.
func (source *EntropySource) revoke() {
	source.revoked.Store(true)
	scrub(source.masterKey[:])
}

func (source *EntropySource) isRevoked() bool {
	return source.revoked.Load()
}
