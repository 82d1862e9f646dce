package coinzdense

// The hash/KDF provider: a concrete KDF and SaltedHasher implementation.
// BLAKE2b is the idiomatic Go substitute for libsodium's
// crypto_kdf_derive_from_key and crypto_generichash, both of which are
// themselves BLAKE2b constructions.

import (
	"golang.org/x/crypto/blake2b"
)

// Context is the fixed 8-byte domain-separation tag used by every
// subkey this package derives. It participates in the KDF exactly like
// a libsodium KDF context: callers cannot collide with other contexts
// by accident because it is never exposed for modification.
var Context = [8]byte{'C', 'o', 'i', 'n', 'Z', 'd', 'n', 's'}

// KDFMaxSize is the largest subkey BLAKE2b can produce in one call.
const KDFMaxSize = blake2b.Size // 64

// KDF derives domain-separated subkeys from a 32-byte master key.
// Implementations must be pure functions of their arguments.
type KDF interface {
	Derive(masterKey [32]byte, context [8]byte, id uint64, size int) ([]byte, error)
}

// SaltedHasher computes a keyed, fixed-output hash. Implementations must
// be pure functions of their arguments.
type SaltedHasher interface {
	Hash(in, salt []byte) ([]byte, error)
}

// blake2bProvider is the one production KDF/SaltedHasher this package
// ships. It requires no initialization step of its own; newBlake2bProvider
// exists so that construction can still fail and be wrapped like any
// other collaborator's.
type blake2bProvider struct{}

func newBlake2bProvider() (*blake2bProvider, Error) {
	return &blake2bProvider{}, nil
}

// Derive computes kdf(masterKey, context, id, size).
func (p *blake2bProvider) Derive(masterKey [32]byte, context [8]byte, id uint64, size int) ([]byte, error) {
	if size < 1 || size > KDFMaxSize {
		return nil, errorf(ErrKindDerive, "subkey size %d out of range", size)
	}
	h, err := blake2b.New(size, masterKey[:])
	if err != nil {
		return nil, wrapErrorf(ErrKindDerive, err, "initializing keyed BLAKE2b")
	}
	h.Write(context[:])
	h.Write(encodeUint64(id, 8))
	return h.Sum(nil), nil
}

// Hash computes H(in, salt), with the output the same length as in.
func (p *blake2bProvider) Hash(in, salt []byte) ([]byte, error) {
	h, err := blake2b.New(len(in), salt)
	if err != nil {
		return nil, wrapErrorf(ErrKindHash, err, "initializing salted BLAKE2b")
	}
	h.Write(in)
	return h.Sum(nil), nil
}
