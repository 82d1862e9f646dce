package coinzdense

// The index space allocator (ISA): purely arithmetic accounting of
// which absolute u64 subkey id belongs to which logical coordinate
// (salt, WOTS up/down seed, nonce, sub-tree leaf). No hashing, no I/O.
//
// The C++ original encodes shape parameters (D, L, and the height
// vector) as template parameters so every size/items/bits value is a
// compile-time constant. Go has no comparable facility for an
// arbitrary-length, value-parameterized height list, so these are
// runtime descriptors instead (see REDESIGN FLAGS item 1): Shape
// computed once at construction, with size/items/bits/index as pure
// functions of (Shape, coordinate). Correctness does not depend on
// compile-time evaluation, and at these integer sizes neither does
// performance.

import (
	"github.com/hashicorp/go-multierror"
)

//go:generate enumer -type ChainPurpose
//go:generate enumer -type NonceKind

// ChainPurpose distinguishes the three index slots of a chainset.
type ChainPurpose uint8

const (
	PurposeUp ChainPurpose = iota
	PurposeDown
	PurposeSalt
)

// NonceKind distinguishes the two nonce slots reserved at the base of
// every one-time key.
type NonceKind uint8

const (
	NonceTransaction NonceKind = iota
	NoncePolaSubsig
)

// ChainsetSize is the fixed index-space footprint of one chainset: an
// up-chain seed, a down-chain seed, and their shared salt.
func ChainsetSize() uint64 { return 3 }

// ChainsetIndex returns the absolute index of the given slot of the
// chainset based at base.
func ChainsetIndex(base uint64, purpose ChainPurpose) uint64 {
	return base + uint64(purpose)
}

// OneTimeKeyShape is the onetimekey<D,L> entity: the set of chainsets
// (plus two nonce slots) sufficient to sign one L-byte digest with D
// Winternitz depth bits.
type OneTimeKeyShape struct {
	D uint64
	L uint64
}

// Validate checks the D and L invariants, accumulating every violation
// rather than stopping at the first.
func (k OneTimeKeyShape) Validate() error {
	var errs *multierror.Error
	if k.D < 4 || k.D > 16 {
		errs = multierror.Append(errs, errorf(ErrKindConfig, "D must be in [4, 16], got %d", k.D))
	}
	if k.L < 16 || k.L > 64 {
		errs = multierror.Append(errs, errorf(ErrKindConfig, "L must be in [16, 64], got %d", k.L))
	}
	return errs.ErrorOrNil()
}

// Chains returns the number of chainsets needed to sign an L-byte
// digest at depth D.
func (k OneTimeKeyShape) Chains() uint64 {
	return (k.L*8-1)/k.D + 1
}

// NonceIndex returns the absolute index of the given nonce slot.
func (k OneTimeKeyShape) NonceIndex(base uint64, nonce NonceKind) uint64 {
	return base + uint64(nonce)
}

// Index returns the absolute base index of the chain-th chainset.
//
// The C++ original's index(base, k) = base + 2 + k does not scale k by
// chainset::size(), which is inconsistent with the no-overlap
// invariant (distinct chains would alias the same three slots): this
// implementation scales by ChainsetSize(), the only choice under which
// every chainset of a onetimekey occupies disjoint index space.
func (k OneTimeKeyShape) Index(base, chain uint64) uint64 {
	return base + 2 + chain*ChainsetSize()
}

// Size is the total index-space footprint of a onetimekey: two nonce
// slots plus Chains() chainsets, each ChainsetSize() wide.
//
// The C++ original's literal onetimekey::size() is chains()*chainset::size(),
// without the two nonce slots Index reserves ahead of the first
// chainset. Combined with Index's ChainsetSize()-scaled chain offset
// (needed for intra-onetimekey chainset disjointness, see Index's own
// comment), that literal formula leaves every onetimekey's last
// chainset bleeding two slots past Size()-1 — directly into the next
// onetimekey's two nonce slots (LevelKeyShape places onetimekey i+1 at
// exactly base+Size() past onetimekey i). That is an actual index
// collision, not just an unused boundary: onetimekey i's last
// down-seed and salt would alias onetimekey i+1's nonce slots. Size()
// is padded by the same two slots Index already reserves so that no
// two onetimekeys in a level ever share an index; see DESIGN.md for
// the consequence this has on reproducing spec.md §8's S4/S5/S6
// literal numbers.
func (k OneTimeKeyShape) Size() uint64 {
	return 2 + k.Chains()*ChainsetSize()
}

// Bits is the number of bits of address space Size occupies.
func (k OneTimeKeyShape) Bits() uint64 {
	return bitsFor(k.Size())
}

// bitsFor returns floor(log2(n)) + 1 for n >= 1.
func bitsFor(n uint64) uint64 {
	var bits uint64
	for n > 0 {
		bits++
		n >>= 1
	}
	return bits
}

// LevelKeyShape is the levelkey<D,L,H> entity: a Merkle tree of 2^H
// one-time keys plus a dedicated salt slot.
type LevelKeyShape struct {
	OneTimeKey OneTimeKeyShape
	H          uint64
}

// Validate checks the H invariant (and the nested onetimekey's).
func (lk LevelKeyShape) Validate() error {
	var errs *multierror.Error
	if err := lk.OneTimeKey.Validate(); err != nil {
		errs = multierror.Append(errs, err)
	}
	if lk.H < 3 || lk.H > 16 {
		errs = multierror.Append(errs, errorf(ErrKindConfig, "H must be in [3, 16], got %d", lk.H))
	}
	return errs.ErrorOrNil()
}

// SaltIndex returns the absolute index of the level key's Merkle salt.
func (lk LevelKeyShape) SaltIndex(base uint64) uint64 {
	return base
}

// Index returns the absolute base index of the i-th one-time key.
func (lk LevelKeyShape) Index(base, i uint64) uint64 {
	return base + 1 + i*lk.OneTimeKey.Size()
}

// Size is the total index-space footprint: one salt slot plus 2^H
// one-time keys.
func (lk LevelKeyShape) Size() uint64 {
	return 1 + lk.Items()*lk.OneTimeKey.Size()
}

// Items is the number of one-time keys (signatures) a level key holds.
func (lk LevelKeyShape) Items() uint64 {
	return uint64(1) << lk.H
}

// Bits is the number of bits of address space Size occupies.
func (lk LevelKeyShape) Bits() uint64 {
	return lk.H + lk.OneTimeKey.Bits()
}

// CoinzdenseKeyShape is the coinzdensekey<D,L,H1,...,Hn> entity: a
// forest of descending-height level keys, addressing up to 2^64 leaves.
// Heights must have at least two entries.
type CoinzdenseKeyShape struct {
	D       uint64
	L       uint64
	Heights []uint64
}

func (s CoinzdenseKeyShape) oneTimeKey() OneTimeKeyShape {
	return OneTimeKeyShape{D: s.D, L: s.L}
}

func (s CoinzdenseKeyShape) top() LevelKeyShape {
	return LevelKeyShape{OneTimeKey: s.oneTimeKey(), H: s.Heights[0]}
}

// rest returns the structure addressing everything below the top
// level: a LevelKeyShape when exactly one height remains, otherwise a
// nested CoinzdenseKeyShape. Both expose Size/Items/Bits/Index with the
// same signatures, so the recursion below does not need to special-case
// which one it holds.
type subShape interface {
	Size() uint64
	Items() uint64
	Bits() uint64
	Index(base, i uint64) uint64
}

func (s CoinzdenseKeyShape) rest() subShape {
	if len(s.Heights) == 2 {
		return LevelKeyShape{OneTimeKey: s.oneTimeKey(), H: s.Heights[1]}
	}
	return CoinzdenseKeyShape{D: s.D, L: s.L, Heights: s.Heights[1:]}
}

// Validate checks every height in the vector, the recursive bit budget
// (<= 48 bits for the bottom two levels combined, <= 64 overall), and
// requires at least two heights.
func (s CoinzdenseKeyShape) Validate() error {
	var errs *multierror.Error
	if len(s.Heights) < 2 {
		errs = multierror.Append(errs, errorf(ErrKindConfig, "coinzdensekey needs at least two heights, got %d", len(s.Heights)))
		return errs.ErrorOrNil()
	}
	if err := s.top().Validate(); err != nil {
		errs = multierror.Append(errs, err)
	}
	if len(s.Heights) == 2 {
		bottom := LevelKeyShape{OneTimeKey: s.oneTimeKey(), H: s.Heights[1]}
		if err := bottom.Validate(); err != nil {
			errs = multierror.Append(errs, err)
		}
		if s.top().Bits()+bottom.Bits() > 48 {
			errs = multierror.Append(errs, errorf(ErrKindConfig,
				"bottom two levels use %d bits, exceeding the 48-bit budget", s.top().Bits()+bottom.Bits()))
		}
	} else {
		restShape := CoinzdenseKeyShape{D: s.D, L: s.L, Heights: s.Heights[1:]}
		if err := restShape.Validate(); err != nil {
			errs = multierror.Append(errs, err)
		}
		if s.top().Bits()+restShape.Bits() > 64 {
			errs = multierror.Append(errs, errorf(ErrKindConfig,
				"keyspace uses %d bits, exceeding the 64-bit budget", s.top().Bits()+restShape.Bits()))
		}
	}
	return errs.ErrorOrNil()
}

// Size is the total index-space footprint of the forest.
func (s CoinzdenseKeyShape) Size() uint64 {
	top := s.top()
	return top.Size() + top.Items()*s.rest().Size()
}

// Items is the number of leaf one-time keys the forest can ultimately
// sign.
func (s CoinzdenseKeyShape) Items() uint64 {
	return s.top().Items() * s.rest().Items()
}

// Bits is the number of bits of address space Size occupies.
func (s CoinzdenseKeyShape) Bits() uint64 {
	return s.top().Bits() + s.rest().Bits()
}

// Index returns the absolute base index of the leaf-th one-time key at
// the bottom of the forest.
//
// The nested sub-call always passes 0 as its base, not the outer base:
// the C++ original's two-height base case passes the outer baseindex
// into the nested levelkey::index call, which double-counts the outer
// offset (levelkey::index already adds its own base argument on top of
// it), while its recursive (three-or-more-height) case passes 0. This
// implementation always uses 0, the only choice under which nested
// one-time keys do not collide with the outer offset.
func (s CoinzdenseKeyShape) Index(base, leaf uint64) uint64 {
	top := s.top()
	rest := s.rest()
	q := leaf / rest.Items()
	r := leaf % rest.Items()
	return base + top.Size() + rest.Size()*q + rest.Index(0, r)
}
