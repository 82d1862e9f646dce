package coinzdense

// The WOTS dual-chain primitive: two salted hash chains — one walked
// forward from an up-seed, one walked in reverse from a down-seed —
// that together produce a 2S-byte partial signature (or, at the
// reserved index 2^D, a partial public key) for any chain position in
// [0, 2^D].
//
// The dual forward/reverse construction replaces the customary single
// chain plus checksum: stopping a chain early to forge a low value
// forces the other chain to stop late, which is exactly as hard to
// forge.

type WotsChainPair struct {
	upSeed   []byte
	downSeed []byte
	salt     []byte
	hasher   SaltedHasher
	d        uint64
}

// NewWotsChainPair constructs a dual-chain pair from three S-byte
// entropy draws. All three must be the same length, S in [20, KDFMaxSize],
// and d (the Winternitz depth) in [4, 16].
func NewWotsChainPair(upSeed, downSeed, salt []byte, d uint64) (*WotsChainPair, Error) {
	s := len(upSeed)
	if len(downSeed) != s || len(salt) != s {
		return nil, errorf(ErrKindConfig, "up-seed, down-seed and salt must have equal length")
	}
	if s < 20 || s > KDFMaxSize {
		return nil, errorf(ErrKindConfig, "subkey size must be 20..%d, got %d", KDFMaxSize, s)
	}
	if d < 4 || d > 16 {
		return nil, errorf(ErrKindConfig, "D must be in [4, 16], got %d", d)
	}
	provider, err := newBlake2bProvider()
	if err != nil {
		return nil, wrapErrorf(ErrKindInit, err, "initializing hash provider")
	}
	return &WotsChainPair{
		upSeed:   append([]byte{}, upSeed...),
		downSeed: append([]byte{}, downSeed...),
		salt:     append([]byte{}, salt...),
		hasher:   provider,
		d:        d,
	}, nil
}

// Call produces the 2S-byte partial signature for chain position i, or
// the partial public key when i == 2^D (a legitimate, reserved request,
// not an error: hardened semantics, superseding an earlier revision that
// aborted on i == 2^D).
//
// i > 2^D fails with ErrKindOutOfRange.
func (w *WotsChainPair) Call(i uint64) ([]byte, Error) {
	n := uint64(1) << w.d
	if i > n {
		return nil, errorf(ErrKindOutOfRange, "chain index %d exceeds chain length %d", i, n)
	}

	j := n - i
	if i == n {
		// the reserved pubkey-derivation index: both "ends" coincide
		j = i
	}

	m, maxdex := i, j
	if j < i {
		m, maxdex = j, i
	}

	s := len(w.upSeed)
	up := append([]byte{}, w.upSeed...)
	down := append([]byte{}, w.downSeed...)
	// Go does not zero buffers on scope exit, so the working chain state
	// — whatever up/down/finalUp/finalDown hold at the moment Call
	// returns, success or error — is scrubbed explicitly here. The
	// closure reads the variables at defer-run time, after every
	// reassignment in the walk below, not at defer-statement time.
	var finalUp, finalDown []byte
	defer func() {
		scrub(up)
		scrub(down)
		scrub(finalUp)
		scrub(finalDown)
	}()

	// shared prefix: walk both chains together
	for k := uint64(0); k < m; k++ {
		nextUp, err := w.hasher.Hash(up, w.salt)
		if err != nil {
			return nil, wrapErrorf(ErrKindHash, err, "hashing up-chain at step %d", k)
		}
		nextDown, err := w.hasher.Hash(down, w.salt)
		if err != nil {
			return nil, wrapErrorf(ErrKindHash, err, "hashing down-chain at step %d", k)
		}
		up, down = nextUp, nextDown
	}

	// tail: only the longer chain continues — the up-chain's total walk
	// length is i, the down-chain's is j, so whichever of the two is
	// larger is still walking once the shared prefix is done.
	upIsTail := i > j
	for k := m; k < maxdex; k++ {
		if upIsTail {
			next, err := w.hasher.Hash(up, w.salt)
			if err != nil {
				return nil, wrapErrorf(ErrKindHash, err, "hashing up-chain tail at step %d", k)
			}
			up = next
		} else {
			next, err := w.hasher.Hash(down, w.salt)
			if err != nil {
				return nil, wrapErrorf(ErrKindHash, err, "hashing down-chain tail at step %d", k)
			}
			down = next
		}
	}

	// one final, unconditional round on both chains: the scheme counts
	// hash operations 1-based, so both extremes (i == 0 and i == 2^D)
	// still get at least one hash applied to their seed.
	var err error
	finalUp, err = w.hasher.Hash(up, w.salt)
	if err != nil {
		return nil, wrapErrorf(ErrKindHash, err, "hashing final up-chain round")
	}
	finalDown, err = w.hasher.Hash(down, w.salt)
	if err != nil {
		return nil, wrapErrorf(ErrKindHash, err, "hashing final down-chain round")
	}

	out := make([]byte, 2*s)
	copy(out[:s], finalUp)
	copy(out[s:], finalDown)
	return out, nil
}
