package coinzdense

// Ranged is a bounded, transitively narrowable handle on an
// EntropySource. It holds a non-owning pointer to its source: the
// source's lifetime is controlled from the root view returned by
// NewSecretEntropy, via Close. All Ranged values derived from the same
// root — by however many rounds of Narrow — share the same
// *EntropySource and therefore observe the same revocation.
type Ranged struct {
	source *EntropySource
	min    uint64
	max    uint64
}

// Call computes the source's subkey at id, translated into this view's
// range. id is local to the view: absolute = id + Min. It fails with
// ErrKindDangling if the source has been closed, and with
// ErrKindOutOfRange if the translated id falls outside [Min, Max].
func (r *Ranged) Call(id uint64) ([]byte, Error) {
	if r.source.isRevoked() {
		return nil, errorf(ErrKindDangling, "entropy source has been closed")
	}
	if id > r.max-r.min {
		return nil, errorf(ErrKindOutOfRange, "local id %d exceeds range [0, %d]", id, r.max-r.min)
	}
	return r.source.call(r.min + id)
}

// Narrow returns a view over [Min+start, Min+end], a sub-range of this
// view's range. Narrowing composes: r.Narrow(a,b) followed by
// .Narrow(c,d) is equivalent to r.Narrow(a+c, a+d).
func (r *Ranged) Narrow(start, end uint64) (*Ranged, Error) {
	if r.source.isRevoked() {
		return nil, errorf(ErrKindDangling, "entropy source has been closed")
	}
	span := r.max - r.min
	if !(start < end && end <= span) {
		return nil, errorf(ErrKindOutOfRange,
			"narrow(%d, %d) invalid for range of span %d", start, end, span)
	}
	return &Ranged{source: r.source, min: r.min + start, max: r.min + end}, nil
}

// Min returns the view's lower bound in the source's absolute id space.
func (r *Ranged) Min() uint64 { return r.min }

// Max returns the view's upper (inclusive) bound in the source's
// absolute id space.
func (r *Ranged) Max() uint64 { return r.max }

// Close severs this view's underlying EntropySource. Every other Ranged
// view sharing that source — ancestors and descendants of narrowing
// alike — is invalidated by the same call: this is intentionally a
// property of the shared source, not of any one view.
func (r *Ranged) Close() {
	r.source.revoke()
}
