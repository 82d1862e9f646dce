package coinzdense

import "math"

// FullKeyspace binds an entropy source to a fixed coinzdensekey shape
// and exposes the three named, non-overlapping sub-views a signing
// layer needs: the forest itself, a strict prefix of it reserved for
// level-0 material, and everything beyond the forest that remains
// unallocated for future use.
//
// FullKeyspace holds a non-owning reference to the root view it was
// built from: its views share that view's source, and so share its
// lifetime.
type FullKeyspace struct {
	root  *Ranged
	shape CoinzdenseKeyShape
}

// NewFullKeyspace binds root to shape after validating shape's own
// invariants.
func NewFullKeyspace(root *Ranged, shape CoinzdenseKeyShape) (*FullKeyspace, Error) {
	if err := shape.Validate(); err != nil {
		return nil, errorf(ErrKindConfig, "invalid coinzdensekey shape: %s", err.Error())
	}
	return &FullKeyspace{root: root, shape: shape}, nil
}

// MainKeyKeyspace returns the view over [0, shape.Size()-1]: the
// entire forest this shape describes.
func (f *FullKeyspace) MainKeyKeyspace() (*Ranged, Error) {
	return f.root.Narrow(0, f.shape.Size()-1)
}

// L0Keyspace returns the view over [0, levelkey<H1>.Size()-1], a
// strict prefix of MainKeyKeyspace reserved for level-0 material (the
// user's root level key, or a POLA level-0 key).
func (f *FullKeyspace) L0Keyspace() (*Ranged, Error) {
	top := f.shape.top()
	return f.root.Narrow(0, top.Size()-1)
}

// UnallocatedKeyspace returns the view over [shape.Size(), u64::MAX]:
// everything the shape does not claim.
func (f *FullKeyspace) UnallocatedKeyspace() (*Ranged, Error) {
	return f.root.Narrow(f.shape.Size(), math.MaxUint64)
}
