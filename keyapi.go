package coinzdense

// keyapi<D,L,C>: a small, binding-friendly selector over nine fixed
// coinzdensekey shapes, meant for callers (Python, WASM, other language
// bindings) that cannot compile arbitrary template instantiations. Only
// D in {8,12,16}, L in {16,24,32} and C in {4,5,6} are accepted.

import (
	"encoding/binary"
	"sync"

	"github.com/cespare/xxhash"
)

var keyAPIHeights = map[uint64][3][]uint64{
	4: {
		{11, 11, 11, 10},
		{11, 11, 10, 10},
		{11, 10, 10, 10},
	},
	5: {
		{9, 9, 9, 8, 8},
		{9, 9, 8, 8, 8},
		{9, 8, 8, 8, 8},
	},
	6: {
		{8, 7, 7, 7, 7, 7},
		{7, 7, 7, 7, 7, 7},
		{7, 7, 7, 7, 7, 6},
	},
}

var (
	keyAPICacheMu sync.RWMutex
	keyAPICache   = map[uint64]*CoinzdenseKeyShape{}
)

func keyAPICacheKey(d, l, c uint64) uint64 {
	var buf [24]byte
	binary.BigEndian.PutUint64(buf[0:8], d)
	binary.BigEndian.PutUint64(buf[8:16], l)
	binary.BigEndian.PutUint64(buf[16:24], c)
	return xxhash.Sum64(buf[:])
}

// ResolveKeyAPIShape resolves the fixed shape named by (D, L, C),
// memoized by a cache keyed on an xxhash digest of the triple — shape
// resolution is cheap, but callers that repeatedly re-resolve the same
// small set of bindings (e.g. one per incoming RPC) benefit from not
// re-running dispatch and Validate every time.
func ResolveKeyAPIShape(d, l, c uint64) (*CoinzdenseKeyShape, Error) {
	if d != 8 && d != 12 && d != 16 {
		return nil, errorf(ErrKindConfig, "D must be 8, 12 or 16, got %d", d)
	}
	if l != 16 && l != 24 && l != 32 {
		return nil, errorf(ErrKindConfig, "L must be 16, 24 or 32, got %d", l)
	}
	if c < 4 || c > 6 {
		return nil, errorf(ErrKindConfig, "C must be 4, 5 or 6, got %d", c)
	}

	key := keyAPICacheKey(d, l, c)
	keyAPICacheMu.RLock()
	if cached, ok := keyAPICache[key]; ok {
		keyAPICacheMu.RUnlock()
		return cached, nil
	}
	keyAPICacheMu.RUnlock()

	variants := keyAPIHeights[c]
	otk := OneTimeKeyShape{D: d, L: l}
	var heights []uint64
	switch otk.Bits() {
	case 5:
		heights = variants[0]
	case 6:
		heights = variants[1]
	default:
		heights = variants[2]
	}

	shape := &CoinzdenseKeyShape{D: d, L: l, Heights: append([]uint64{}, heights...)}
	if err := shape.Validate(); err != nil {
		return nil, errorf(ErrKindConfig, "keyapi<%d,%d,%d>: %s", d, l, c, err.Error())
	}
	if shape.Bits() > 64 {
		return nil, errorf(ErrKindConfig, "keyapi<%d,%d,%d> uses %d bits of index space", d, l, c, shape.Bits())
	}

	keyAPICacheMu.Lock()
	keyAPICache[key] = shape
	keyAPICacheMu.Unlock()

	log.Logf("resolved keyapi<%d,%d,%d> to heights %v (%d bits)", d, l, c, heights, shape.Bits())
	return shape, nil
}
