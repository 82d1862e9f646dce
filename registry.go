package coinzdense

import "sort"

// registry entry for a named, fixed keyapi<D,L,C> binding, mirroring
// the named-parameter-set convention of XMSS/XMSS-MT OIDs: callers pick
// a short name instead of spelling out D, L and C by hand.
type regEntry struct {
	name string
	d    uint64
	l    uint64
	c    uint64
}

var registry = []regEntry{
	{"coinzdense-d8-l16-c4", 8, 16, 4},
	{"coinzdense-d8-l16-c5", 8, 16, 5},
	{"coinzdense-d8-l16-c6", 8, 16, 6},
	{"coinzdense-d12-l24-c4", 12, 24, 4},
	{"coinzdense-d12-l24-c5", 12, 24, 5},
	{"coinzdense-d12-l24-c6", 12, 24, 6},
	{"coinzdense-d16-l32-c4", 16, 32, 4},
	{"coinzdense-d16-l32-c5", 16, 32, 5},
	{"coinzdense-d16-l32-c6", 16, 32, 6},
}

func findRegEntry(name string) (regEntry, bool) {
	for _, e := range registry {
		if e.name == name {
			return e, true
		}
	}
	return regEntry{}, false
}

// ShapeFromName resolves one of the nine named keyapi<D,L,C> bindings
// by name, for callers that would rather carry a string through
// configuration than three integers.
func ShapeFromName(name string) (*CoinzdenseKeyShape, Error) {
	e, ok := findRegEntry(name)
	if !ok {
		return nil, errorf(ErrKindConfig, "unknown coinzdensekey name %q", name)
	}
	return ResolveKeyAPIShape(e.d, e.l, e.c)
}

// ListNames returns the names of every registered keyapi<D,L,C>
// binding, sorted for stable presentation (help text, CLI completion).
func ListNames() []string {
	names := make([]string, 0, len(registry))
	for _, e := range registry {
		names = append(names, e.name)
	}
	sort.Strings(names)
	return names
}
