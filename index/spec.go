// Package index implements the three-valued region algebra used to
// describe which portion of a collection-valued channel changed: the
// whole thing (All), nothing (None), or a finite set of keys (Indices).
//
// The merge operation is modeled on the has0/has1 join shape used by
// github.com/rogpeppe/generic/merge: a region is the two-valued
// specialization of a merge join where only "present" (has) matters,
// not the joined value itself.
package index

import "github.com/rogpeppe/reactive/anyhash"

// Key is an opaque identifier usable as a mapping key: an integer
// sequence position or a string name. Any comparable value works; the
// algebra only ever needs equality and first-occurrence order.
type Key = any

type kind int

const (
	kindNone kind = iota
	kindAll
	kindIndices
)

// Spec is a region descriptor over keys: All, None, or a finite,
// deduplicated, order-preserving list of keys. The zero Spec is None.
type Spec struct {
	kind kind
	keys []Key
}

// All denotes the entire region.
var All = Spec{kind: kindAll}

// None denotes the empty region. It is also the zero value of Spec.
var None = Spec{kind: kindNone}

// Indices returns a region covering exactly the given keys, deduplicated
// and normalized: a key list that turns out to be empty after
// deduplication is reported as None, never as an Indices value with a
// nil/empty key slice.
func Indices(keys []Key) Spec {
	return Normalize(Spec{kind: kindIndices, keys: dedup(keys)})
}

// Empty reports whether s denotes no keys at all: either None, or an
// Indices value whose key list is empty.
func Empty(s Spec) bool {
	return s.kind == kindNone || (s.kind == kindIndices && len(s.keys) == 0)
}

// Has reports whether key k lies within region s.
func Has(s Spec, k Key) bool {
	switch s.kind {
	case kindAll:
		return true
	case kindNone:
		return false
	default:
		for _, x := range s.keys {
			if x == k {
				return true
			}
		}
		return false
	}
}

// Normalize collapses an empty region to the canonical None value.
func Normalize(s Spec) Spec {
	if Empty(s) {
		return None
	}
	return s
}

// Keys returns the key list of s and true if s is a finite Indices
// region; it returns (nil, false) for All and None.
func Keys(s Spec) ([]Key, bool) {
	if s.kind == kindIndices && len(s.keys) > 0 {
		return s.keys, true
	}
	return nil, false
}

// Merge combines two regions: All is absorbing, None is the identity,
// and two Indices regions merge into the deduplicated concatenation of
// their key lists, keys ordered by first occurrence across a then b.
func Merge(a, b Spec) Spec {
	a, b = Normalize(a), Normalize(b)
	switch {
	case a.kind == kindAll || b.kind == kindAll:
		return All
	case a.kind == kindNone:
		return b
	case b.kind == kindNone:
		return a
	default:
		combined := make([]Key, 0, len(a.keys)+len(b.keys))
		combined = append(combined, a.keys...)
		combined = append(combined, b.keys...)
		return Indices(combined)
	}
}

// dedup removes duplicate keys from keys, preserving the order of their
// first occurrence. It uses an anyhash-backed set rather than a plain
// Go map so that Key's underlying any-ness doesn't force a linear scan
// for larger key lists (e.g. after a large insert/splice).
func dedup(keys []Key) []Key {
	if len(keys) == 0 {
		return nil
	}
	seen := anyhash.NewMap[Key, struct{}, anyhash.ComparableHasher[Key]](anyhash.ComparableHasher[Key]{})
	out := make([]Key, 0, len(keys))
	for _, k := range keys {
		if _, _, ok := seen.Get(k); ok {
			continue
		}
		seen.Set(k, struct{}{})
		out = append(out, k)
	}
	return out
}

// String returns a debugging representation of s.
func (s Spec) String() string {
	switch s.kind {
	case kindAll:
		return "All"
	case kindNone:
		return "None"
	default:
		return "Indices"
	}
}

// IsAll reports whether s is exactly the All region.
func (s Spec) IsAll() bool {
	return s.kind == kindAll
}
