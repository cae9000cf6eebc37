// Package kv provides a reactive, keyed-mapping collection channel:
// a Source[V] holding a map[index.Key]V whose per-key mutations emit
// fine-grained regions, whole-map derivations (Keys, Values, Entries),
// and a Map that preserves fine-grained-ness through a derived
// one-to-one transformation, mirroring package seq for sequences.
package kv

import (
	"github.com/rogpeppe/reactive/anyhash"
	"github.com/rogpeppe/reactive/index"
	"github.com/rogpeppe/reactive/reactive"
)

type hashMap[V any] = anyhash.Map[index.Key, V, anyhash.ComparableHasher[index.Key]]

// Source is a reactive source channel holding a mapping from
// index.Key to V, backed by an anyhash.Map with a ComparableHasher,
// the same store index uses (see index.dedup). Keys must therefore
// hold comparable dynamic values, as with a plain Go map.
type Source[V any] struct {
	*reactive.SourceChannel[map[index.Key]V]
	m *hashMap[V]
}

// NewSource returns a new mapping source holding a copy of initial.
func NewSource[V any](initial map[index.Key]V, opts ...reactive.SourceOption[map[index.Key]V]) *Source[V] {
	m := anyhash.NewMap[index.Key, V, anyhash.ComparableHasher[index.Key]](anyhash.ComparableHasher[index.Key]{})
	for k, v := range initial {
		m.Set(k, v)
	}
	s := &Source[V]{m: m}
	s.SourceChannel = reactive.NewSource(s.snapshot(), opts...)
	return s
}

func (s *Source[V]) snapshot() map[index.Key]V {
	out := make(map[index.Key]V, s.m.Len())
	for k, v := range s.m.All() {
		out[k] = v
	}
	return out
}

// Len returns the number of entries currently in the mapping.
func (s *Source[V]) Len() int {
	return s.m.Len()
}

// Write replaces the whole mapping, invalidating every downstream
// region.
func (s *Source[V]) Write(m map[index.Key]V) {
	nm := anyhash.NewMap[index.Key, V, anyhash.ComparableHasher[index.Key]](anyhash.ComparableHasher[index.Key]{})
	for k, v := range m {
		nm.Set(k, v)
	}
	s.m = nm
	s.SourceChannel.Write(s.snapshot())
}

// SetItem sets the value at key, invalidating only that key
// downstream (§4.5).
func (s *Source[V]) SetItem(key index.Key, v V) {
	s.m.Set(key, v)
	region := index.Indices([]index.Key{key})
	s.Mutate(s.snapshot(), reactive.Clear{Region: region}, region)
}

// Keys returns a derived channel holding the mapping's current key
// set. It is a whole-map derivation: §4.5 specifies keys/values/entries
// with no ComputeAt, so any key mutation forces a full recompute.
func (s *Source[V]) Keys() *reactive.DerivedChannel[[]index.Key] {
	return reactive.Derive1[map[index.Key]V, []index.Key](s, func(m map[index.Key]V) []index.Key {
		keys := make([]index.Key, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		return keys
	})
}

// Values returns a derived channel holding the mapping's current
// values, in the same whole-map-derivation sense as Keys.
func (s *Source[V]) Values() *reactive.DerivedChannel[[]V] {
	return reactive.Derive1[map[index.Key]V, []V](s, func(m map[index.Key]V) []V {
		vals := make([]V, 0, len(m))
		for _, v := range m {
			vals = append(vals, v)
		}
		return vals
	})
}

// Entry is one key/value pair as returned by Entries.
type Entry[V any] struct {
	Key   index.Key
	Value V
}

// Entries returns a derived channel holding the mapping's current
// key/value pairs, in the same whole-map-derivation sense as Keys.
func (s *Source[V]) Entries() *reactive.DerivedChannel[[]Entry[V]] {
	return reactive.Derive1[map[index.Key]V, []Entry[V]](s, func(m map[index.Key]V) []Entry[V] {
		out := make([]Entry[V], 0, len(m))
		for k, v := range m {
			out = append(out, Entry[V]{Key: k, Value: v})
		}
		return out
	})
}
