package index_test

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/rogpeppe/reactive/index"
)

func TestHas(t *testing.T) {
	c := qt.New(t)
	s := index.Indices([]index.Key{1, 2, 3})
	c.Assert(index.Has(s, 2), qt.IsTrue)
	c.Assert(index.Has(s, 4), qt.IsFalse)
	c.Assert(index.Has(index.All, "anything"), qt.IsTrue)
	c.Assert(index.Has(index.None, 1), qt.IsFalse)
}

func TestMergeAllAbsorbs(t *testing.T) {
	c := qt.New(t)
	// Spec embeds a slice, so it isn't comparable with ==; DeepEquals
	// (rather than Equals) is the right checker for it throughout.
	c.Assert(index.Merge(index.All, index.Indices([]index.Key{1})), qt.DeepEquals, index.All)
	c.Assert(index.Merge(index.Indices([]index.Key{1}), index.All), qt.DeepEquals, index.All)
}

func TestMergeNoneIsIdentity(t *testing.T) {
	c := qt.New(t)
	x := index.Indices([]index.Key{1, 2})
	c.Assert(index.Merge(index.None, x), qt.DeepEquals, index.Normalize(x))
	c.Assert(index.Merge(x, index.None), qt.DeepEquals, index.Normalize(x))
}

func TestMergeIndicesDedups(t *testing.T) {
	c := qt.New(t)
	got := index.Merge(index.Indices([]index.Key{1, 2, 3}), index.Indices([]index.Key{2, 3, 4}))
	keys, ok := index.Keys(got)
	c.Assert(ok, qt.IsTrue)
	c.Assert(keys, qt.DeepEquals, []index.Key{1, 2, 3, 4})
}

func TestIndicesOfEmptyIsNone(t *testing.T) {
	c := qt.New(t)
	got := index.Indices(nil)
	c.Assert(index.Empty(got), qt.IsTrue)
	_, ok := index.Keys(got)
	c.Assert(ok, qt.IsFalse)
}

func TestIndicesDedupsPreservingOrder(t *testing.T) {
	c := qt.New(t)
	got := index.Indices([]index.Key{3, 1, 3, 2, 1})
	keys, ok := index.Keys(got)
	c.Assert(ok, qt.IsTrue)
	c.Assert(keys, qt.DeepEquals, []index.Key{3, 1, 2})
}

func TestEmpty(t *testing.T) {
	c := qt.New(t)
	c.Assert(index.Empty(index.None), qt.IsTrue)
	c.Assert(index.Empty(index.All), qt.IsFalse)
	c.Assert(index.Empty(index.Indices([]index.Key{1})), qt.IsFalse)
}

func TestStringKeys(t *testing.T) {
	c := qt.New(t)
	s := index.Indices([]index.Key{"a", "b"})
	c.Assert(index.Has(s, "a"), qt.IsTrue)
	c.Assert(index.Has(s, "c"), qt.IsFalse)
}
