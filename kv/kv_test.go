package kv_test

import (
	"sort"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/rogpeppe/reactive/index"
	"github.com/rogpeppe/reactive/kv"
)

func TestSetItemAndMap(t *testing.T) {
	c := qt.New(t)
	m := kv.NewSource(map[index.Key]int{"a": 1, "b": 2})
	doubled := kv.Map(m, func(x int) int { return x * 2 })

	c.Assert(doubled.Read()["a"], qt.Equals, 2)
	c.Assert(doubled.Read()["b"], qt.Equals, 4)

	m.SetItem("a", 10)
	got := doubled.Read()
	c.Assert(got["a"], qt.Equals, 20)
	c.Assert(got["b"], qt.Equals, 4)
}

func TestKeysValuesEntries(t *testing.T) {
	c := qt.New(t)
	m := kv.NewSource(map[index.Key]int{"a": 1, "b": 2})

	keys := m.Keys().Read()
	sort.Slice(keys, func(i, j int) bool { return keys[i].(string) < keys[j].(string) })
	c.Assert(keys, qt.DeepEquals, []index.Key{"a", "b"})

	values := m.Values().Read()
	sort.Slice(values, func(i, j int) bool { return values[i] < values[j] })
	c.Assert(values, qt.DeepEquals, []int{1, 2})

	entries := m.Entries().Read()
	c.Assert(len(entries), qt.Equals, 2)
}

func TestKeysIsWholeMapDerivation(t *testing.T) {
	c := qt.New(t)
	m := kv.NewSource(map[index.Key]int{"a": 1})
	// Keys/Values/Entries have no ComputeAt (§4.5): a mutation to a
	// single key still forces a full recompute of the whole key list.
	d := m.Keys()
	before := len(d.Read())
	m.SetItem("b", 2)
	after := len(d.Read())
	c.Assert(before, qt.Equals, 1)
	c.Assert(after, qt.Equals, 2)
}
