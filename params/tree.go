package params

import (
	"maps"
	"slices"
)

// Tree maps parameter names to values. Keys are case-sensitive.
type Tree map[string]Value

// FromMap converts a generic map, such as one decoded from JSON, into a
// Tree. See Of for the conversion rules.
func FromMap(m map[string]any) Tree {
	t := make(Tree, len(m))
	for k, v := range m {
		t[k] = Of(v)
	}
	return t
}

// Map converts t into a map[string]any of strings, string slices, nested
// maps and nils.
func (t Tree) Map() map[string]any {
	m := make(map[string]any, len(t))
	for k, v := range t {
		m[k] = v.Interface()
	}
	return m
}

// Clone returns a deep copy of t. Cloning a nil tree returns an empty tree.
func (t Tree) Clone() Tree {
	out := make(Tree, len(t))
	for k, v := range t {
		out[k] = v.Clone()
	}
	return out
}

// Keys returns the keys of t in sorted order.
func (t Tree) Keys() []string {
	return slices.Sorted(maps.Keys(t))
}

// Lookup returns the value stored at key and whether the key is present.
// A present key may still hold a null value.
func (t Tree) Lookup(key string) (Value, bool) {
	v, ok := t[key]
	return v, ok
}

// Dig follows path through nested trees. It reports false when a segment
// is missing or an intermediate value is not a tree.
func (t Tree) Dig(path ...string) (Value, bool) {
	if len(path) == 0 {
		return Nested(t), true
	}
	cur := t
	for i, key := range path {
		v, ok := cur[key]
		if !ok {
			return Value{}, false
		}
		if i == len(path)-1 {
			return v, true
		}
		if !v.IsTree() {
			return Value{}, false
		}
		cur = v.tree
	}
	return Value{}, false
}

// Except returns a copy of t without the given keys. Absent keys are
// ignored.
func (t Tree) Except(keys ...string) Tree {
	out := t.Clone()
	for _, k := range keys {
		delete(out, k)
	}
	return out
}

// Slice returns a copy of t holding only the given keys. Absent keys are
// ignored.
func (t Tree) Slice(keys ...string) Tree {
	out := make(Tree, len(keys))
	for _, k := range keys {
		if v, ok := t[k]; ok {
			out[k] = v.Clone()
		}
	}
	return out
}

// Compact returns a copy of t with null values removed at every level.
func (t Tree) Compact() Tree {
	out := make(Tree, len(t))
	for k, v := range t {
		switch v.kind {
		case KindNull:
			continue
		case KindTree:
			out[k] = Nested(v.tree.Compact())
		default:
			out[k] = v.Clone()
		}
	}
	return out
}

// Equal reports whether t and o hold the same keys with equal values.
// A nil tree equals an empty tree.
func (t Tree) Equal(o Tree) bool {
	if len(t) != len(o) {
		return false
	}
	for k, v := range t {
		ov, ok := o[k]
		if !ok || !v.Equal(ov) {
			return false
		}
	}
	return true
}
