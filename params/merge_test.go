package params

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMerge(t *testing.T) {
	tests := []struct {
		name  string
		base  Tree
		patch Tree
		want  Tree
	}{
		{
			name:  "empty patch returns base",
			base:  Tree{"a": String("1"), "b": Nested(Tree{"c": String("2")})},
			patch: Tree{},
			want:  Tree{"a": String("1"), "b": Nested(Tree{"c": String("2")})},
		},
		{
			name:  "scalar replaced",
			base:  Tree{"sort": String("name"), "page": String("2")},
			patch: Tree{"sort": String("date")},
			want:  Tree{"sort": String("date"), "page": String("2")},
		},
		{
			name:  "new key added",
			base:  Tree{"page": String("2")},
			patch: Tree{"filter": String("new")},
			want:  Tree{"page": String("2"), "filter": String("new")},
		},
		{
			name:  "null deletes key",
			base:  Tree{"page": String("2"), "sort": String("name")},
			patch: Tree{"page": Null()},
			want:  Tree{"sort": String("name")},
		},
		{
			name:  "null on absent key is a no-op",
			base:  Tree{"sort": String("name")},
			patch: Tree{"page": Null()},
			want:  Tree{"sort": String("name")},
		},
		{
			name:  "nested trees merge key by key",
			base:  Tree{"f": Nested(Tree{"a": String("1"), "b": String("2")})},
			patch: Tree{"f": Nested(Tree{"b": String("3"), "c": String("4")})},
			want:  Tree{"f": Nested(Tree{"a": String("1"), "b": String("3"), "c": String("4")})},
		},
		{
			name:  "nested null deletes nested key",
			base:  Tree{"f": Nested(Tree{"a": String("1"), "b": String("2")})},
			patch: Tree{"f": Nested(Tree{"a": Null()})},
			want:  Tree{"f": Nested(Tree{"b": String("2")})},
		},
		{
			name:  "tree replaces scalar",
			base:  Tree{"f": String("x")},
			patch: Tree{"f": Nested(Tree{"a": String("1"), "gone": Null()})},
			want:  Tree{"f": Nested(Tree{"a": String("1")})},
		},
		{
			name:  "scalar replaces tree",
			base:  Tree{"f": Nested(Tree{"a": String("1")})},
			patch: Tree{"f": String("x")},
			want:  Tree{"f": String("x")},
		},
		{
			name:  "list replaced wholesale",
			base:  Tree{"tags": List("a", "b")},
			patch: Tree{"tags": List("c")},
			want:  Tree{"tags": List("c")},
		},
		{
			name:  "nil base",
			base:  nil,
			patch: Tree{"a": String("1"), "b": Null()},
			want:  Tree{"a": String("1")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertTree(t, tt.want, Merge(tt.base, tt.patch))
		})
	}
}

func TestMergeProperties(t *testing.T) {
	trees := []Tree{
		{},
		{"a": String("1")},
		{"a": String("1"), "b": Nested(Tree{"c": String("2"), "d": Nested(Tree{"e": List("x", "y")})})},
		{"page": String("2"), "sort": String("name"), "filter": Nested(Tree{})},
	}

	for _, a := range trees {
		assert.True(t, Merge(a, Tree{}).Equal(a), "merge with empty: %#v", a)
		assert.True(t, Merge(a, a).Equal(a), "merge with itself: %#v", a)

		for _, k := range []string{"a", "b", "missing"} {
			got := Merge(a, Tree{k: Null()})
			_, ok := got[k]
			assert.False(t, ok, "key %q survived deletion", k)
			assert.True(t, got.Equal(a.Except(k)))
		}
	}
}

func TestMergeDoesNotMutateInputs(t *testing.T) {
	base := Tree{"f": Nested(Tree{"a": String("1")}), "x": String("1")}
	patch := Tree{"f": Nested(Tree{"a": String("2")}), "x": Null()}

	got := Merge(base, patch)
	got["f"].Tree()["a"] = String("3")

	assertTree(t, Tree{"f": Nested(Tree{"a": String("1")}), "x": String("1")}, base)
	assertTree(t, Tree{"f": Nested(Tree{"a": String("2")}), "x": Null()}, patch)
}

func TestOverlay(t *testing.T) {
	base := Tree{"page": String("2"), "f": Nested(Tree{"a": String("1")})}
	patch := Tree{"page": Null(), "f": Nested(Tree{"a": Null(), "b": String("2")})}

	got := Overlay(base, patch)

	assertTree(t, Tree{
		"page": Null(),
		"f":    Nested(Tree{"a": Null(), "b": String("2")}),
	}, got)
	assertTree(t, Merge(base, patch), got.Compact())
}
