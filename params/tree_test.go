package params

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertTree(t *testing.T, want, got Tree) {
	t.Helper()
	if diff := cmp.Diff(want.Map(), got.Map()); diff != "" {
		t.Errorf("tree mismatch (-want +got):\n%s", diff)
	}
}

func TestTreeHelpers(t *testing.T) {
	tree := Tree{
		"page":   String("2"),
		"sort":   String("name"),
		"filter": Nested(Tree{"status": String("open"), "gone": Null()}),
	}

	t.Run("keys are sorted", func(t *testing.T) {
		assert.Equal(t, []string{"filter", "page", "sort"}, tree.Keys())
	})

	t.Run("lookup", func(t *testing.T) {
		v, ok := tree.Lookup("page")
		assert.True(t, ok)
		assert.Equal(t, "2", v.String())

		_, ok = tree.Lookup("missing")
		assert.False(t, ok)
	})

	t.Run("dig", func(t *testing.T) {
		v, ok := tree.Dig("filter", "status")
		assert.True(t, ok)
		assert.Equal(t, "open", v.String())

		_, ok = tree.Dig("page", "status")
		assert.False(t, ok)

		_, ok = tree.Dig("filter", "missing")
		assert.False(t, ok)

		v, ok = tree.Dig()
		assert.True(t, ok)
		assert.True(t, v.IsTree())
	})

	t.Run("except ignores absent keys", func(t *testing.T) {
		got := tree.Except("sort", "missing")
		assert.Equal(t, []string{"filter", "page"}, got.Keys())
		assert.Len(t, tree, 3)
	})

	t.Run("slice ignores absent keys", func(t *testing.T) {
		got := tree.Slice("page", "missing")
		assertTree(t, Tree{"page": String("2")}, got)
	})

	t.Run("compact drops nested nulls", func(t *testing.T) {
		got := tree.Compact()
		v, ok := got.Dig("filter")
		require.True(t, ok)
		assert.Equal(t, []string{"status"}, v.Tree().Keys())
	})

	t.Run("nil equals empty", func(t *testing.T) {
		var empty Tree
		assert.True(t, empty.Equal(Tree{}))
		assert.Empty(t, empty.Clone())
	})
}
