package params

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueKinds(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		kind Kind
		str  string
	}{
		{name: "zero value is null", v: Value{}, kind: KindNull},
		{name: "null", v: Null(), kind: KindNull},
		{name: "string", v: String("abc"), kind: KindScalar, str: "abc"},
		{name: "int", v: Int(42), kind: KindScalar, str: "42"},
		{name: "negative int", v: Int(-7), kind: KindScalar, str: "-7"},
		{name: "float", v: Float(1.5), kind: KindScalar, str: "1.5"},
		{name: "bool", v: Bool(true), kind: KindScalar, str: "true"},
		{name: "list", v: List("a", "b"), kind: KindList},
		{name: "tree", v: Nested(Tree{"a": String("1")}), kind: KindTree},
		{name: "nil tree", v: Nested(nil), kind: KindTree},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.v.Kind())
			assert.Equal(t, tt.str, tt.v.String())
			assert.Equal(t, tt.kind == KindNull, tt.v.IsNull())
			assert.Equal(t, tt.kind == KindScalar, tt.v.IsScalar())
			assert.Equal(t, tt.kind == KindTree, tt.v.IsTree())
			assert.Equal(t, tt.kind == KindList, tt.v.IsList())
		})
	}

	t.Run("nil tree is stored empty", func(t *testing.T) {
		assert.NotNil(t, Nested(nil).Tree())
		assert.Empty(t, Nested(nil).Tree())
	})

	t.Run("kind names", func(t *testing.T) {
		assert.Equal(t, "null", KindNull.String())
		assert.Equal(t, "tree", KindTree.String())
		assert.Equal(t, "Kind(9)", Kind(9).String())
	})
}

func TestOf(t *testing.T) {
	got := FromMap(map[string]any{
		"page":    2,
		"ratio":   0.25,
		"active":  false,
		"name":    "x",
		"none":    nil,
		"tags":    []string{"a", "b"},
		"mixed":   []any{1, "two"},
		"filter":  map[string]any{"status": "open"},
		"headers": map[string]string{"a": "b"},
		"value":   String("v"),
	})

	want := Tree{
		"page":    String("2"),
		"ratio":   String("0.25"),
		"active":  String("false"),
		"name":    String("x"),
		"none":    Null(),
		"tags":    List("a", "b"),
		"mixed":   List("1", "two"),
		"filter":  Nested(Tree{"status": String("open")}),
		"headers": Nested(Tree{"a": String("b")}),
		"value":   String("v"),
	}

	assert.True(t, want.Equal(got), "got %#v", got)
}

func TestValueEqual(t *testing.T) {
	assert.True(t, Null().Equal(Value{}))
	assert.True(t, String("a").Equal(String("a")))
	assert.False(t, String("a").Equal(String("b")))
	assert.False(t, String("").Equal(Null()))
	assert.True(t, List("a").Equal(List("a")))
	assert.False(t, List("a").Equal(List("a", "b")))
	assert.False(t, List("a").Equal(String("a")))
	assert.True(t, Nested(nil).Equal(Nested(Tree{})))
	assert.False(t, Nested(Tree{"a": Null()}).Equal(Nested(Tree{})))
}

func TestValueClone(t *testing.T) {
	orig := Nested(Tree{"a": Nested(Tree{"b": String("1")}), "l": List("x")})
	clone := orig.Clone()

	clone.Tree()["a"].Tree()["b"] = String("2")
	clone.Tree()["l"].List()[0] = "y"

	v, ok := orig.Tree().Dig("a", "b")
	require.True(t, ok)
	assert.Equal(t, "1", v.String())
	assert.Equal(t, []string{"x"}, orig.Tree()["l"].List())
}
