package params

import (
	"fmt"
	"slices"
	"strconv"
)

// Kind identifies which variant a Value holds.
type Kind uint8

const (
	KindNull Kind = iota
	KindScalar
	KindTree
	KindList
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindScalar:
		return "scalar"
	case KindTree:
		return "tree"
	case KindList:
		return "list"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Value is a single parameter value. The zero Value is null.
type Value struct {
	kind   Kind
	scalar string
	tree   Tree
	list   []string
}

// Null returns the null value. In a merge patch it deletes the key.
func Null() Value {
	return Value{}
}

// String returns a scalar value.
func String(s string) Value {
	return Value{kind: KindScalar, scalar: s}
}

// Int returns a scalar value holding the decimal form of n.
func Int(n int64) Value {
	return String(strconv.FormatInt(n, 10))
}

// Float returns a scalar value holding the shortest decimal form of f.
func Float(f float64) Value {
	return String(strconv.FormatFloat(f, 'f', -1, 64))
}

// Bool returns a scalar value holding "true" or "false".
func Bool(b bool) Value {
	return String(strconv.FormatBool(b))
}

// List returns a list value. The items are copied.
func List(items ...string) Value {
	return Value{kind: KindList, list: slices.Clone(items)}
}

// Nested returns a tree value. A nil tree is stored as an empty tree.
func Nested(t Tree) Value {
	if t == nil {
		t = Tree{}
	}
	return Value{kind: KindTree, tree: t}
}

// Of converts a generic Go value into a Value. Maps with string keys become
// trees, slices become lists of their formatted elements, nil becomes null
// and everything else is formatted as a scalar.
func Of(v any) Value {
	switch x := v.(type) {
	case nil:
		return Null()
	case Value:
		return x
	case Tree:
		return Nested(x)
	case string:
		return String(x)
	case bool:
		return Bool(x)
	case int:
		return Int(int64(x))
	case int32:
		return Int(int64(x))
	case int64:
		return Int(x)
	case uint:
		return String(strconv.FormatUint(uint64(x), 10))
	case uint64:
		return String(strconv.FormatUint(x, 10))
	case float32:
		return Float(float64(x))
	case float64:
		return Float(x)
	case map[string]any:
		return Nested(FromMap(x))
	case map[string]string:
		t := make(Tree, len(x))
		for k, s := range x {
			t[k] = String(s)
		}
		return Nested(t)
	case []string:
		return List(x...)
	case []any:
		items := make([]string, 0, len(x))
		for _, item := range x {
			items = append(items, fmt.Sprint(item))
		}
		return List(items...)
	case fmt.Stringer:
		return String(x.String())
	default:
		return String(fmt.Sprint(x))
	}
}

// Kind returns the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// IsScalar reports whether v is a scalar.
func (v Value) IsScalar() bool { return v.kind == KindScalar }

// IsTree reports whether v is a nested tree.
func (v Value) IsTree() bool { return v.kind == KindTree }

// IsList reports whether v is a list.
func (v Value) IsList() bool { return v.kind == KindList }

// String returns the scalar string. It is empty for any other kind.
func (v Value) String() string {
	return v.scalar
}

// Tree returns the nested tree, or nil when v is not a tree.
func (v Value) Tree() Tree {
	if v.kind != KindTree {
		return nil
	}
	return v.tree
}

// List returns the list items, or nil when v is not a list.
func (v Value) List() []string {
	if v.kind != KindList {
		return nil
	}
	return v.list
}

// Equal reports whether v and o hold the same kind and content.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindScalar:
		return v.scalar == o.scalar
	case KindTree:
		return v.tree.Equal(o.tree)
	case KindList:
		return slices.Equal(v.list, o.list)
	default:
		return true
	}
}

// Clone returns a deep copy of v.
func (v Value) Clone() Value {
	switch v.kind {
	case KindTree:
		return Nested(v.tree.Clone())
	case KindList:
		return List(v.list...)
	default:
		return v
	}
}

// Interface converts v back into a generic Go value: nil, string,
// []string or map[string]any.
func (v Value) Interface() any {
	switch v.kind {
	case KindScalar:
		return v.scalar
	case KindList:
		return slices.Clone(v.list)
	case KindTree:
		return v.tree.Map()
	default:
		return nil
	}
}

// GoString makes trees readable in test failure output.
func (v Value) GoString() string {
	switch v.kind {
	case KindScalar:
		return strconv.Quote(v.scalar)
	case KindList:
		return fmt.Sprintf("%q", v.list)
	case KindTree:
		return fmt.Sprintf("%v", v.tree.Map())
	default:
		return "null"
	}
}
