package query

import "github.com/vitalvas/paramkit/params"

// Normalize rewrites bracketed names such as "f[a]" or "tags[]" into the
// nested structure Parse produces for them, at every level of tree.
// Values are moved, not re-parsed: null values stay null so a normalized
// patch still deletes. A scalar under a "name[]" key becomes a one-item
// list. Names Parse would skip, such as "[a]", are dropped.
//
// Names sharing a prefix are deep-merged in sorted key order, so
// {"f": {"a": 1}, "f[b]": 2} normalizes to {"f": {"a": 1, "b": 2}}.
func Normalize(tree params.Tree) (params.Tree, error) {
	out := make(params.Tree, len(tree))
	depth := DefaultOptions.maxDepth()

	for _, name := range tree.Keys() {
		segments, list, err := splitName(name, depth)
		if err != nil {
			return nil, err
		}
		if len(segments) == 0 {
			continue
		}

		v := tree[name]
		switch {
		case v.IsTree():
			sub, err := Normalize(v.Tree())
			if err != nil {
				return nil, err
			}
			v = params.Nested(sub)
		case list && v.IsScalar():
			v = params.List(v.String())
		}

		for i := len(segments) - 1; i > 0; i-- {
			v = params.Nested(params.Tree{segments[i]: v})
		}
		out = params.Overlay(out, params.Tree{segments[0]: v})
	}

	return out, nil
}
