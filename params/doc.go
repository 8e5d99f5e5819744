// Package params implements parameter trees: the nested key/value
// structures that request parameters decode into.
//
// # Values
//
// A Value is a tagged variant. It is exactly one of:
//
//	KindNull   - the zero Value; in a patch it marks a key for deletion
//	KindScalar - a string (numbers and booleans are formatted on construction)
//	KindTree   - a nested Tree
//	KindList   - an ordered list of scalars, as produced by a[]=1&a[]=2
//
// Trees are built with the constructors:
//
//	t := params.Tree{
//	    "page":   params.Int(2),
//	    "sort":   params.String("name"),
//	    "filter": params.Nested(params.Tree{"status": params.String("open")}),
//	}
//
// or converted at the boundary from generic Go values:
//
//	t := params.FromMap(map[string]any{"page": 2, "filter": map[string]any{"status": "open"}})
//
// # Merging
//
// Merge deep-merges a patch into a base tree and returns a new tree.
// Nested trees are merged key by key, anything else at a matching key is
// replaced by the patch, and a null in the patch removes the key:
//
//	params.Merge(
//	    params.Tree{"page": params.Int(2), "sort": params.String("name")},
//	    params.Tree{"page": params.Null()},
//	) // {"sort": "name"}
//
// Overlay performs the same merge but keeps the null entries, so a later
// Compare can still tell which keys were deleted explicitly.
//
// # Comparing
//
// Compare walks one tree against another and collects whatever the visit
// function emits. Subtrees that are equal in both trees are skipped:
//
//	leftover := params.Compare(a, b, func(key string, av, bv params.Value, inB bool) (params.Value, bool) {
//	    return av, !inB
//	})
//
// # YAML
//
// Value implements yaml.Unmarshaler, so trees can be declared directly in
// configuration files.
package params
