// Package query parses and builds nested query strings using bracket
// notation.
//
// A query string such as
//
//	page=2&filter[status]=open&filter[owner][id]=7&tags[]=a&tags[]=b
//
// parses into the parameter tree
//
//	page   = "2"
//	filter = {status = "open", owner = {id = "7"}}
//	tags   = ["a", "b"]
//
// and Encode turns such a tree back into a query string with sorted keys,
// so the output is stable for equal trees.
//
// # Parsing rules
//
//   - Pairs are split on '&' (see Options.Separators); '+' decodes to a space
//     and percent escapes are decoded per RFC 3986 Section 2.1.
//   - Pairs with an empty name are skipped.
//   - A name without '=' parses to the empty string.
//   - A repeated plain name keeps the last value.
//   - name[] appends to a list; lists hold scalars only.
//   - A '[' without a closing ']' is part of the name: "a[=1" sets "a[".
//   - Nesting deeper than Options.MaxDepth is rejected.
//
// Normalize applies the same name rules to the keys of an existing tree,
// so a patch written as {"filter[status]": "open"} addresses the nested
// parameter.
//
// Errors wrap one of ErrMalformed, ErrTypeConflict, ErrTooDeep or
// ErrUnsupported and can be checked with errors.Is.
package query
