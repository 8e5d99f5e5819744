package query

import (
	"fmt"
	"net/url"
	"slices"
	"strings"

	"github.com/vitalvas/paramkit/params"
)

// Parse parses a raw query string (without the leading '?') into a
// parameter tree using DefaultOptions.
func Parse(raw string) (params.Tree, error) {
	return ParseWithOptions(raw, DefaultOptions)
}

// ParseWithOptions parses a raw query string into a parameter tree.
func ParseWithOptions(raw string, opts Options) (params.Tree, error) {
	tree := make(params.Tree)
	seps := opts.separators()
	depth := opts.maxDepth()

	pairs := strings.FieldsFunc(raw, func(r rune) bool {
		return strings.ContainsRune(seps, r)
	})

	for _, pair := range pairs {
		rawName, rawValue, _ := strings.Cut(pair, "=")

		name, err := url.QueryUnescape(rawName)
		if err != nil {
			return nil, fmt.Errorf("query: name %q: %w: %w", rawName, ErrMalformed, err)
		}
		value, err := url.QueryUnescape(rawValue)
		if err != nil {
			return nil, fmt.Errorf("query: value of %q: %w: %w", name, ErrMalformed, err)
		}

		if err := assign(tree, name, value, depth); err != nil {
			return nil, err
		}
	}

	return tree, nil
}

// ParseValues normalizes already-decoded form values, such as
// http.Request.PostForm, into a parameter tree. Names are processed in
// sorted order and values in their original order.
func ParseValues(values url.Values) (params.Tree, error) {
	tree := make(params.Tree)
	depth := DefaultOptions.maxDepth()

	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		for _, value := range values[name] {
			if err := assign(tree, name, value, depth); err != nil {
				return nil, err
			}
		}
	}

	return tree, nil
}

// assign stores value in tree at the position described by the bracketed
// name.
func assign(tree params.Tree, name, value string, maxDepth int) error {
	segments, list, err := splitName(name, maxDepth)
	if err != nil {
		return err
	}
	if len(segments) == 0 {
		return nil
	}

	cur := tree
	for _, seg := range segments[:len(segments)-1] {
		v, ok := cur[seg]
		switch {
		case !ok:
			next := make(params.Tree)
			cur[seg] = params.Nested(next)
			cur = next
		case v.IsTree():
			cur = v.Tree()
		default:
			return fmt.Errorf("query: %q: %w: %q is a %s, not a tree", name, ErrTypeConflict, seg, v.Kind())
		}
	}

	last := segments[len(segments)-1]
	v, ok := cur[last]

	if list {
		switch {
		case !ok:
			cur[last] = params.List(value)
		case v.IsList():
			cur[last] = params.List(append(slices.Clone(v.List()), value)...)
		default:
			return fmt.Errorf("query: %q: %w: %q is a %s, not a list", name, ErrTypeConflict, last, v.Kind())
		}
		return nil
	}

	if ok && (v.IsTree() || v.IsList()) {
		return fmt.Errorf("query: %q: %w: %q is a %s, not a scalar", name, ErrTypeConflict, last, v.Kind())
	}
	cur[last] = params.String(value)
	return nil
}

// splitName breaks a name such as "a[b][c]" or "a[]" into its segments.
// list reports a trailing "[]". An empty base name yields no segments.
// A '[' without a closing ']' is kept literally in the last segment.
func splitName(name string, maxDepth int) (segments []string, list bool, err error) {
	base, rest, nested := strings.Cut(name, "[")
	if base == "" {
		return nil, false, nil
	}
	segments = append(segments, base)
	if !nested {
		return segments, false, nil
	}

	rest = "[" + rest
	depth := 0
	for rest != "" {
		if rest[0] != '[' {
			return nil, false, fmt.Errorf("query: name %q: %w: unexpected %q after ']'", name, ErrMalformed, rest)
		}
		end := strings.IndexByte(rest, ']')
		if end < 0 {
			// An unclosed bracket is part of the key: "a[" names "a[".
			segments[len(segments)-1] += rest
			return segments, false, nil
		}
		seg := rest[1:end]
		if strings.IndexByte(seg, '[') >= 0 {
			return nil, false, fmt.Errorf("query: name %q: %w: '[' inside key segment", name, ErrMalformed)
		}
		rest = rest[end+1:]

		if depth++; depth > maxDepth {
			return nil, false, fmt.Errorf("query: name %q: %w: limit is %d", name, ErrTooDeep, maxDepth)
		}

		if seg == "" {
			if rest != "" {
				return nil, false, fmt.Errorf("query: name %q: %w: lists of trees are not supported", name, ErrUnsupported)
			}
			return segments, true, nil
		}
		segments = append(segments, seg)
	}

	return segments, false, nil
}
