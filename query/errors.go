package query

import "errors"

var (
	// ErrMalformed is returned for invalid percent escapes and misplaced
	// brackets in parameter names, such as "a[b]c" or "a[b[c]".
	ErrMalformed = errors.New("malformed query string")

	// ErrTypeConflict is returned when a name is used both as a scalar
	// and as a nested tree or list, e.g. "a=1&a[b]=2".
	ErrTypeConflict = errors.New("conflicting parameter types")

	// ErrTooDeep is returned when a name nests deeper than Options.MaxDepth.
	ErrTooDeep = errors.New("parameters nested too deep")

	// ErrUnsupported is returned for list items that are trees, e.g.
	// "a[][b]=1".
	ErrUnsupported = errors.New("unsupported parameter nesting")
)
