// Package routes is a small route table that turns parameter trees into
// URLs and URLs back into parameter trees.
//
// It is the routing host for package urlfor: URLFor consumes some
// parameters into path segments and Recognize tells which parameters a
// path carries.
//
// # Templates
//
// Routes have names and path templates. Variables are enclosed in curly
// braces, optionally followed by a colon and a regular expression or a
// macro name:
//
//	t := routes.NewTable()
//	t.Add("items", "/items")
//	t.Add("item", "/items/{id:int}")
//	t.Add("company_items", "/companies/{company_id}/items").
//	    Defaults(params.Tree{"scope": params.String("company")})
//
// Available macros:
//
//	uuid     - RFC 9562 UUID, validated with github.com/google/uuid
//	int      - unsigned integer (e.g. 42)
//	float    - decimal number (e.g. 3.14, 42, .5)
//	slug     - URL-safe slug (e.g. my-post-title)
//	alpha    - alphabetic characters (e.g. hello)
//	alphanum - alphanumeric characters (e.g. abc123)
//	date     - ISO 8601 date (e.g. 2024-01-15)
//	hex      - hexadecimal string (e.g. deadBEEF)
//
// A single trailing slash is optional when matching.
//
// # Building
//
// URLFor fills the path variables from scalar parameters and appends the
// remaining scalars and lists as a flat query string. Nested trees are not
// encoded; callers that need them use package query:
//
//	u, err := t.URLFor("item", params.Tree{"id": params.Int(7), "tab": params.String("log")}, routes.URLOptions{})
//	// "/items/7?tab=log"
//
// URLOptions carries the parts that must come from application code:
// host, protocol, port, anchor and trailing slash. The matching parameter
// names are listed in ReservedKeys.
//
// # Recognition
//
// Recognize returns the first route matching a path and the parameters it
// implies:
//
//	r, p, err := t.Recognize("/items/7")
//	// r.GetName() == "item", p == {"id": "7"}
//
// ErrNoRoute is returned when nothing matches.
//
// # Route files
//
// LoadFile and ParseYAML build a table from YAML; see FileConfig.
package routes
