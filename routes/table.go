package routes

import (
	"errors"
	"fmt"
	"net/url"
	"path"

	"github.com/vitalvas/paramkit/params"
	"github.com/vitalvas/paramkit/query"
)

// Route is a named path template with optional default parameters.
type Route struct {
	name     string
	tpl      *template
	defaults params.Tree
	err      error
}

// Defaults sets parameters the route implies without carrying them in the
// path. Recognize returns them and URLFor leaves them out of the query.
func (r *Route) Defaults(t params.Tree) *Route {
	if r.err == nil {
		r.defaults = t.Clone()
	}
	return r
}

// GetName returns the route name.
func (r *Route) GetName() string {
	return r.name
}

// GetPathTemplate returns the template the route was registered with.
func (r *Route) GetPathTemplate() string {
	if r.tpl == nil {
		return ""
	}
	return r.tpl.raw
}

// GetVarNames returns the path variable names in template order.
func (r *Route) GetVarNames() []string {
	if r.tpl == nil {
		return nil
	}
	return append([]string(nil), r.tpl.varsN...)
}

// GetDefaults returns a copy of the route defaults.
func (r *Route) GetDefaults() params.Tree {
	return r.defaults.Clone()
}

// GetError returns the error recorded while registering the route.
func (r *Route) GetError() error {
	return r.err
}

// Table is an ordered set of named routes. It builds URLs from parameter
// trees and recognizes paths back into them.
//
// A Table is safe for concurrent use once all routes are registered.
type Table struct {
	routes []*Route
	named  map[string]*Route
}

// NewTable returns an empty route table.
func NewTable() *Table {
	return &Table{named: make(map[string]*Route)}
}

// Add registers a route. Registration errors are recorded on the returned
// route; see Route.GetError and Table.Err.
func (t *Table) Add(name, tpl string) *Route {
	r := &Route{name: name}
	t.routes = append(t.routes, r)

	if name == "" {
		r.err = fmt.Errorf("routes: route %q has no name", tpl)
		return r
	}
	if _, ok := t.named[name]; ok {
		r.err = fmt.Errorf("routes: route name %q already registered", name)
		return r
	}

	r.tpl, r.err = newTemplate(tpl)
	if r.err == nil {
		t.named[name] = r
	}
	return r
}

// Get returns the route registered with the given name, or nil.
func (t *Table) Get(name string) *Route {
	return t.named[name]
}

// Routes returns the registered routes in registration order.
func (t *Table) Routes() []*Route {
	return append([]*Route(nil), t.routes...)
}

// Err joins the registration errors of all routes.
func (t *Table) Err() error {
	var errs []error
	for _, r := range t.routes {
		if r.err != nil {
			errs = append(errs, r.err)
		}
	}
	return errors.Join(errs...)
}

// WalkFunc is called for each route by Walk.
type WalkFunc func(route *Route) error

// Walk calls fn for every route in registration order and stops at the
// first error.
func (t *Table) Walk(fn WalkFunc) error {
	for _, r := range t.routes {
		if err := fn(r); err != nil {
			return err
		}
	}
	return nil
}

// URLFor builds a URL for the named route from a parameter tree.
//
// Path variables are taken from scalar values in p, falling back to the
// route defaults; those keys are consumed. Remaining scalar and list values
// go to a flat query string, except values equal to a route default.
// Nested trees and nulls are not encoded.
func (t *Table) URLFor(name string, p params.Tree, opts URLOptions) (string, error) {
	r := t.named[name]
	if r == nil {
		return "", fmt.Errorf("routes: %w %q", ErrUnknownRoute, name)
	}

	values := make(map[string]string, len(r.tpl.varsN))
	for _, v := range r.tpl.varsN {
		if pv, ok := p[v]; ok && pv.IsScalar() {
			values[v] = pv.String()
		} else if dv, ok := r.defaults[v]; ok && dv.IsScalar() {
			values[v] = dv.String()
		}
	}

	urlPath, err := r.tpl.build(values)
	if err != nil {
		return "", fmt.Errorf("routes: route %q: %w", name, err)
	}

	q := make(url.Values)
	for k, v := range p.Except(r.tpl.varsN...) {
		if dv, ok := r.defaults[k]; ok && dv.Equal(v) {
			continue
		}
		switch v.Kind() {
		case params.KindScalar:
			q.Set(k, v.String())
		case params.KindList:
			q[k+"[]"] = v.List()
		}
	}

	u := &url.URL{Path: urlPath, RawQuery: q.Encode()}
	if err := opts.apply(u); err != nil {
		return "", err
	}
	return u.String(), nil
}

// Recognize returns the first route matching urlPath together with its
// parameters: the route defaults overlaid with the path variables.
// The path is cleaned of dot segments (RFC 3986 Section 5.2.4) first.
func (t *Table) Recognize(urlPath string) (*Route, params.Tree, error) {
	cleaned := cleanPath(urlPath)
	for _, r := range t.routes {
		if r.err != nil {
			continue
		}
		vars, ok := r.tpl.match(cleaned)
		if !ok {
			continue
		}
		tree := r.defaults.Clone()
		for k, v := range vars {
			tree[k] = params.String(v)
		}
		return r, tree, nil
	}
	return nil, nil, fmt.Errorf("routes: %w %q", ErrNoRoute, urlPath)
}

// RecognizeURL recognizes the path of a URL and merges its query string
// over the route parameters, returning every parameter the URL carries.
func (t *Table) RecognizeURL(rawURL string) (*Route, params.Tree, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, nil, err
	}
	r, tree, err := t.Recognize(u.Path)
	if err != nil {
		return nil, nil, err
	}
	q, err := query.Parse(u.RawQuery)
	if err != nil {
		return nil, nil, err
	}
	return r, params.Merge(tree, q), nil
}

// cleanPath returns the canonical path for p, eliminating . and ..
// elements per RFC 3986 Section 5.2.4.
func cleanPath(p string) string {
	if p == "" {
		return "/"
	}
	if p[0] != '/' {
		p = "/" + p
	}
	np := path.Clean(p)
	if p[len(p)-1] == '/' && np != "/" {
		np += "/"
	}
	return np
}
