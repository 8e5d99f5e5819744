package urlfor

import (
	"github.com/vitalvas/paramkit/params"
	"github.com/vitalvas/paramkit/routes"
)

// Router is the routing host the helpers build URLs with.
type Router interface {
	// URLFor builds a URL for the named route. It may consume some
	// parameters into path segments and may ignore others.
	URLFor(name string, p params.Tree, opts routes.URLOptions) (string, error)

	// Recognize returns the route name and the parameters a path carries.
	Recognize(path string) (string, params.Tree, error)
}

// TableRouter adapts a routes.Table to the Router interface.
type TableRouter struct {
	Table *routes.Table
}

// NewTableRouter returns a Router backed by t.
func NewTableRouter(t *routes.Table) TableRouter {
	return TableRouter{Table: t}
}

// URLFor implements Router.
func (tr TableRouter) URLFor(name string, p params.Tree, opts routes.URLOptions) (string, error) {
	return tr.Table.URLFor(name, p, opts)
}

// Recognize implements Router.
func (tr TableRouter) Recognize(path string) (string, params.Tree, error) {
	r, p, err := tr.Table.Recognize(path)
	if err != nil {
		return "", nil, err
	}
	return r.GetName(), p, nil
}
