// Package urlfor provides request parameter helpers for handlers and
// templates: reading the parameters of the current request, dropping the
// reserved routing options, and building URLs that carry the current
// parameters forward with some of them changed.
//
// # Request context
//
// A Helper works on an explicit Request value: the matched route name and
// the path, query and body parameters. Middleware builds it for every
// request and stores it in the request context:
//
//	table, _ := routes.LoadFile("routes.yaml")
//	router := urlfor.NewTableRouter(table)
//
//	handler := urlfor.Middleware(router)(app)
//
//	func list(w http.ResponseWriter, r *http.Request) {
//	    h := urlfor.HelperFromContext(r.Context(), router, urlfor.Config{})
//	    next, err := h.MergeURLFor(params.Tree{"page": params.Int(3)})
//	    ...
//	}
//
// # Merging URLs
//
// MergeURLFor deep-merges a patch into the current parameters and asks the
// router for a URL of the current route. On a request for
//
//	/items?page=2&sort=name
//
// the patch {sort: "date", filter: "new"} yields
//
//	/items?filter=new&page=2&sort=date
//
// and the patch {page: null} yields /items?sort=name. Parameters the
// router does not encode, such as nested trees, are added to the query
// string in bracket notation afterwards.
//
// Reserved keys (routes.ReservedKeys: host, protocol, controller, action,
// format and the other URL options) are never taken from the request or
// the patch. Use Config.URLOptions to set them.
//
// # Templates
//
// FuncMap exposes the helpers to html/template:
//
//	tmpl := template.New("list").Funcs(h.FuncMap())
//
//	<a href="{{ merge_url_for "page" 3 }}">next</a>
//	<a href="{{ merge_url_for "filter" nil }}">clear filter</a>
package urlfor
