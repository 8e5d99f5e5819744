package urlfor

import (
	"fmt"
	"log/slog"
	"net/url"

	"github.com/vitalvas/paramkit/params"
	"github.com/vitalvas/paramkit/query"
)

// Helper exposes the parameters of one request and builds URLs that carry
// them forward. A Helper is bound to a single request and never modifies
// it.
type Helper struct {
	req      *Request
	router   Router
	reserved []string
	cfg      Config
	log      *slog.Logger
}

// New returns a Helper for req. A nil req is treated as an empty request.
func New(req *Request, router Router, cfg Config) *Helper {
	if req == nil {
		req = &Request{Path: "/"}
	}
	return &Helper{
		req:      req,
		router:   router,
		reserved: cfg.reservedKeys(),
		cfg:      cfg,
		log:      cfg.logger(),
	}
}

// Request returns the request the helper is bound to.
func (h *Helper) Request() *Request {
	return h.req
}

// RequestParams returns every parameter of the request: body parameters,
// then query parameters, then path parameters, deep-merged in that order.
// Path parameters always win, so a query string cannot redirect the
// route variables.
func (h *Helper) RequestParams() params.Tree {
	merged := params.Merge(h.req.BodyParams, h.req.QueryParams)
	return params.Merge(merged, h.req.PathParams)
}

// QueryParamsFromRequestParams returns the request parameters without the
// keys recognized from the path: what would normally travel in a query
// string, including body parameters.
func (h *Helper) QueryParamsFromRequestParams() params.Tree {
	return h.RequestParams().Except(h.req.PathParams.Keys()...)
}

// QueryParams returns the parameters parsed from the query string.
func (h *Helper) QueryParams() params.Tree {
	return h.req.QueryParams.Clone()
}

// ParamsForURL returns the request parameters that may safely be passed
// to a URL builder: everything except the reserved keys.
func (h *Helper) ParamsForURL() params.Tree {
	return h.sanitize(h.RequestParams())
}

// MergeParams deep-merges patch into ParamsForURL. Reserved keys in the
// patch are dropped and a null value removes a key.
func (h *Helper) MergeParams(patch params.Tree) params.Tree {
	return params.Merge(h.ParamsForURL(), h.sanitize(patch))
}

// SliceParams returns the given keys of ParamsForURL. Absent keys are
// skipped.
func (h *Helper) SliceParams(keys ...string) params.Tree {
	return h.ParamsForURL().Slice(keys...)
}

// MergeURLFor merges patch into the current parameters and builds a URL
// for the current route from the result. A null value in patch removes
// the key from the URL. Bracketed keys such as "f[a]" address the nested
// parameter they name.
//
// The router consumes what it can into path segments and a flat query.
// Parameters it did not encode (nested trees, keys it ignored) and
// explicit deletions are then applied to the query string of the URL it
// returned.
func (h *Helper) MergeURLFor(patch params.Tree) (string, error) {
	patch, err := query.Normalize(patch)
	if err != nil {
		return "", fmt.Errorf("urlfor: patch: %w", err)
	}
	patch = h.sanitize(patch)

	current, err := query.Normalize(h.ParamsForURL())
	if err != nil {
		return "", fmt.Errorf("urlfor: request params: %w", err)
	}

	built, err := h.router.URLFor(h.req.Route, params.Merge(current, patch), h.cfg.URLOptions)
	if err != nil {
		return "", err
	}

	consumed, err := h.consumedParams(built)
	if err != nil {
		return "", err
	}

	leftover := params.Compare(params.Overlay(current, patch), consumed, leftoverParam)

	h.log.Debug("rebuilt url",
		slog.String("route", h.req.Route),
		slog.String("url", built),
		slog.Any("leftover", leftover.Keys()),
	)

	return addParams(built, leftover)
}

// consumedParams returns the parameters a built URL already carries: its
// query string merged over the parameters its path is recognized with.
func (h *Helper) consumedParams(rawURL string) (params.Tree, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("urlfor: built url: %w", err)
	}

	_, pathParams, err := h.router.Recognize(u.Path)
	if err != nil {
		return nil, err
	}

	q, err := query.Parse(u.RawQuery)
	if err != nil {
		return nil, fmt.Errorf("urlfor: built url: %w", err)
	}

	return params.Merge(pathParams, q), nil
}

// leftoverParam selects the keys that still have to be written to the
// query string: nested trees with remaining content, explicit deletions
// and keys the built URL does not carry.
func leftoverParam(_ string, v, _ params.Value, inURL bool) (params.Value, bool) {
	switch {
	case v.IsTree():
		return v, len(v.Tree()) > 0
	case v.IsNull():
		return v, true
	default:
		return v, !inURL
	}
}

// AddParams merges patch into the query string of the current request
// path. Unlike MergeURLFor it does not consult the router.
func (h *Helper) AddParams(patch params.Tree) (string, error) {
	return addParams(h.req.FullPath(), patch)
}

// AddParamsTo merges patch into the query string of rawURL. Nested trees
// merge key by key and a null value removes a key.
func (h *Helper) AddParamsTo(rawURL string, patch params.Tree) (string, error) {
	return addParams(rawURL, patch)
}

func addParams(rawURL string, patch params.Tree) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("urlfor: %w", err)
	}

	existing, err := query.Parse(u.RawQuery)
	if err != nil {
		return "", fmt.Errorf("urlfor: %q: %w", rawURL, err)
	}

	merged := params.Merge(existing, patch)
	if len(merged) == 0 && len(existing) == 0 {
		return u.String(), nil
	}

	u.RawQuery = query.Encode(merged)
	u.ForceQuery = false
	return u.String(), nil
}

func (h *Helper) sanitize(t params.Tree) params.Tree {
	return t.Except(h.reserved...)
}
