package urlfor

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"net/http"

	"github.com/vitalvas/paramkit/params"
	"github.com/vitalvas/paramkit/query"
)

// Request is the parameter state of the request being served. It is
// passed explicitly to New; Middleware builds it from an http.Request.
type Request struct {
	// Route is the name of the route that matched the request.
	Route string

	// Path is the request path. AddParams appends to it.
	Path string

	// RawQuery is the query string of the request, without '?'.
	RawQuery string

	// PathParams are the parameters recognized from the path, including
	// route defaults.
	PathParams params.Tree

	// QueryParams are the parameters parsed from the query string.
	QueryParams params.Tree

	// BodyParams are the parameters parsed from a form-encoded body.
	BodyParams params.Tree
}

// FullPath returns the path with its query string.
func (r *Request) FullPath() string {
	if r.RawQuery == "" {
		return r.Path
	}
	return r.Path + "?" + r.RawQuery
}

// ErrInvalidParams is wrapped by FromHTTPRequest when the query string or
// the form body cannot be parsed.
var ErrInvalidParams = errors.New("invalid request parameters")

type requestKey struct{}

// WithRequest returns a copy of ctx carrying req.
func WithRequest(ctx context.Context, req *Request) context.Context {
	return context.WithValue(ctx, requestKey{}, req)
}

// FromContext returns the Request stored by Middleware or WithRequest,
// or nil.
func FromContext(ctx context.Context) *Request {
	if req, ok := ctx.Value(requestKey{}).(*Request); ok {
		return req
	}
	return nil
}

// FromHTTPRequest builds a Request by recognizing the path of r with
// router and parsing its query string and, for form-encoded POST, PUT and
// PATCH requests, its body.
//
// The routing error is returned when the path is not recognized; errors
// wrapping ErrInvalidParams are returned for unparsable parameters.
func FromHTTPRequest(r *http.Request, router Router) (*Request, error) {
	route, pathParams, err := router.Recognize(r.URL.Path)
	if err != nil {
		return nil, err
	}

	queryParams, err := query.Parse(r.URL.RawQuery)
	if err != nil {
		return nil, fmt.Errorf("urlfor: query string: %w: %w", ErrInvalidParams, err)
	}

	bodyParams := params.Tree{}
	if hasFormBody(r) {
		if err := r.ParseForm(); err != nil {
			return nil, fmt.Errorf("urlfor: request body: %w: %w", ErrInvalidParams, err)
		}
		if bodyParams, err = query.ParseValues(r.PostForm); err != nil {
			return nil, fmt.Errorf("urlfor: request body: %w: %w", ErrInvalidParams, err)
		}
	}

	return &Request{
		Route:       route,
		Path:        r.URL.Path,
		RawQuery:    r.URL.RawQuery,
		PathParams:  pathParams,
		QueryParams: queryParams,
		BodyParams:  bodyParams,
	}, nil
}

// hasFormBody reports whether r carries an application/x-www-form-urlencoded
// body (RFC 9110 Section 8.3).
func hasFormBody(r *http.Request) bool {
	switch r.Method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
	default:
		return false
	}
	ct, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && ct == "application/x-www-form-urlencoded"
}
