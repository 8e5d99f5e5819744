package urlfor

import (
	"context"
	"errors"
	"net/http"
)

// Middleware returns a middleware that recognizes each request with router
// and stores the resulting Request in the request context, where
// FromContext and HelperFromContext find it.
//
// Requests whose path the router does not recognize are passed on
// unchanged. Requests with unparsable parameters are answered with
// 400 Bad Request (RFC 9110 Section 15.5.1).
func Middleware(router Router) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			req, err := FromHTTPRequest(r, router)
			if err != nil {
				if errors.Is(err, ErrInvalidParams) {
					http.Error(w, err.Error(), http.StatusBadRequest)
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithRequest(r.Context(), req)))
		})
	}
}

// HelperFromContext returns a Helper for the Request stored in ctx. When
// ctx carries no Request the helper works on an empty one.
func HelperFromContext(ctx context.Context, router Router, cfg Config) *Helper {
	return New(FromContext(ctx), router, cfg)
}
