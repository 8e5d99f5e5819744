package routes

import (
	"fmt"
	"net"
	"net/url"
	"strings"

	"golang.org/x/net/idna"
)

// ReservedKeys are the option names a URL builder treats specially. They
// must come from application code only, never from request parameters.
var ReservedKeys = []string{
	"anchor",
	"domain",
	"host",
	"only_path",
	"params",
	"password",
	"port",
	"protocol",
	"script_name",
	"subdomain",
	"trailing_slash",
	"user",

	"controller",
	"action",
	"format",
}

// URLOptions are the application-supplied parts of a generated URL.
// The zero value builds a path-only URL.
type URLOptions struct {
	// Host makes the URL absolute. Internationalized names are converted
	// to their ASCII form (RFC 5891).
	Host string

	// Protocol is the URL scheme. Defaults to "http" when Host is set.
	// A trailing "://" is accepted.
	Protocol string

	// Port is appended to Host when non-zero.
	Port int

	// Anchor becomes the URL fragment.
	Anchor string

	// TrailingSlash appends "/" to the path when missing.
	TrailingSlash bool
}

// apply sets scheme, host, fragment and trailing slash on u.
func (o URLOptions) apply(u *url.URL) error {
	if o.TrailingSlash && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	u.Fragment = o.Anchor

	if o.Host == "" {
		return nil
	}

	host, err := idna.Lookup.ToASCII(o.Host)
	if err != nil {
		return fmt.Errorf("routes: %w %q: %w", ErrInvalidHost, o.Host, err)
	}
	if o.Port != 0 {
		host = net.JoinHostPort(host, fmt.Sprint(o.Port))
	}

	scheme := strings.TrimSuffix(o.Protocol, "://")
	if scheme == "" {
		scheme = "http"
	}

	u.Scheme = scheme
	u.Host = host
	return nil
}
