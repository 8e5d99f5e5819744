package urlfor

import (
	"io"
	"log/slog"

	"github.com/vitalvas/paramkit/routes"
)

// Config configures a Helper. The zero value is valid.
type Config struct {
	// ReservedKeys are stripped from request parameters and patches before
	// URL building. Defaults to routes.ReservedKeys.
	ReservedKeys []string

	// URLOptions are passed to the router for every URL built by
	// MergeURLFor. They are the only way to set host, protocol and the
	// other reserved options.
	URLOptions routes.URLOptions

	// Logger receives debug records about rebuilt URLs. Defaults to a
	// logger that discards everything.
	Logger *slog.Logger
}

func (cfg Config) reservedKeys() []string {
	if cfg.ReservedKeys == nil {
		return routes.ReservedKeys
	}
	return cfg.ReservedKeys
}

func (cfg Config) logger() *slog.Logger {
	if cfg.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return cfg.Logger
}
