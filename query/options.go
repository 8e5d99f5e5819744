package query

// Options configures parsing.
type Options struct {
	// Separators lists the bytes that split pairs. Defaults to "&".
	Separators string

	// MaxDepth limits how many bracket levels a name may use.
	// Defaults to 32.
	MaxDepth int
}

// DefaultOptions is used by Parse and ParseValues.
var DefaultOptions = Options{
	Separators: "&",
	MaxDepth:   32,
}

func (o Options) separators() string {
	if o.Separators == "" {
		return DefaultOptions.Separators
	}
	return o.Separators
}

func (o Options) maxDepth() int {
	if o.MaxDepth <= 0 {
		return DefaultOptions.MaxDepth
	}
	return o.MaxDepth
}
