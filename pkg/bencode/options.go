package bencode

import "log"

// DefaultMaxDepth bounds how deeply lists and dictionaries may nest.
const DefaultMaxDepth = 256

type config struct {
	maxDepth int
	logger   *log.Logger
}

// Option configures a Decoder.
type Option func(*config)

// WithMaxDepth sets the nesting limit. Values below 1 keep the default.
func WithMaxDepth(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxDepth = n
		}
	}
}

// WithLogger sends the decoder's debug output to l instead of the package
// logger.
func WithLogger(l *log.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

func newConfig(opts []Option) config {
	c := config{maxDepth: DefaultMaxDepth, logger: logger.Load()}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
