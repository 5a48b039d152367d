package xgxexpect

import (
	log "github.com/sirupsen/logrus"
)

// config holds the settings of a single Aggregate call.
type config struct {
	label    string
	metadata fields
	logger   log.FieldLogger
}

// Option configures an Aggregate call.
type Option func(*config)

func defaultConfig() config {
	return config{
		metadata: emptyFields,
		logger:   log.StandardLogger(),
	}
}

func newConfig(opts []Option) config {
	c := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}
	return c
}

// WithLabel names the aggregation block. The label appears quoted in the
// report header. An empty label means "no label".
func WithLabel(label string) Option {
	return func(c *config) {
		c.label = label
	}
}

// WithMetadata attaches key-value metadata to the block. Calls accumulate in
// order. Keys must be strings; a pair with a non-string key is dropped.
func WithMetadata(kv ...any) Option {
	return func(c *config) {
		c.metadata = fieldsCloneAppend(c.metadata, fieldsFromKV(kv...)...)
	}
}

// WithLogger sets the logger used for block entry/exit debug entries.
// A nil logger restores the default (logrus standard logger).
func WithLogger(l log.FieldLogger) Option {
	return func(c *config) {
		if l == nil {
			l = log.StandardLogger()
		}
		c.logger = l
	}
}
