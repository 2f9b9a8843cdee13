package deck

import (
	"log/slog"

	"github.com/godeck/godeck/pkg/opc"
)

// options holds the internal configuration for a Presentation.
type options struct {
	logger      *slog.Logger
	creator     string
	compression int
}

// Option defines a functional option for configuring a Presentation.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		logger:      nil,
		creator:     "godeck",
		compression: opc.DefaultCompression,
	}
}

// WithLogger sets the logger for the presentation.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithCreator sets the author recorded in fresh presentations' core
// properties.
func WithCreator(creator string) Option {
	return func(o *options) {
		o.creator = creator
	}
}

// WithCompression sets the deflate level used when saving, following
// compress/flate: 0 stores, 1 is fastest, 9 is best, -1 is the default.
func WithCompression(level int) Option {
	return func(o *options) {
		o.compression = level
	}
}
