package response

import "go.uber.org/zap"

// DefaultBins is the number of 1 keV bins of a full-range response matrix.
const DefaultBins = 12000

// Config defines the matrix geometry and execution settings of a Builder.
type Config struct {
	Bins    int
	Workers int
	Logger  *zap.Logger
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns a sequential, silent configuration for a
// full-range matrix.
func DefaultConfig() Config {
	return Config{
		Bins:    DefaultBins,
		Workers: 1,
		Logger:  zap.NewNop(),
	}
}

// WithBins sets the number of bins per matrix axis.
func WithBins(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.Bins = n
		}
	}
}

// WithWorkers sets how many bins may be processed concurrently. Each
// in-flight bin holds at most one open source container.
func WithWorkers(k int) Option {
	return func(cfg *Config) {
		if k > 0 {
			cfg.Workers = k
		}
	}
}

// WithLogger sets the logger used for progress and per-bin decisions.
func WithLogger(l *zap.Logger) Option {
	return func(cfg *Config) {
		if l != nil {
			cfg.Logger = l
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
