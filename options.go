package sift

type options struct {
	logger        *Logger
	maxLookups    int64
	lookupsPerSec float64
}

// Option configures Session constructor behavior.
type Option func(*options)

// WithLogger configures the logger used for session diagnostics.
//
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMaxLookups caps concurrent option lookups across all fields.
//
// If n <= 0, the resolver default applies.
func WithMaxLookups(n int64) Option {
	return func(o *options) {
		o.maxLookups = n
	}
}

// WithLookupRate throttles option-lookup dispatch to perSec lookups per
// second. Lookups arrive per keystroke; a modest rate keeps slow sources
// from piling up.
//
// If perSec <= 0, dispatch is unlimited.
func WithLookupRate(perSec float64) Option {
	return func(o *options) {
		o.lookupsPerSec = perSec
	}
}
