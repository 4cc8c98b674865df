package siteswap

// Options configures Analyze. Use defaultOptions() plus Option funcs;
// callers never construct Options directly.
type Options struct {
	// AllowTheoreticalPatterns permits negative values, negative
	// repetition quantities, and zero-value crossing throws.
	AllowTheoreticalPatterns bool

	// MaximumLength bounds the per-hand inferred beat range. Patterns
	// whose range would exceed it fail with ErrStateRangeTooLarge.
	MaximumLength int
}

// Option mutates an Options value. Applied left-to-right over
// defaultOptions(), matching the functional-options convention used
// throughout this codebase's configuration surfaces.
type Option func(*Options)

// defaultOptions returns the Options Analyze uses when no Option is
// supplied: theoretical patterns disallowed, MaximumLength 100.
func defaultOptions() Options {
	return Options{
		AllowTheoreticalPatterns: false,
		MaximumLength:            100,
	}
}

// resolveOptions applies opts left-to-right over defaultOptions().
func resolveOptions(opts []Option) Options {
	o := defaultOptions()
	for _, apply := range opts {
		if apply != nil {
			apply(&o)
		}
	}
	return o
}

// WithTheoreticalPatterns permits negative values, negative repetition
// quantities, and zero-value crossing throws (time-reversed / debit
// patterns).
func WithTheoreticalPatterns() Option {
	return func(o *Options) {
		o.AllowTheoreticalPatterns = true
	}
}

// WithMaximumLength overrides the per-hand beat-range bound. Negative
// values are ignored (the existing bound is kept), matching the
// nil-is-a-no-op convention of this package's other options.
func WithMaximumLength(n int) Option {
	return func(o *Options) {
		if n >= 0 {
			o.MaximumLength = n
		}
	}
}
