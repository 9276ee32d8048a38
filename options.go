package ldclump

type options struct {
	logger   *Logger
	method   Method
	compress bool
	workers  int
}

func defaultOptions() options {
	return options{
		logger:  NoopLogger(),
		method:  Haplotype,
		workers: 1,
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

// Option configures a Store, GenotypeStore, LDEngine or Clumper at
// construction. Options that do not apply to a component are ignored by it.
type Option func(*options)

// WithLogger configures the diagnostics sink.
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

// WithMethod selects the r² statistic computed by an LDEngine.
func WithMethod(m Method) Option {
	return func(o *options) {
		o.method = m
	}
}

// WithCompression keeps GenotypeStore vectors zstd-compressed in memory,
// trading a decode per fetch for a smaller resident set.
func WithCompression(enabled bool) Option {
	return func(o *options) {
		o.compress = enabled
	}
}

// WithWorkers bounds the number of goroutines a Clumper uses to evaluate r²
// inside one window. Values below 1 are treated as 1.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = 1
		}
		o.workers = n
	}
}
