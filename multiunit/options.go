package multiunit

import "runtime"

// panicBadConcurrency is the programmer-error message for WithConcurrency.
const panicBadConcurrency = "multiunit: WithConcurrency requires n >= 1"

// options carries builder configuration. Fields are unexported; public
// APIs consume ...Option.
type options struct {
	workers int // bounded worker-pool size for matrix assembly
}

// Option mutates builder options.
type Option func(*options)

// WithConcurrency bounds the worker pool used for matrix assembly.
// Values below 1 are a programmer error and panic, mirroring the
// zero-dead-switches policy of the option constructors.
//
// The worker count never changes results — each matrix cell is written
// exactly once by exactly one worker — only wall-clock time.
func WithConcurrency(n int) Option {
	if n < 1 {
		panic(panicBadConcurrency)
	}

	return func(o *options) {
		o.workers = n
	}
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) options {
	o := options{workers: runtime.NumCPU()}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
