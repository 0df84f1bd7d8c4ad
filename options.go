package mtbvalidator

import (
	"runtime"
	"time"
)

// Option configures a Checker.
type Option func(*Options)

// Options holds all configuration for a Checker.
type Options struct {
	// DefaultICD10Version is assumed for ICD-10-GM codings that omit
	// their version.
	DefaultICD10Version string

	// Now supplies the current time for date checks (date of death must
	// not be in the future). Injectable for tests.
	Now func() time.Time

	// WorkerCount bounds parallelism of batch checking.
	WorkerCount int

	// CollectMetrics enables the atomic metric counters.
	CollectMetrics bool
}

// DefaultOptions returns the default configuration.
func DefaultOptions() *Options {
	return &Options{
		DefaultICD10Version: "2019",
		Now:                 time.Now,
		WorkerCount:         runtime.NumCPU(),
		CollectMetrics:      true,
	}
}

// WithDefaultICD10Version sets the ICD-10-GM catalog version assumed
// for codings that carry no version of their own.
func WithDefaultICD10Version(version string) Option {
	return func(o *Options) {
		o.DefaultICD10Version = version
	}
}

// WithClock sets the time source used for date checks.
func WithClock(now func() time.Time) Option {
	return func(o *Options) {
		o.Now = now
	}
}

// WithWorkerCount sets the number of workers used by batch checking.
func WithWorkerCount(n int) Option {
	return func(o *Options) {
		o.WorkerCount = n
	}
}

// WithMetrics enables or disables metric collection.
func WithMetrics(enable bool) Option {
	return func(o *Options) {
		o.CollectMetrics = enable
	}
}
