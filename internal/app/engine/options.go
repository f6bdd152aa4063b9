package engine

import "time"

// Options holds the tunables of the order processor.
type Options struct {
	// ReadBackoff is how long to wait after a failed read before retrying.
	ReadBackoff time.Duration
	// MaxReadFailures stops the processor after this many consecutive read
	// failures. Zero retries forever.
	MaxReadFailures int
}

// DefaultEngineOptions returns the options used by NewEngine.
func DefaultEngineOptions() *Options {
	return &Options{
		ReadBackoff:     100 * time.Millisecond,
		MaxReadFailures: 10,
	}
}
