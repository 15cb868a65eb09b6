// SPDX-License-Identifier: MIT

package logger

// DefaultFilter is the threshold a Stream starts with: everything passes.
const DefaultFilter = LevelDebug

const panicFilterInvalid = "logger: WithFilter: level must be DEBUG, INFO, WARNING or ERROR"

// Option configures a Stream at construction.
// Constructors panic only on nonsensical values (programmer error).
type Option func(*options)

type options struct {
	filter Level
}

func defaultOptions() options {
	return options{filter: DefaultFilter}
}

// WithFilter sets the initial filter threshold.
func WithFilter(l Level) Option {
	if !l.Valid() {
		panic(panicFilterInvalid)
	}

	return func(o *options) { o.filter = l }
}

func gatherOptions(opts ...Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
