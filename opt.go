package bounded

import "github.com/xy-planning-network/bounded/logger"

// An OptFn is a functional option configuring a *Value when constructing a new one.
type OptFn func(*options)

type options struct {
	mode Mode
	log  logger.Logger
}

func newOptions(opts []OptFn) options {
	o := options{mode: Permissive}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithMode sets the Mode the *Value operates in.
// An invalid Mode is ignored, leaving the default Permissive in place.
func WithMode(m Mode) OptFn {
	return func(o *options) {
		if err := m.Valid(); err == nil {
			o.mode = m
		}
	}
}

// WithLogger sets the [logger.Logger] the *Value emits transition logs to.
// By default no logs are emitted.
func WithLogger(l logger.Logger) OptFn {
	return func(o *options) {
		o.log = l
	}
}
