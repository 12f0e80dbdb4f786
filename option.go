package callback

import "log/slog"

type Option func(center *Center)

func WithLogger(logger *slog.Logger) Option {
	return func(center *Center) {
		if logger != nil {
			center.logger = logger
		}
	}
}

// WithWaiter makes Dispatch call waiter.Add(1) for every accepted
// notification and waiter.Done() once it has been delivered.
func WithWaiter(waiter Waiter) Option {
	return func(center *Center) {
		center.waiter = waiter
	}
}
