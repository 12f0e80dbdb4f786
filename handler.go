package callback

// Handler is a single callback. It receives the arguments passed to the list
// and returns one value. A non-nil error aborts the rest of the call.
type Handler func(args ...any) (any, error)

// Func adapts a function that always succeeds.
func Func(fn func(args ...any) any) Handler {
	return func(args ...any) (any, error) {
		return fn(args...), nil
	}
}

// Action adapts a function without a return value, its result is nil.
func Action(fn func(args ...any)) Handler {
	return func(args ...any) (any, error) {
		fn(args...)
		return nil, nil
	}
}

type entry struct {
	name    string
	named   bool
	handler Handler
}
