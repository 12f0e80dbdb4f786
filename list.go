package callback

import (
	"sync"

	"github.com/pkg/errors"
)

// List holds handlers in insertion order and invokes all of them on Call.
//
// Names are optional and need not be unique. Get and Remove always resolve
// to the first entry with the given name.
type List struct {
	mu      sync.Mutex
	entries []entry
}

func NewList() *List {
	return &List{}
}

// Add appends an unnamed handler. It panics with ErrNilHandler if handler is nil.
func (this *List) Add(handler Handler) {
	this.add(entry{handler: handler})
}

// AddNamed appends a handler reachable by name through Get and Remove.
func (this *List) AddNamed(name string, handler Handler) {
	this.add(entry{name: name, named: true, handler: handler})
}

func (this *List) add(e entry) {
	if e.handler == nil {
		panic(ErrNilHandler)
	}

	this.mu.Lock()
	defer this.mu.Unlock()

	this.entries = append(this.entries, e)
}

// Call invokes every handler in order with args and returns their values
// positionally. The first handler error stops the call and is returned as is.
func (this *List) Call(args ...any) ([]any, error) {
	var handlers = this.All()

	var results = make([]any, 0, len(handlers))
	for _, handler := range handlers {
		var value, err = handler(args...)
		if err != nil {
			return nil, err
		}
		results = append(results, value)
	}
	return results, nil
}

// AsHandler returns the list as a single Handler. Its value is the []any
// returned by Call.
func (this *List) AsHandler() Handler {
	return func(args ...any) (any, error) {
		var results, err = this.Call(args...)
		if err != nil {
			return nil, err
		}
		return results, nil
	}
}

// All returns a copy of the handlers in order.
func (this *List) All() []Handler {
	this.mu.Lock()
	defer this.mu.Unlock()

	var handlers = make([]Handler, 0, len(this.entries))
	for _, e := range this.entries {
		handlers = append(handlers, e.handler)
	}
	return handlers
}

// Get returns the first handler added under name, or an error matching
// ErrNotFound.
func (this *List) Get(name string) (Handler, error) {
	this.mu.Lock()
	defer this.mu.Unlock()

	var i = this.index(name)
	if i < 0 {
		return nil, errors.WithMessagef(ErrNotFound, "callback: %q", name)
	}
	return this.entries[i].handler, nil
}

// Remove deletes the first handler added under name. Unknown names are ignored.
func (this *List) Remove(name string) {
	this.mu.Lock()
	defer this.mu.Unlock()

	var i = this.index(name)
	if i < 0 {
		return
	}

	var entries = make([]entry, 0, len(this.entries)-1)
	entries = append(entries, this.entries[:i]...)
	this.entries = append(entries, this.entries[i+1:]...)
}

func (this *List) Clear() {
	this.mu.Lock()
	defer this.mu.Unlock()

	this.entries = nil
}

func (this *List) Len() int {
	this.mu.Lock()
	defer this.mu.Unlock()

	return len(this.entries)
}

func (this *List) index(name string) int {
	for i, e := range this.entries {
		if e.named && e.name == name {
			return i
		}
	}
	return -1
}
