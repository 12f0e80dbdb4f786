package callback

import (
	"log/slog"
	"sync"

	"github.com/smartwalle/queue/block"
)

var shared *Center
var once sync.Once

func Default() *Center {
	once.Do(func() {
		shared = New()
	})
	return shared
}

// Center keeps one List per event name. Post delivers synchronously, Dispatch
// queues the delivery for a background goroutine.
type Center struct {
	mu     *sync.Mutex
	queue  block.Queue[*Notification]
	lists  map[string]*List
	logger *slog.Logger
	waiter Waiter
}

func New(opts ...Option) *Center {
	var center = &Center{}
	center.mu = &sync.Mutex{}
	center.queue = block.New[*Notification]()
	center.lists = make(map[string]*List)
	center.logger = slog.Default()
	for _, opt := range opts {
		if opt != nil {
			opt(center)
		}
	}
	go center.run()
	return center
}

func (this *Center) Handle(name string, handler Handler) {
	if len(name) == 0 || handler == nil {
		return
	}

	this.mu.Lock()
	this.list(name).Add(handler)
	this.mu.Unlock()

	this.logger.Debug("callback: handler registered", slog.String("name", name))
}

// HandleNamed registers handler under key so it can later be removed with
// RemoveHandler.
func (this *Center) HandleNamed(name, key string, handler Handler) {
	if len(name) == 0 || handler == nil {
		return
	}

	this.mu.Lock()
	this.list(name).AddNamed(key, handler)
	this.mu.Unlock()

	this.logger.Debug("callback: handler registered", slog.String("name", name), slog.String("key", key))
}

// list must be called with mu held.
func (this *Center) list(name string) *List {
	var list, ok = this.lists[name]
	if ok == false {
		list = NewList()
		this.lists[name] = list
	}
	return list
}

func (this *Center) Remove(name string) {
	if len(name) == 0 {
		return
	}

	this.mu.Lock()
	defer this.mu.Unlock()

	delete(this.lists, name)
}

// RemoveHandler removes the first handler registered under key for the event.
func (this *Center) RemoveHandler(name, key string) {
	if len(name) == 0 {
		return
	}

	this.mu.Lock()
	defer this.mu.Unlock()

	var list, ok = this.lists[name]
	if ok == false {
		return
	}

	list.Remove(key)

	if list.Len() == 0 {
		delete(this.lists, name)
	}
}

func (this *Center) RemoveAll() {
	this.mu.Lock()
	defer this.mu.Unlock()

	for name := range this.lists {
		delete(this.lists, name)
	}
}

// Handlers returns the handlers of the event in registration order.
func (this *Center) Handlers(name string) []Handler {
	this.mu.Lock()
	var list = this.lists[name]
	this.mu.Unlock()

	if list == nil {
		return nil
	}
	return list.All()
}

// Post calls the handlers of the event right away, see List.Call.
func (this *Center) Post(name string, args ...any) ([]any, error) {
	this.mu.Lock()
	var list = this.lists[name]
	this.mu.Unlock()

	if list == nil {
		return []any{}, nil
	}
	return list.Call(args...)
}

// Dispatch queues a notification. It reports false for an empty name or a
// closed Center.
func (this *Center) Dispatch(name string, args ...any) bool {
	if len(name) == 0 {
		return false
	}

	if this.waiter != nil {
		this.waiter.Add(1)
	}

	if this.queue.Enqueue(NewNotification(name, args...)) == false {
		if this.waiter != nil {
			this.waiter.Done()
		}
		return false
	}
	return true
}

// Close stops accepting notifications. Queued ones are still delivered.
func (this *Center) Close() {
	this.queue.Close()
}

func (this *Center) run() {
	var notifications []*Notification

	for {
		notifications = notifications[0:0]
		var ok = this.queue.Dequeue(&notifications)

		for _, notification := range notifications {
			this.deliver(notification)
		}

		if ok == false {
			return
		}
	}
}

func (this *Center) deliver(notification *Notification) {
	if this.waiter != nil {
		defer this.waiter.Done()
	}

	if _, err := this.Post(notification.Name(), notification.Args()...); err != nil {
		this.logger.Error("callback: dispatch failed", slog.String("name", notification.Name()), slog.Any("error", err))
	}
}
