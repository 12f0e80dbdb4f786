package callback

// Waiter tracks queued notifications, *sync.WaitGroup satisfies it.
type Waiter interface {
	Add(delta int)

	Done()

	Wait()
}
