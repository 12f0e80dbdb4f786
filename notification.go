package callback

// Notification is a queued delivery of args to the handlers of an event.
type Notification struct {
	name string
	args []any
}

func NewNotification(name string, args ...any) *Notification {
	var notification = &Notification{}
	notification.name = name
	notification.args = args
	return notification
}

func (this *Notification) Name() string {
	return this.name
}

func (this *Notification) Args() []any {
	return this.args
}
