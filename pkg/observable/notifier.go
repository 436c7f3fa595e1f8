package observable

type listenerEntry struct {
	id int
	fn func()
}

// Notifier is a value-less listenable: it fans a Notify call out to every
// registered listener in registration order. It backs one-shot event surfaces
// such as animation completion.
type Notifier struct {
	listeners []listenerEntry
	nextID    int
}

// NewNotifier creates an empty notifier.
func NewNotifier() *Notifier {
	return &Notifier{}
}

// AddListener registers fn and returns an unsubscribe function.
func (n *Notifier) AddListener(fn func()) func() {
	id := n.nextID
	n.nextID++
	n.listeners = append(n.listeners, listenerEntry{id: id, fn: fn})
	return func() {
		for i, e := range n.listeners {
			if e.id == id {
				n.listeners = append(n.listeners[:i], n.listeners[i+1:]...)
				return
			}
		}
	}
}

// Notify invokes every listener in registration order.
func (n *Notifier) Notify() {
	snapshot := make([]listenerEntry, len(n.listeners))
	copy(snapshot, n.listeners)
	for _, e := range snapshot {
		e.fn()
	}
}

// ListenerCount returns the number of registered listeners.
func (n *Notifier) ListenerCount() int {
	return len(n.listeners)
}
