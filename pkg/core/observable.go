package core

import "sync"

// Listenable is anything that can notify listeners of changes.
type Listenable interface {
	// AddListener registers a change callback and returns an unsubscribe
	// function.
	AddListener(listener func()) func()
}

// subscriber is one registration on a notification fan-out.
//
// Cancellation closes the registration before returning: once the cancel
// function completes, the callback is never invoked again, including for
// notifications whose fan-out pass is already in progress.
type subscriber struct {
	mu     sync.Mutex
	fn     func()
	closed bool
}

func (s *subscriber) invoke() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	fn := s.fn
	s.mu.Unlock()
	fn()
}

func (s *subscriber) close() {
	s.mu.Lock()
	s.closed = true
	s.fn = nil
	s.mu.Unlock()
}

// Notifier is a simple Listenable implementation: a broadcast fan-out with
// no value attached. All registered listeners are invoked, in registration
// order, every time Notify is called.
type Notifier struct {
	mu        sync.Mutex
	listeners []*subscriber
	closed    bool
}

// NewNotifier creates an empty Notifier.
func NewNotifier() *Notifier {
	return &Notifier{}
}

// AddListener registers a listener. The returned function cancels the
// registration; it is idempotent.
func (n *Notifier) AddListener(listener func()) func() {
	if listener == nil {
		return func() {}
	}
	sub := &subscriber{fn: listener}

	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		return func() {}
	}
	n.listeners = append(n.listeners, sub)
	n.mu.Unlock()

	return func() {
		sub.close()
		n.remove(sub)
	}
}

// Notify invokes all current listeners in registration order. Listeners
// cancelled mid-pass (by an earlier listener) are skipped.
func (n *Notifier) Notify() {
	for _, sub := range n.snapshot() {
		sub.invoke()
	}
}

// ListenerCount returns the number of active registrations.
func (n *Notifier) ListenerCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.listeners)
}

// Close cancels all registrations and rejects future ones.
func (n *Notifier) Close() {
	n.mu.Lock()
	listeners := n.listeners
	n.listeners = nil
	n.closed = true
	n.mu.Unlock()
	for _, sub := range listeners {
		sub.close()
	}
}

func (n *Notifier) snapshot() []*subscriber {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]*subscriber, len(n.listeners))
	copy(out, n.listeners)
	return out
}

func (n *Notifier) remove(sub *subscriber) {
	n.mu.Lock()
	defer n.mu.Unlock()
	for i, candidate := range n.listeners {
		if candidate == sub {
			n.listeners = append(n.listeners[:i], n.listeners[i+1:]...)
			return
		}
	}
}

// Observable holds a value and notifies typed listeners when it changes.
// It is safe for concurrent use, though in the cooperative single-thread
// model all mutation normally happens on the UI goroutine.
//
// Example:
//
//	counter := core.NewObservable(0)
//	cancel := counter.AddListener(func(v int) { ... })
//	counter.Set(1)
//	cancel()
type Observable[T any] struct {
	mu        sync.Mutex
	value     T
	listeners []*typedSubscriber[T]
	closed    bool
}

// typedSubscriber mirrors subscriber for value-carrying notifications.
type typedSubscriber[T any] struct {
	mu     sync.Mutex
	fn     func(T)
	closed bool
}

func (s *typedSubscriber[T]) invoke(value T) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	fn := s.fn
	s.mu.Unlock()
	fn(value)
}

func (s *typedSubscriber[T]) close() {
	s.mu.Lock()
	s.closed = true
	s.fn = nil
	s.mu.Unlock()
}

// NewObservable creates an Observable with the given initial value.
func NewObservable[T any](initial T) *Observable[T] {
	return &Observable[T]{value: initial}
}

// Value returns the current value.
func (o *Observable[T]) Value() T {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.value
}

// Set updates the value and notifies all listeners in registration order.
// Every call notifies; no equality filtering is applied.
func (o *Observable[T]) Set(value T) {
	o.mu.Lock()
	if o.closed {
		o.mu.Unlock()
		return
	}
	o.value = value
	snapshot := make([]*typedSubscriber[T], len(o.listeners))
	copy(snapshot, o.listeners)
	o.mu.Unlock()

	for _, sub := range snapshot {
		sub.invoke(value)
	}
}

// AddListener registers a listener called with each new value. The returned
// function cancels the registration; after it returns the listener will not
// be invoked again, even for a Set already fanning out.
func (o *Observable[T]) AddListener(listener func(T)) func() {
	if listener == nil {
		return func() {}
	}
	sub := &typedSubscriber[T]{fn: listener}

	o.mu.Lock()
	if o.closed {
		o.mu.Unlock()
		return func() {}
	}
	o.listeners = append(o.listeners, sub)
	o.mu.Unlock()

	return func() {
		sub.close()
		o.mu.Lock()
		for i, candidate := range o.listeners {
			if candidate == sub {
				o.listeners = append(o.listeners[:i], o.listeners[i+1:]...)
				break
			}
		}
		o.mu.Unlock()
	}
}

// ListenerCount returns the number of active registrations.
func (o *Observable[T]) ListenerCount() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.listeners)
}

// Close cancels all registrations and makes further Set calls no-ops.
// The current value remains readable.
func (o *Observable[T]) Close() {
	o.mu.Lock()
	listeners := o.listeners
	o.listeners = nil
	o.closed = true
	o.mu.Unlock()
	for _, sub := range listeners {
		sub.close()
	}
}
