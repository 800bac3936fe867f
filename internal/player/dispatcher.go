package player

import "sync"

// Dispatcher marshals work onto the UI loop. Engine callbacks arrive on the
// engine's own thread and must never mutate UI state directly; the session
// funnels every observer notification through a Dispatcher instead.
type Dispatcher interface {
	Dispatch(fn func())
	Close()
}

// SerialDispatcher runs submitted functions one at a time on a single
// goroutine, in submission order. It stands in for a GUI toolkit's event
// loop in headless setups and tests.
type SerialDispatcher struct {
	tasks chan func()
	done  chan struct{}

	mu     sync.Mutex
	closed bool
}

// NewSerialDispatcher starts the dispatch goroutine.
func NewSerialDispatcher() *SerialDispatcher {
	d := &SerialDispatcher{
		tasks: make(chan func(), 64),
		done:  make(chan struct{}),
	}
	go d.run()
	return d
}

func (d *SerialDispatcher) run() {
	defer close(d.done)
	for fn := range d.tasks {
		fn()
	}
}

// Dispatch queues fn for execution. Calls after Close are dropped.
func (d *SerialDispatcher) Dispatch(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return
	}
	d.tasks <- fn
}

// Close stops accepting work, drains what was already queued and waits for
// the loop to exit. Safe to call more than once.
func (d *SerialDispatcher) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		<-d.done
		return
	}
	d.closed = true
	close(d.tasks)
	d.mu.Unlock()
	<-d.done
}
